package events

import (
	"context"

	"relocation/internal/core/domain/model/kernel"

	"github.com/rs/zerolog"
)

type LogPublisher struct {
	logger zerolog.Logger
}

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With().Str("component", "events").Logger()}
}

func (p *LogPublisher) Publish(_ context.Context, events ...kernel.DomainEvent) error {
	for _, e := range events {
		p.logger.Debug().
			Str("event", e.EventName()).
			Str("aggregate_id", e.AggregateID().String()).
			Time("occurred_at", e.OccurredAt()).
			Msg("domain event")
	}
	return nil
}
