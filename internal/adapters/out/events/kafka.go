// Package events delivers committed domain events. KafkaPublisher writes
// them to a topic; LogPublisher only logs them and is used when no brokers
// are configured.
package events

import (
	"context"
	"encoding/json"
	"time"

	"relocation/internal/core/domain/model/kernel"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const headerEventName = "event"

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	w     writer
	topic string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return newKafkaPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
	}, topic)
}

func newKafkaPublisherWithWriter(w writer, topic string) *KafkaPublisher {
	return &KafkaPublisher{w: w, topic: topic}
}

// Publish writes one message per event in a single batch. Messages are
// keyed by aggregate id so the events of one aggregate stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return errors.Wrapf(err, "encode %s", e.EventName())
		}
		msgs = append(msgs, kafka.Message{
			Topic: p.topic,
			Key:   []byte(e.AggregateID().String()),
			Value: value,
			Time:  e.OccurredAt(),
			Headers: []kafka.Header{
				{Key: headerEventName, Value: []byte(e.EventName())},
			},
		})
	}

	if err := p.w.WriteMessages(ctx, msgs...); err != nil {
		return errors.Wrap(err, "kafka publish")
	}
	return nil
}

// Close flushes pending writes.
func (p *KafkaPublisher) Close() error {
	if c, ok := p.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
