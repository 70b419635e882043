package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrQuoteRelocationCommandIsNotConstructed = errors.New(
	"QuoteRelocationCommand must be created via NewQuoteRelocationCommand constructor",
)

// QuoteRelocationCommand computes and stores the estimated cost of a move.
type QuoteRelocationCommand struct {
	actor        services.Actor
	relocationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewQuoteRelocationCommand(actor services.Actor, relocationID kernel.UUID) (QuoteRelocationCommand, error) {
	if err := errors.Join(validateActor(actor), relocationID.Validate()); err != nil {
		return QuoteRelocationCommand{}, err
	}

	return QuoteRelocationCommand{
		actor:        actor,
		relocationID: relocationID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c QuoteRelocationCommand) Validate() error {
	return c.guard.Validate(ErrQuoteRelocationCommandIsNotConstructed)
}

func (c QuoteRelocationCommand) Actor() services.Actor {
	return c.actor
}

func (c QuoteRelocationCommand) RelocationID() kernel.UUID {
	return c.relocationID
}
