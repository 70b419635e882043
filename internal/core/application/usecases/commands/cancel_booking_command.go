package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrCancelBookingCommandIsNotConstructed = errors.New(
	"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
)

// CancelBookingCommand cancels a pending or confirmed booking.
type CancelBookingCommand struct {
	actor     services.Actor
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelBookingCommand(actor services.Actor, bookingID kernel.UUID) (CancelBookingCommand, error) {
	if err := errors.Join(validateActor(actor), bookingID.Validate()); err != nil {
		return CancelBookingCommand{}, err
	}

	return CancelBookingCommand{
		actor:     actor,
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

func (c CancelBookingCommand) Actor() services.Actor {
	return c.actor
}

func (c CancelBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
