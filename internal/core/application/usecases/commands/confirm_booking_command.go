package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrConfirmBookingCommandIsNotConstructed = errors.New(
	"ConfirmBookingCommand must be created via NewConfirmBookingCommand constructor",
)

// ConfirmBookingCommand moves a pending booking to confirmed and books its
// relocation.
type ConfirmBookingCommand struct {
	actor     services.Actor
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmBookingCommand(actor services.Actor, bookingID kernel.UUID) (ConfirmBookingCommand, error) {
	if err := errors.Join(validateActor(actor), bookingID.Validate()); err != nil {
		return ConfirmBookingCommand{}, err
	}

	return ConfirmBookingCommand{
		actor:     actor,
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmBookingCommand) Validate() error {
	return c.guard.Validate(ErrConfirmBookingCommandIsNotConstructed)
}

func (c ConfirmBookingCommand) Actor() services.Actor {
	return c.actor
}

func (c ConfirmBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
