package commands

import (
	"errors"

	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrAdvanceBookingCommandIsNotConstructed = errors.New(
	"AdvanceBookingCommand must be created via NewAdvanceBookingCommand constructor",
)

// AdvanceBookingCommand is the operator path that sets a booking to
// in_progress or completed.
type AdvanceBookingCommand struct {
	actor     services.Actor
	bookingID kernel.UUID
	target    booking.Status

	guard guard.ConstructorGuard
}

func NewAdvanceBookingCommand(
	actor services.Actor,
	bookingID kernel.UUID,
	target booking.Status,
) (AdvanceBookingCommand, error) {
	_, targetErr := booking.Unknown.Advance(target)
	if err := errors.Join(validateActor(actor), bookingID.Validate(), targetErr); err != nil {
		return AdvanceBookingCommand{}, err
	}

	return AdvanceBookingCommand{
		actor:     actor,
		bookingID: bookingID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceBookingCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceBookingCommandIsNotConstructed)
}

func (c AdvanceBookingCommand) Actor() services.Actor {
	return c.actor
}

func (c AdvanceBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c AdvanceBookingCommand) Target() booking.Status {
	return c.target
}
