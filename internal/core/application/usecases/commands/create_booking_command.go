package commands

import (
	"errors"

	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand opens a pending booking of a provider for one of the
// actor's relocations.
//
// Example:
//
//	amount, _ := kernel.MoneyFromString("1200")
//	cmd, err := NewCreateBookingCommand(actor, kernel.NewUUID(), providerID, relocationID,
//	    booking.Terms{ServiceType: "full_service", BookingDate: date, TotalAmount: amount})
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	actor        services.Actor
	bookingID    kernel.UUID
	providerID   kernel.UUID
	relocationID kernel.UUID
	terms        booking.Terms

	guard guard.ConstructorGuard
}

func NewCreateBookingCommand(
	actor services.Actor,
	bookingID kernel.UUID,
	providerID kernel.UUID,
	relocationID kernel.UUID,
	terms booking.Terms,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		actor: actor,
		terms: terms,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateActor(actor),
		bookingID.Validate(),
		cmd.setReference("provider", &cmd.providerID, providerID),
		cmd.setReference("relocation", &cmd.relocationID, relocationID),
	); err != nil {
		return CreateBookingCommand{}, err
	}
	cmd.bookingID = bookingID

	return cmd, nil
}

func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) Actor() services.Actor {
	return c.actor
}

func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c CreateBookingCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c CreateBookingCommand) RelocationID() kernel.UUID {
	return c.relocationID
}

func (c CreateBookingCommand) Terms() booking.Terms {
	return c.terms
}

func (c *CreateBookingCommand) setReference(name string, dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}

	*dst = id
	return nil
}
