package commands

import (
	"errors"
	"time"

	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrUpdateBookingTermsCommandIsNotConstructed = errors.New(
	"UpdateBookingTermsCommand must be created via NewUpdateBookingTermsCommand constructor",
)

// TermsPatch lists the booking terms to change. Status is never patched;
// it moves only through confirm, cancel and advance.
type TermsPatch struct {
	ServiceType *string
	BookingDate *time.Time
	TotalAmount *kernel.Money
	Notes       *string
}

func (p TermsPatch) apply(terms booking.Terms) booking.Terms {
	if p.ServiceType != nil {
		terms.ServiceType = *p.ServiceType
	}
	if p.BookingDate != nil {
		terms.BookingDate = *p.BookingDate
	}
	if p.TotalAmount != nil {
		terms.TotalAmount = *p.TotalAmount
	}
	if p.Notes != nil {
		terms.Notes = *p.Notes
	}
	return terms
}

type UpdateBookingTermsCommand struct { //nolint:recvcheck //using for validation
	actor     services.Actor
	bookingID kernel.UUID
	patch     TermsPatch

	guard guard.ConstructorGuard
}

func NewUpdateBookingTermsCommand(
	actor services.Actor,
	bookingID kernel.UUID,
	patch TermsPatch,
) (UpdateBookingTermsCommand, error) {
	var amountErr error
	if patch.TotalAmount != nil {
		amountErr = patch.TotalAmount.Validate()
	}
	if err := errors.Join(validateActor(actor), bookingID.Validate(), amountErr); err != nil {
		return UpdateBookingTermsCommand{}, err
	}

	return UpdateBookingTermsCommand{
		actor:     actor,
		bookingID: bookingID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateBookingTermsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingTermsCommandIsNotConstructed)
}

func (c UpdateBookingTermsCommand) Actor() services.Actor {
	return c.actor
}

func (c UpdateBookingTermsCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c UpdateBookingTermsCommand) Patch() TermsPatch {
	return c.patch
}
