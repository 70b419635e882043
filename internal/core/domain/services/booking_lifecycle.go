package services

import (
	"errors"

	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/pkg/errs"
)

var (
	ErrRelocationNotLinked = errs.NewValueIsInvalidErrorWithCause(
		"relocation", errors.New("relocation is not the one referenced by the booking"))
	ErrRelocationNotOwned = errs.NewValueIsInvalidErrorWithCause(
		"relocation", errors.New("relocation must belong to the booking account"))
)

// BookingLifecycle coordinates booking status changes with their side
// effects on the linked relocation.
//
// Business rules:
//   - a booking may only be opened for a relocation owned by the same account
//   - confirming a booking marks its relocation as booked; both changes are
//     made together or not at all
//   - cancelling has no cascade
type BookingLifecycle struct{}

func NewBookingLifecycle() BookingLifecycle {
	return BookingLifecycle{}
}

// CanOpen checks the relocation ownership invariant for a new booking.
func (BookingLifecycle) CanOpen(accountID kernel.UUID, r *relocation.Relocation) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if !r.IsOwnedBy(accountID) {
		return ErrRelocationNotOwned
	}
	return nil
}

// Confirm confirms b and books r. Neither aggregate is modified on error.
func (BookingLifecycle) Confirm(b *booking.Booking, r *relocation.Relocation) error {
	if err := errors.Join(b.Validate(), r.Validate()); err != nil {
		return err
	}
	if !b.RelocationID().IsEqual(r.ID()) {
		return ErrRelocationNotLinked
	}

	if err := b.Confirm(); err != nil {
		return err
	}
	r.MarkBooked()
	return nil
}

// Cancel cancels b.
func (BookingLifecycle) Cancel(b *booking.Booking) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return b.Cancel()
}
