package queries

import (
	"errors"
	"time"

	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var (
	ErrListBookingsQueryIsNotConstructed = errors.New(
		"ListBookingsQuery must be created via NewListBookingsQuery constructor",
	)
	ErrGetBookingQueryIsNotConstructed = errors.New(
		"GetBookingQuery must be created via NewGetBookingQuery constructor",
	)
)

// ListBookingsQuery lists bookings: a customer sees the ones they made, a
// provider the ones they serve.
type ListBookingsQuery struct {
	actor services.Actor
	guard guard.ConstructorGuard
}

func NewListBookingsQuery(actor services.Actor) ListBookingsQuery {
	return ListBookingsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

func (q ListBookingsQuery) Actor() services.Actor {
	return q.actor
}

type GetBookingQuery struct {
	actor     services.Actor
	bookingID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetBookingQuery(actor services.Actor, bookingID kernel.UUID) (GetBookingQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetBookingQuery{}, err
	}
	return GetBookingQuery{
		actor:     actor,
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

func (q GetBookingQuery) Actor() services.Actor {
	return q.actor
}

func (q GetBookingQuery) BookingID() kernel.UUID {
	return q.bookingID
}

type BookingResponse struct {
	ID           kernel.UUID
	AccountID    kernel.UUID
	ProviderID   kernel.UUID
	RelocationID kernel.UUID
	Terms        booking.Terms
	Status       booking.Status
	CreatedAt    time.Time
}
