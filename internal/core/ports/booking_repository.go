package ports

import (
	"context"

	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
//
// Status transitions must read the booking through GetForUpdate so that the
// check of the current status and the write of the next one happen under
// the same row lock:
//
//	b, err := repo.GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err := b.Confirm(); err != nil {
//	    return err // status unchanged
//	}
//	return repo.Update(ctx, b)
type BookingRepository interface {
	Add(ctx context.Context, aggregate *booking.Booking) error
	Update(ctx context.Context, aggregate *booking.Booking) error
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*booking.Booking, error)
}
