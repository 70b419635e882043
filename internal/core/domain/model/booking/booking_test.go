package booking_test

import (
	"testing"
	"time"

	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(t *testing.T) *booking.Booking {
	t.Helper()
	amount, err := kernel.MoneyFromString("1200")
	require.NoError(t, err)

	b, err := booking.NewBooking(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		booking.Terms{ServiceType: "full_service", BookingDate: time.Now(), TotalAmount: amount})
	require.NoError(t, err)
	return b
}

func TestNewBooking_StartsPending(t *testing.T) {
	b := newBooking(t)

	require.NoError(t, b.Validate())
	assert.Equal(t, booking.Pending, b.Status())
	assert.Empty(t, b.DomainEvents())
}

func TestNewBooking_Validation(t *testing.T) {
	_, err := booking.NewBooking(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), kernel.UUID{}, booking.Terms{})

	require.Error(t, err)
	assert.ErrorIs(t, err, booking.ErrServiceTypeIsRequired)
	assert.ErrorIs(t, err, booking.ErrBookingDateIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestBooking_Confirm(t *testing.T) {
	b := newBooking(t)

	require.NoError(t, b.Confirm())

	assert.Equal(t, booking.Confirmed, b.Status())
	events := b.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, booking.EventConfirmed, events[0].EventName())
	assert.True(t, b.ID().IsEqual(events[0].AggregateID()))

	changed, ok := events[0].(booking.StatusChanged)
	require.True(t, ok)
	assert.Equal(t, "pending", changed.From)
	assert.Equal(t, "confirmed", changed.To)
}

func TestBooking_ConfirmTwice_LeavesStatusUnchanged(t *testing.T) {
	b := newBooking(t)
	require.NoError(t, b.Confirm())
	b.ClearDomainEvents()

	err := b.Confirm()

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, booking.Confirmed, b.Status())
	assert.Empty(t, b.DomainEvents())
}

func TestBooking_Cancel(t *testing.T) {
	t.Run("second cancel is rejected", func(t *testing.T) {
		b := newBooking(t)

		require.NoError(t, b.Cancel())
		err := b.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, booking.Cancelled, b.Status())
		assert.Len(t, b.DomainEvents(), 1)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Confirm())
		require.NoError(t, b.Advance(booking.Completed))

		require.ErrorIs(t, b.Cancel(), errs.ErrInvalidTransition)
		assert.Equal(t, booking.Completed, b.Status())
	})

	t.Run("confirmed booking can be cancelled", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.Confirm())

		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.Cancelled, b.Status())
	})
}

func TestBooking_UpdateTerms(t *testing.T) {
	b := newBooking(t)
	amount, err := kernel.MoneyFromString("900")
	require.NoError(t, err)

	require.NoError(t, b.UpdateTerms(booking.Terms{
		ServiceType: "packing_only", BookingDate: time.Now(), TotalAmount: amount, Notes: "fragile",
	}))
	assert.Equal(t, "packing_only", b.Terms().ServiceType)
	assert.Equal(t, "900.00", b.Terms().TotalAmount.String())

	require.Error(t, b.UpdateTerms(booking.Terms{}))
	assert.Equal(t, "packing_only", b.Terms().ServiceType)
}

func TestRestoreBooking_RejectsUnknownStatus(t *testing.T) {
	_, err := booking.RestoreBooking(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		booking.Terms{}, booking.Unknown, time.Now())

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
