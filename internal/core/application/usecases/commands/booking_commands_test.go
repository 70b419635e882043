package commands_test

import (
	"errors"
	"testing"
	"time"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newRelocation(t, actor.AccountID())
	profile := newProfile(t, kernel.NewUUID())
	amount, _ := kernel.MoneyFromString("800")

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.providers.On("Get", ctx, profile.ID()).Return(profile, nil).Once()
	uow.relocations.On("Get", ctx, r.ID()).Return(r, nil).Once()
	uow.bookings.On("Add", ctx, mock.MatchedBy(func(b *booking.Booking) bool {
		return b.Status() == booking.Pending && b.AccountID().IsEqual(actor.AccountID())
	})).Return(nil).Once()

	cmd, err := commands.NewCreateBookingCommand(actor, kernel.NewUUID(), profile.ID(), r.ID(),
		booking.Terms{ServiceType: "packing", BookingDate: time.Now(), TotalAmount: amount})
	require.NoError(t, err)

	h := commands.NewCreateBookingCommandHandler(factoryFor(uow))
	require.NoError(t, h.Handle(ctx, cmd))
	uow.assertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_ForeignRelocation(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newRelocation(t, kernel.NewUUID())
	profile := newProfile(t, kernel.NewUUID())
	amount, _ := kernel.MoneyFromString("800")

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.providers.On("Get", ctx, profile.ID()).Return(profile, nil).Once()
	uow.relocations.On("Get", ctx, r.ID()).Return(r, nil).Once()

	cmd, err := commands.NewCreateBookingCommand(actor, kernel.NewUUID(), profile.ID(), r.ID(),
		booking.Terms{ServiceType: "packing", BookingDate: time.Now(), TotalAmount: amount})
	require.NoError(t, err)

	h := commands.NewCreateBookingCommandHandler(factoryFor(uow))
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrRelocationNotOwned)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.assertExpectations(t)
}

func TestNewCreateBookingCommand_Anonymous(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(services.AnonymousActor(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), booking.Terms{})

	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestConfirmBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newRelocation(t, actor.AccountID())
	b := newBooking(t, r, kernel.NewUUID())

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()
	uow.relocations.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once()
	uow.bookings.On("Update", ctx, b).Return(nil).Once()
	uow.relocations.On("Update", ctx, r).Return(nil).Once()

	cmd, err := commands.NewConfirmBookingCommand(actor, b.ID())
	require.NoError(t, err)

	h := commands.NewConfirmBookingCommandHandler(factoryFor(uow))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, booking.Confirmed, b.Status())
	assert.Equal(t, relocation.Booked, r.Status())
	require.Len(t, b.DomainEvents(), 1)
	assert.Equal(t, booking.EventConfirmed, b.DomainEvents()[0].EventName())
	uow.assertExpectations(t)
}

func TestConfirmBookingCommandHandler_Handle_NotPending(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newRelocation(t, actor.AccountID())
	b := newBooking(t, r, kernel.NewUUID())
	require.NoError(t, b.Confirm())

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()
	uow.relocations.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once()

	cmd, _ := commands.NewConfirmBookingCommand(actor, b.ID())
	h := commands.NewConfirmBookingCommandHandler(factoryFor(uow))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, booking.Confirmed, b.Status())
	assert.Equal(t, relocation.Planning, r.Status())
	uow.bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.assertExpectations(t)
}

func TestConfirmBookingCommandHandler_Handle_OutsideScope(t *testing.T) {
	ctx := t.Context()
	r := newRelocation(t, kernel.NewUUID())
	b := newBooking(t, r, kernel.NewUUID())

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()

	cmd, _ := commands.NewConfirmBookingCommand(customerActor(), b.ID())
	h := commands.NewConfirmBookingCommandHandler(factoryFor(uow))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, booking.Pending, b.Status())
	uow.assertExpectations(t)
}

func TestConfirmBookingCommandHandler_Handle_ProviderOfBooking(t *testing.T) {
	ctx := t.Context()
	profileID := kernel.NewUUID()
	r := newRelocation(t, kernel.NewUUID())
	b := newBooking(t, r, profileID)

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()
	uow.relocations.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once()
	uow.bookings.On("Update", ctx, b).Return(nil).Once()
	uow.relocations.On("Update", ctx, r).Return(nil).Once()

	cmd, _ := commands.NewConfirmBookingCommand(providerActor(profileID), b.ID())
	h := commands.NewConfirmBookingCommandHandler(factoryFor(uow))

	require.NoError(t, h.Handle(ctx, cmd))
	uow.assertExpectations(t)
}

func TestConfirmBookingCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newRelocation(t, actor.AccountID())
	b := newBooking(t, r, kernel.NewUUID())

	uow := newMockUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()
	uow.relocations.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once()
	uow.bookings.On("Update", ctx, b).Return(nil).Once()
	uow.relocations.On("Update", ctx, r).Return(nil).Once()

	cmd, _ := commands.NewConfirmBookingCommand(actor, b.ID())
	h := commands.NewConfirmBookingCommandHandler(factoryFor(uow))

	require.EqualError(t, h.Handle(ctx, cmd), "commit error")
	uow.assertExpectations(t)
}

func TestCancelBookingCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newRelocation(t, actor.AccountID())
	b := newBooking(t, r, kernel.NewUUID())

	t.Run("first cancel succeeds", func(t *testing.T) {
		uow := newMockUoW()
		uow.expectCommitted(ctx)
		uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()
		uow.bookings.On("Update", ctx, b).Return(nil).Once()

		cmd, _ := commands.NewCancelBookingCommand(actor, b.ID())
		h := commands.NewCancelBookingCommandHandler(factoryFor(uow))

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, booking.Cancelled, b.Status())
		uow.assertExpectations(t)
	})

	t.Run("second cancel is an invalid transition", func(t *testing.T) {
		uow := newMockUoW()
		uow.expectRolledBack(ctx)
		uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()

		cmd, _ := commands.NewCancelBookingCommand(actor, b.ID())
		h := commands.NewCancelBookingCommandHandler(factoryFor(uow))

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidTransition)
		uow.assertExpectations(t)
	})
}

func TestAdvanceBookingCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	profileID := kernel.NewUUID()
	customer := customerActor()
	r := newRelocation(t, customer.AccountID())

	t.Run("provider of the booking", func(t *testing.T) {
		b := newBooking(t, r, profileID)
		uow := newMockUoW()
		uow.expectCommitted(ctx)
		uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()
		uow.bookings.On("Update", ctx, b).Return(nil).Once()

		cmd, err := commands.NewAdvanceBookingCommand(providerActor(profileID), b.ID(), booking.InProgress)
		require.NoError(t, err)
		h := commands.NewAdvanceBookingCommandHandler(factoryFor(uow))

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, booking.InProgress, b.Status())
	})

	t.Run("admin", func(t *testing.T) {
		b := newBooking(t, r, profileID)
		uow := newMockUoW()
		uow.expectCommitted(ctx)
		uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()
		uow.bookings.On("Update", ctx, b).Return(nil).Once()

		cmd, _ := commands.NewAdvanceBookingCommand(adminActor(), b.ID(), booking.Completed)
		h := commands.NewAdvanceBookingCommandHandler(factoryFor(uow))

		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, booking.Completed, b.Status())
	})

	t.Run("customer owning the booking", func(t *testing.T) {
		b := newBooking(t, r, profileID)
		uow := newMockUoW()
		uow.expectRolledBack(ctx)
		uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()

		cmd, _ := commands.NewAdvanceBookingCommand(customer, b.ID(), booking.Completed)
		h := commands.NewAdvanceBookingCommandHandler(factoryFor(uow))

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
		assert.Equal(t, booking.Pending, b.Status())
	})
}

func TestNewAdvanceBookingCommand_RejectsNonOperatorTarget(t *testing.T) {
	_, err := commands.NewAdvanceBookingCommand(adminActor(), kernel.NewUUID(), booking.Confirmed)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUpdateBookingTermsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newRelocation(t, actor.AccountID())
	b := newBooking(t, r, kernel.NewUUID())
	notes := "third floor, no lift"

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.bookings.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()
	uow.bookings.On("Update", ctx, b).Return(nil).Once()

	cmd, err := commands.NewUpdateBookingTermsCommand(actor, b.ID(), commands.TermsPatch{Notes: &notes})
	require.NoError(t, err)
	h := commands.NewUpdateBookingTermsCommandHandler(factoryFor(uow))

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, notes, b.Terms().Notes)
	assert.Equal(t, "full_service", b.Terms().ServiceType)
	assert.Equal(t, booking.Pending, b.Status())
	uow.assertExpectations(t)
}
