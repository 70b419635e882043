package commands_test

import (
	"errors"
	"testing"
	"time"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/domain/services"
	"relocation/internal/core/ports"
	"relocation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipmentCommandHandler_Handle_GeneratesTrackingNumber(t *testing.T) {
	ctx := t.Context()
	profileID := kernel.NewUUID()
	b := newBooking(t, newRelocation(t, kernel.NewUUID()), profileID)

	var stored *shipment.Shipment
	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.bookings.On("Get", ctx, b.ID()).Return(b, nil).Once()
	uow.shipments.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*shipment.Shipment) }).
		Return(nil).Once()

	cmd, err := commands.NewCreateShipmentCommand(providerActor(profileID), kernel.NewUUID(), b.ID(), "", shipment.Schedule{})
	require.NoError(t, err)
	h := commands.NewCreateShipmentCommandHandler(factoryFor(uow))

	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, stored)
	assert.False(t, stored.TrackingNumber().IsZero())
	assert.Equal(t, shipment.Preparing, stored.Status())
	uow.assertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_OutsideScope(t *testing.T) {
	ctx := t.Context()
	b := newBooking(t, newRelocation(t, kernel.NewUUID()), kernel.NewUUID())

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.bookings.On("Get", ctx, b.ID()).Return(b, nil).Once()

	cmd, _ := commands.NewCreateShipmentCommand(providerActor(kernel.NewUUID()), kernel.NewUUID(), b.ID(), "", shipment.Schedule{})
	h := commands.NewCreateShipmentCommandHandler(factoryFor(uow))

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	uow.assertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	profileID := kernel.NewUUID()
	b := newBooking(t, newRelocation(t, kernel.NewUUID()), profileID)
	s := newShipment(t, b)

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.shipments.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
	uow.bookings.On("Get", ctx, b.ID()).Return(b, nil).Once()
	uow.shipments.On("Update", ctx, s).Return(nil).Once()

	cache := new(MockCache)
	cache.On("Delete", ctx, ports.TrackingCacheKey(s.TrackingNumber().String())).Return(nil).Once()

	cmd, err := commands.NewUpdateShipmentStatusCommand(providerActor(profileID), s.ID(), "in_transit", "Lyon hub")
	require.NoError(t, err)
	h := commands.NewUpdateShipmentStatusCommandHandler(factoryFor(uow), cache)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, shipment.InTransit, s.Status())
	assert.Equal(t, "Lyon hub", s.CurrentLocation())
	require.Len(t, s.DomainEvents(), 1)
	assert.Equal(t, shipment.EventStatusChanged, s.DomainEvents()[0].EventName())
	uow.assertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_AnyOrder(t *testing.T) {
	ctx := t.Context()
	actor := adminActor()
	b := newBooking(t, newRelocation(t, kernel.NewUUID()), kernel.NewUUID())
	s := newShipment(t, b)

	cache := new(MockCache)
	cache.On("Delete", ctx, mock.Anything).Return(nil)

	for _, status := range []string{"delivered", "preparing", "delayed"} {
		uow := newMockUoW()
		uow.expectCommitted(ctx)
		uow.shipments.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
		uow.bookings.On("Get", ctx, b.ID()).Return(b, nil).Once()
		uow.shipments.On("Update", ctx, s).Return(nil).Once()

		cmd, err := commands.NewUpdateShipmentStatusCommand(actor, s.ID(), status, "")
		require.NoError(t, err)
		h := commands.NewUpdateShipmentStatusCommandHandler(factoryFor(uow), cache)
		require.NoError(t, h.Handle(ctx, cmd))
		assert.Equal(t, status, s.Status().String())
	}
	assert.Empty(t, s.CurrentLocation())
}

func TestUpdateShipmentStatusCommandHandler_Handle_EvictionFailureIsNotReturned(t *testing.T) {
	ctx := t.Context()
	b := newBooking(t, newRelocation(t, kernel.NewUUID()), kernel.NewUUID())
	s := newShipment(t, b)

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.shipments.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
	uow.bookings.On("Get", ctx, b.ID()).Return(b, nil).Once()
	uow.shipments.On("Update", ctx, s).Return(nil).Once()

	cache := new(MockCache)
	cache.On("Delete", ctx, mock.Anything).Return(errors.New("connection refused")).Once()

	cmd, _ := commands.NewUpdateShipmentStatusCommand(adminActor(), s.ID(), "delayed", "")
	h := commands.NewUpdateShipmentStatusCommandHandler(factoryFor(uow), cache)

	require.NoError(t, h.Handle(ctx, cmd))
	cache.AssertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_ForeignCustomerIsForbidden(t *testing.T) {
	ctx := t.Context()
	r := newRelocation(t, kernel.NewUUID())
	b := newBooking(t, r, kernel.NewUUID())
	s := newShipment(t, b)

	uow := newMockUoW()
	uow.expectRolledBack(ctx)
	uow.shipments.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
	uow.bookings.On("Get", ctx, b.ID()).Return(b, nil).Once()

	cache := new(MockCache)
	cmd, _ := commands.NewUpdateShipmentStatusCommand(customerActor(), s.ID(), "delivered", "")
	h := commands.NewUpdateShipmentStatusCommandHandler(factoryFor(uow), cache)

	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	assert.Equal(t, shipment.Preparing, s.Status())
	cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.assertExpectations(t)
}

func TestUpdateShipmentStatusCommandHandler_Handle_OwningCustomerIsAllowed(t *testing.T) {
	ctx := t.Context()
	r := newRelocation(t, kernel.NewUUID())
	b := newBooking(t, r, kernel.NewUUID())
	s := newShipment(t, b)

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.shipments.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
	uow.bookings.On("Get", ctx, b.ID()).Return(b, nil).Once()
	uow.shipments.On("Update", ctx, s).Return(nil).Once()

	cache := new(MockCache)
	cache.On("Delete", ctx, ports.TrackingCacheKey(s.TrackingNumber().String())).Return(nil).Once()

	owner := services.NewActor(b.AccountID(), account.RoleCustomer, nil)
	cmd, err := commands.NewUpdateShipmentStatusCommand(owner, s.ID(), "delivered", "")
	require.NoError(t, err)
	h := commands.NewUpdateShipmentStatusCommandHandler(factoryFor(uow), cache)

	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, shipment.Delivered, s.Status())
	uow.assertExpectations(t)
	cache.AssertExpectations(t)
}

func TestNewUpdateShipmentStatusCommand_RejectsUnknownStatus(t *testing.T) {
	for _, status := range []string{"", "unknown", "lost", "IN_TRANSIT"} {
		t.Run(status, func(t *testing.T) {
			_, err := commands.NewUpdateShipmentStatusCommand(adminActor(), kernel.NewUUID(), status, "")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestRescheduleShipmentCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	profileID := kernel.NewUUID()
	b := newBooking(t, newRelocation(t, kernel.NewUUID()), profileID)
	s := newShipment(t, b)

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.shipments.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
	uow.bookings.On("Get", ctx, b.ID()).Return(b, nil).Once()
	uow.shipments.On("Update", ctx, s).Return(nil).Once()

	cache := new(MockCache)
	cache.On("Delete", ctx, ports.TrackingCacheKey(s.TrackingNumber().String())).Return(nil).Once()

	delivery := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	notes := "leave at the back door"
	cmd, err := commands.NewRescheduleShipmentCommand(providerActor(profileID), s.ID(), commands.SchedulePatch{
		EstimatedDelivery: &delivery,
		Notes:             &notes,
	})
	require.NoError(t, err)
	h := commands.NewRescheduleShipmentCommandHandler(factoryFor(uow), cache)

	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, s.Schedule().EstimatedDelivery)
	assert.True(t, delivery.Equal(*s.Schedule().EstimatedDelivery))
	assert.Equal(t, notes, s.Schedule().Notes)
	assert.Equal(t, shipment.Preparing, s.Status())
	uow.assertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreatePaymentCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	customer := customerActor()
	b := newBooking(t, newRelocation(t, customer.AccountID()), kernel.NewUUID())

	uow := newMockUoW()
	uow.expectCommitted(ctx)
	uow.bookings.On("Get", ctx, b.ID()).Return(b, nil).Once()
	uow.payments.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil).Once()

	amount, err := kernel.MoneyFromString("1250.00")
	require.NoError(t, err)
	cmd, err := commands.NewCreatePaymentCommand(customer, kernel.NewUUID(), b.ID(), commands.PaymentDetails{
		Amount: amount,
		Method: "card",
	})
	require.NoError(t, err)
	h := commands.NewCreatePaymentCommandHandler(factoryFor(uow))

	require.NoError(t, h.Handle(ctx, cmd))
	uow.assertExpectations(t)
}
