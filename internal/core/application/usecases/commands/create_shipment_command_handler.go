package commands

import (
	"context"

	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/domain/services"
)

// CreateShipmentCommandHandler stores a shipment for a booking in the
// actor's scope. Uniqueness of the tracking number and of the booking is
// enforced by storage and surfaces as a Conflict error.
type CreateShipmentCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

func NewCreateShipmentCommandHandler(uowFactory UoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	b, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindShipment, b.ID(), bookingOwnership(b)); err != nil {
		return err
	}

	s, err := shipment.NewShipment(cmd.ShipmentID(), b.ID(), cmd.TrackingNumber(), cmd.Schedule())
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
