package commands

import (
	"context"

	"relocation/internal/core/domain/services"
	"relocation/internal/core/ports"
)

type RescheduleShipmentCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.Cache
	policy     services.AccessPolicy
}

func NewRescheduleShipmentCommandHandler(uowFactory UoWFactory, cache ports.Cache) RescheduleShipmentCommandHandler {
	return RescheduleShipmentCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle patches the delivery schedule and evicts the cached tracking
// result.
func (h *RescheduleShipmentCommandHandler) Handle(ctx context.Context, cmd RescheduleShipmentCommand) error {
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

	repo := uow.ShipmentRepository()
	s, err := repo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	b, err := uow.BookingRepository().Get(ctx, s.BookingID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindShipment, s.ID(), bookingOwnership(b)); err != nil {
		return err
	}

	s.Reschedule(cmd.Patch().apply(s.Schedule()))

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	evictTracking(ctx, h.cache, s.TrackingNumber().String())
	return nil
}
