package commands

import (
	"context"

	"relocation/internal/core/domain/services"
	"relocation/internal/core/ports"

	"github.com/rs/zerolog"
)

// UpdateShipmentStatusCommandHandler writes a status change under the
// shipment row lock, then evicts the cached tracking result so the next
// lookup sees the new status.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory UoWFactory
	cache      ports.Cache
	policy     services.AccessPolicy
}

func NewUpdateShipmentStatusCommandHandler(uowFactory UoWFactory, cache ports.Cache) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
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

	if err = s.UpdateStatus(cmd.Status(), cmd.Location()); err != nil {
		return err
	}

	if err = repo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	evictTracking(ctx, h.cache, s.TrackingNumber().String())
	return nil
}

// evictTracking drops a cached tracking result. A failure only delays
// visibility until the entry expires, so it is logged and not returned.
func evictTracking(ctx context.Context, cache ports.Cache, code string) {
	if err := cache.Delete(ctx, ports.TrackingCacheKey(code)); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("tracking_number", code).Msg("failed to evict tracking cache entry")
	}
}
