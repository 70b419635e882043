package commands

import (
	"context"

	"relocation/internal/core/domain/services"
)

// AdvanceBookingCommandHandler lets the booking's provider (or an admin)
// move the booking into in_progress or completed. Customers cannot advance
// their own bookings.
type AdvanceBookingCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

func NewAdvanceBookingCommandHandler(uowFactory UoWFactory) AdvanceBookingCommandHandler {
	return AdvanceBookingCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *AdvanceBookingCommandHandler) Handle(ctx context.Context, cmd AdvanceBookingCommand) error {
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

	repo := uow.BookingRepository()
	b, err := repo.GetForUpdate(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	providerID := b.ProviderID()
	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindBooking, b.ID(),
		services.Ownership{ProviderID: &providerID}); err != nil {
		return err
	}

	if err = b.Advance(cmd.Target()); err != nil {
		return err
	}

	if err = repo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
