package commands

import (
	"context"

	"relocation/internal/core/domain/services"
)

// CancelBookingCommandHandler cancels a booking under its row lock. A second
// cancellation fails with an InvalidTransition error.
type CancelBookingCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	lifecycle  services.BookingLifecycle
}

func NewCancelBookingCommandHandler(uowFactory UoWFactory) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		lifecycle:  services.NewBookingLifecycle(),
	}
}

func (h *CancelBookingCommandHandler) Handle(ctx context.Context, cmd CancelBookingCommand) error {
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

	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindBooking, b.ID(), bookingOwnership(b)); err != nil {
		return err
	}

	if err = h.lifecycle.Cancel(b); err != nil {
		return err
	}

	if err = repo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
