package commands

import (
	"context"

	"relocation/internal/core/domain/services"
)

// ConfirmBookingCommandHandler confirms a booking and books its relocation
// in one transaction.
//
// Both rows are read with SELECT ... FOR UPDATE, booking first. Two
// concurrent confirmations of the same booking serialize on the booking
// row; the second one sees status confirmed and fails with an
// InvalidTransition error.
//
// Example:
//
//	handler := NewConfirmBookingCommandHandler(uowFactory)
//	cmd, _ := NewConfirmBookingCommand(actor, bookingID)
//
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrInvalidTransition) {
//	    // booking was not pending; nothing changed
//	}
type ConfirmBookingCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	lifecycle  services.BookingLifecycle
}

func NewConfirmBookingCommandHandler(uowFactory UoWFactory) ConfirmBookingCommandHandler {
	return ConfirmBookingCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		lifecycle:  services.NewBookingLifecycle(),
	}
}

func (h *ConfirmBookingCommandHandler) Handle(ctx context.Context, cmd ConfirmBookingCommand) error {
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

	bookingRepo := uow.BookingRepository()
	b, err := bookingRepo.GetForUpdate(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindBooking, b.ID(), bookingOwnership(b)); err != nil {
		return err
	}

	relocationRepo := uow.RelocationRepository()
	r, err := relocationRepo.GetForUpdate(ctx, b.RelocationID())
	if err != nil {
		return err
	}

	if err = h.lifecycle.Confirm(b, r); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, b); err != nil {
		return err
	}
	if err = relocationRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
