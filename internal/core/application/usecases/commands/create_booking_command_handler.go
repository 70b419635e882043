package commands

import (
	"context"

	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/services"
)

// CreateBookingCommandHandler checks that the provider exists and that the
// relocation belongs to the actor, then stores a pending booking.
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.BookingLifecycle
}

func NewCreateBookingCommandHandler(uowFactory UoWFactory) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewBookingLifecycle(),
	}
}

func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) error {
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

	if _, err := uow.ProviderRepository().Get(ctx, cmd.ProviderID()); err != nil {
		return err
	}

	r, err := uow.RelocationRepository().Get(ctx, cmd.RelocationID())
	if err != nil {
		return err
	}

	accountID := cmd.Actor().AccountID()
	if err = h.lifecycle.CanOpen(accountID, r); err != nil {
		return err
	}

	b, err := booking.NewBooking(cmd.BookingID(), accountID, cmd.ProviderID(), r.ID(), cmd.Terms())
	if err != nil {
		return err
	}

	if err = uow.BookingRepository().Add(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
