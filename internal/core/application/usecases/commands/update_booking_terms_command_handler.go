package commands

import (
	"context"

	"relocation/internal/core/domain/services"
)

type UpdateBookingTermsCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

func NewUpdateBookingTermsCommandHandler(uowFactory UoWFactory) UpdateBookingTermsCommandHandler {
	return UpdateBookingTermsCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle patches the terms of a booking in the actor's scope.
func (h *UpdateBookingTermsCommandHandler) Handle(ctx context.Context, cmd UpdateBookingTermsCommand) error {
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

	if err = b.UpdateTerms(cmd.Patch().apply(b.Terms())); err != nil {
		return err
	}

	if err = repo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
