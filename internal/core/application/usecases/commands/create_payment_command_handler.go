package commands

import (
	"context"

	"relocation/internal/core/domain/model/payment"
	"relocation/internal/core/domain/services"
)

type CreatePaymentCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

func NewCreatePaymentCommandHandler(uowFactory UoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle records a completed payment against a booking in the actor's scope.
func (h *CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) error {
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

	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindPayment, b.ID(), bookingOwnership(b)); err != nil {
		return err
	}

	d := cmd.Details()
	p, err := payment.NewPayment(cmd.PaymentID(), b.ID(), d.Amount, d.Method, d.TransactionID, d.Notes)
	if err != nil {
		return err
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
