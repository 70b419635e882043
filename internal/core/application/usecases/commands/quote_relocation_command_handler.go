package commands

import (
	"context"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
)

// QuoteRelocationCommandHandler stores the mock estimate on the relocation
// and returns it.
type QuoteRelocationCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

func NewQuoteRelocationCommandHandler(uowFactory UoWFactory) QuoteRelocationCommandHandler {
	return QuoteRelocationCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *QuoteRelocationCommandHandler) Handle(ctx context.Context, cmd QuoteRelocationCommand) (kernel.Money, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Money{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.RelocationRepository()
	r, err := repo.GetForUpdate(ctx, cmd.RelocationID())
	if err != nil {
		return kernel.Money{}, err
	}

	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindRelocation, r.ID(),
		services.Ownership{AccountID: r.AccountID()}); err != nil {
		return kernel.Money{}, err
	}

	quote, err := r.Quote()
	if err != nil {
		return kernel.Money{}, err
	}
	if err = repo.Update(ctx, r); err != nil {
		return kernel.Money{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Money{}, err
	}
	return quote, nil
}
