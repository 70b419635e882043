package commands

import (
	"context"

	"relocation/internal/core/domain/services"
)

// UpdateRelocationCommandHandler patches a relocation owned by the actor.
type UpdateRelocationCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

func NewUpdateRelocationCommandHandler(uowFactory UoWFactory) UpdateRelocationCommandHandler {
	return UpdateRelocationCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *UpdateRelocationCommandHandler) Handle(ctx context.Context, cmd UpdateRelocationCommand) error {
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

	repo := uow.RelocationRepository()
	r, err := repo.GetForUpdate(ctx, cmd.RelocationID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindRelocation, r.ID(),
		services.Ownership{AccountID: r.AccountID()}); err != nil {
		return err
	}

	patch := cmd.Patch()
	if err = r.UpdatePlan(patch.apply(r.Plan())); err != nil {
		return err
	}
	if patch.Status != nil {
		if err = r.ChangeStatus(*patch.Status); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
