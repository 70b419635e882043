package commands

import (
	"context"

	"relocation/internal/core/domain/services"
)

// UpdateProviderProfileCommandHandler applies a patch to a profile owned by
// the actor. Admins may patch any profile.
type UpdateProviderProfileCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
}

func NewUpdateProviderProfileCommandHandler(uowFactory UoWFactory) UpdateProviderProfileCommandHandler {
	return UpdateProviderProfileCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *UpdateProviderProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProviderProfileCommand) error {
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

	repo := uow.ProviderRepository()
	profile, err := repo.GetForUpdate(ctx, cmd.ProfileID())
	if err != nil {
		return err
	}

	profileID := profile.ID()
	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindProvider, profileID, services.Ownership{
		AccountID:  profile.AccountID(),
		ProviderID: &profileID,
	}); err != nil {
		return err
	}

	patch := cmd.Patch()
	if err = profile.UpdateInfo(patch.apply(profile.Info())); err != nil {
		return err
	}
	if patch.Available != nil {
		profile.SetAvailability(*patch.Available)
	}

	if err = repo.Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
