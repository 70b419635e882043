package commands

import (
	"context"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/provider"
	"relocation/internal/core/ports"
)

// RegisterProviderCommandHandler stores a provider account and its profile
// in one transaction; either both exist afterwards or neither does.
type RegisterProviderCommandHandler struct {
	uowFactory UoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterProviderCommandHandler(uowFactory UoWFactory, hasher ports.PasswordHasher) RegisterProviderCommandHandler {
	return RegisterProviderCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h *RegisterProviderCommandHandler) Handle(ctx context.Context, cmd RegisterProviderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	reg := cmd.Registration()
	hash, err := h.hasher.Hash(reg.Password)
	if err != nil {
		return err
	}

	acc, err := account.NewAccount(cmd.AccountID(), reg.Username, reg.Email, hash, account.RoleProvider, reg.Details)
	if err != nil {
		return err
	}
	profile, err := provider.NewProfile(cmd.ProfileID(), cmd.AccountID(), cmd.Info())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return err
	}
	if err = uow.ProviderRepository().Add(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
