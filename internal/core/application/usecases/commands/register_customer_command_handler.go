package commands

import (
	"context"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/ports"
)

// RegisterCustomerCommandHandler hashes the password and stores a new
// customer account. A taken username surfaces as a Conflict error from the
// repository.
type RegisterCustomerCommandHandler struct {
	uowFactory UoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterCustomerCommandHandler(uowFactory UoWFactory, hasher ports.PasswordHasher) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	reg := cmd.Registration()
	hash, err := h.hasher.Hash(reg.Password)
	if err != nil {
		return err
	}

	acc, err := account.NewAccount(cmd.AccountID(), reg.Username, reg.Email, hash, account.RoleCustomer, reg.Details)
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

	return uow.Commit(ctx)
}
