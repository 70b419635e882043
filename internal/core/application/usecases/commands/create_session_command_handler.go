package commands

import (
	"context"
	"errors"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/ports"
	"relocation/internal/pkg/errs"
)

var ErrInvalidCredentials = errs.NewUnauthenticatedError("invalid username or password")

// CreateSessionCommandHandler verifies credentials and issues tokens. The
// claims carry the provider profile of provider accounts, so later requests
// can be scoped without another lookup.
type CreateSessionCommandHandler struct {
	uowFactory UoWFactory
	hasher     ports.PasswordHasher
	issuer     ports.TokenIssuer
}

func NewCreateSessionCommandHandler(
	uowFactory UoWFactory,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

func (h *CreateSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) (ports.TokenPair, error) {
	if err := cmd.Validate(); err != nil {
		return ports.TokenPair{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.TokenPair{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ports.TokenPair{}, ErrInvalidCredentials
		}
		return ports.TokenPair{}, err
	}

	if err = h.hasher.Compare(acc.PasswordHash(), cmd.Password()); err != nil {
		return ports.TokenPair{}, ErrInvalidCredentials
	}

	claims, err := resolveClaims(ctx, uow, acc)
	if err != nil {
		return ports.TokenPair{}, err
	}

	return h.issuer.Issue(claims)
}

func resolveClaims(ctx context.Context, uow UoW, acc *account.Account) (ports.Claims, error) {
	claims := ports.Claims{
		AccountID: acc.ID(),
		Role:      acc.Role(),
	}
	if !acc.IsProvider() {
		return claims, nil
	}

	profile, err := uow.ProviderRepository().GetByAccount(ctx, acc.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return claims, nil
	case err != nil:
		return ports.Claims{}, err
	}

	profileID := profile.ID()
	claims.ProviderID = &profileID
	return claims, nil
}
