package commands

import (
	"context"
	"errors"

	"relocation/internal/core/ports"
	"relocation/internal/pkg/errs"
)

// RefreshSessionCommandHandler re-reads the account behind a refresh token so
// that role changes and deleted accounts take effect on refresh.
type RefreshSessionCommandHandler struct {
	uowFactory UoWFactory
	issuer     ports.TokenIssuer
}

func NewRefreshSessionCommandHandler(uowFactory UoWFactory, issuer ports.TokenIssuer) RefreshSessionCommandHandler {
	return RefreshSessionCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

func (h *RefreshSessionCommandHandler) Handle(ctx context.Context, cmd RefreshSessionCommand) (ports.TokenPair, error) {
	if err := cmd.Validate(); err != nil {
		return ports.TokenPair{}, err
	}

	claims, err := h.issuer.ParseRefresh(cmd.RefreshToken())
	if err != nil {
		return ports.TokenPair{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ports.TokenPair{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().Get(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ports.TokenPair{}, errs.NewUnauthenticatedErrorWithCause("account no longer exists", err)
		}
		return ports.TokenPair{}, err
	}

	fresh, err := resolveClaims(ctx, uow, acc)
	if err != nil {
		return ports.TokenPair{}, err
	}

	return h.issuer.Issue(fresh)
}
