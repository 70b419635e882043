package commands

import (
	"errors"
	"strings"

	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

var ErrRefreshSessionCommandIsNotConstructed = errors.New(
	"RefreshSessionCommand must be created via NewRefreshSessionCommand constructor",
)

// RefreshSessionCommand exchanges a refresh token for a new token pair.
type RefreshSessionCommand struct {
	refreshToken string

	guard guard.ConstructorGuard
}

func NewRefreshSessionCommand(refreshToken string) (RefreshSessionCommand, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return RefreshSessionCommand{}, errs.NewValueIsRequiredError("refresh")
	}

	return RefreshSessionCommand{
		refreshToken: refreshToken,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RefreshSessionCommand) Validate() error {
	return c.guard.Validate(ErrRefreshSessionCommandIsNotConstructed)
}

func (c RefreshSessionCommand) RefreshToken() string {
	return c.refreshToken
}
