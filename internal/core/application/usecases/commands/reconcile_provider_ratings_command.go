package commands

import (
	"errors"

	"relocation/internal/pkg/guard"
)

var ErrReconcileProviderRatingsCommandIsNotConstructed = errors.New(
	"ReconcileProviderRatingsCommand must be created via NewReconcileProviderRatingsCommand constructor",
)

// ReconcileProviderRatingsCommand re-runs the rating aggregate for every
// provider with reviews. It repairs ratings after manual data fixes.
type ReconcileProviderRatingsCommand struct {
	guard guard.ConstructorGuard
}

func NewReconcileProviderRatingsCommand() ReconcileProviderRatingsCommand {
	return ReconcileProviderRatingsCommand{guard: guard.NewConstructorGuard()}
}

func (c ReconcileProviderRatingsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileProviderRatingsCommandIsNotConstructed)
}
