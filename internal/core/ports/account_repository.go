// Package ports defines the contracts between the core and its adapters:
// repositories for every aggregate, the unit of work, and the outbound
// collaborators (event publisher, cache, file storage, auth).
package ports

import (
	"context"

	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account. A taken username returns a Conflict error.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by id.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByUsername retrieves an account by its unique username.
	// Used by the login flow.
	GetByUsername(ctx context.Context, username string) (*account.Account, error)
}
