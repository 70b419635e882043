package ports

import (
	"context"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/provider"
)

// ProviderRepository defines the persistence contract for provider profiles.
type ProviderRepository interface {
	// Add persists a new profile. A second profile for the same account
	// returns a Conflict error.
	Add(ctx context.Context, aggregate *provider.Profile) error

	// Update persists changes to an existing profile, including the derived
	// rating fields.
	Update(ctx context.Context, aggregate *provider.Profile) error

	// Get retrieves a profile by id.
	Get(ctx context.Context, id kernel.UUID) (*provider.Profile, error)

	// GetForUpdate retrieves a profile and locks its row until the end of the
	// current transaction. Concurrent review writes for the same provider
	// serialize on this lock before recomputing the rating.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*provider.Profile, error)

	// GetByAccount retrieves the profile owned by accountID.
	GetByAccount(ctx context.Context, accountID kernel.UUID) (*provider.Profile, error)
}
