package ports

import (
	"context"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews and the
// reads the rating aggregator needs.
type ReviewRepository interface {
	// Add persists a new review. A duplicate (account, provider, booking)
	// returns a Conflict error.
	Add(ctx context.Context, aggregate *review.Review) error

	Update(ctx context.Context, aggregate *review.Review) error
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// Exists reports whether accountID already reviewed providerID for
	// bookingID. A nil bookingID matches reviews without a booking.
	Exists(ctx context.Context, accountID, providerID kernel.UUID, bookingID *kernel.UUID) (bool, error)

	// ListRatingsByProvider returns the rating of every review referencing
	// providerID, as visible inside the current transaction.
	ListRatingsByProvider(ctx context.Context, providerID kernel.UUID) ([]review.Rating, error)

	// ProvidersWithReviews returns the ids of all providers referenced by at
	// least one review.
	ProvidersWithReviews(ctx context.Context) ([]kernel.UUID, error)
}
