package reviewrepo

import (
	"context"
	"errors"

	"relocation/internal/adapters/out/postgres/pgerr"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/review"
	"relocation/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReviewRepository implements ports.ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a review. A second review by the same account for the same
// provider and booking violates UniqueAuthorIndex and is reported as a
// Conflict.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "review", "for provider "+aggregate.ProviderID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReviewRepository) Update(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("id = ?", dto.ID).
		Select("rating", "comment", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether the account already reviewed the provider for the
// booking. A nil booking matches reviews without a booking.
func (r *GormReviewRepository) Exists(
	ctx context.Context,
	accountID, providerID kernel.UUID,
	bookingID *kernel.UUID,
) (bool, error) {
	query := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("account_id = ? AND provider_id = ?", accountID.Bytes(), providerID.Bytes())
	if bookingID == nil {
		query = query.Where("booking_id IS NULL")
	} else {
		query = query.Where("booking_id = ?", bookingID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListRatingsByProvider returns every score given to the provider, oldest
// first.
func (r *GormReviewRepository) ListRatingsByProvider(ctx context.Context, providerID kernel.UUID) ([]review.Rating, error) {
	var scores []int
	err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("provider_id = ?", providerID.Bytes()).
		Order("created_at").
		Pluck("rating", &scores).Error
	if err != nil {
		return nil, err
	}

	ratings := make([]review.Rating, 0, len(scores))
	for _, s := range scores {
		rating, ratingErr := review.NewRating(s)
		if ratingErr != nil {
			return nil, ratingErr
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

func (r *GormReviewRepository) ProvidersWithReviews(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&ReviewDTO{}).Distinct().Pluck("provider_id", &raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, b := range raw {
		id, err := kernel.UUIDFromBytes(b[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
