// Package reviewrepo persists reviews and serves the rating inputs of the
// aggregator.
package reviewrepo

import (
	"time"

	"relocation/internal/adapters/out/postgres/accountrepo"
	"relocation/internal/adapters/out/postgres/bookingrepo"
	"relocation/internal/adapters/out/postgres/providerrepo"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// UniqueAuthorIndex is created by the migration with NULLS NOT DISTINCT so
// that a second review without a booking is rejected as well.
const UniqueAuthorIndex = "idx_reviews_author_provider_booking"

type ReviewDTO struct {
	ID         uuid.UUID                `gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID                `gorm:"type:uuid;not null"`
	Account    *accountrepo.AccountDTO  `gorm:"constraint:OnDelete:CASCADE"`
	ProviderID uuid.UUID                `gorm:"type:uuid;not null;index"`
	Provider   *providerrepo.ProfileDTO `gorm:"constraint:OnDelete:CASCADE"`
	BookingID  *uuid.UUID               `gorm:"type:uuid"`
	Booking    *bookingrepo.BookingDTO  `gorm:"constraint:OnDelete:SET NULL"`
	Rating     int                      `gorm:"type:smallint;not null"`
	Comment    string
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         r.ID().Bytes(),
		AccountID:  r.AccountID().Bytes(),
		ProviderID: r.ProviderID().Bytes(),
		BookingID:  kernel.BytesPtr(r.BookingID()),
		Rating:     r.Rating().Int(),
		Comment:    r.Comment(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDPtrFromBytes(dto.BookingID)
	if err != nil {
		return nil, err
	}

	rating, err := review.NewRating(dto.Rating)
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(
		id,
		accountID,
		providerID,
		bookingID,
		rating,
		dto.Comment,
		dto.CreatedAt,
		dto.UpdatedAt,
	), nil
}
