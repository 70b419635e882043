package review

import (
	"errors"
	"strings"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is an account's rating of a provider, optionally tied to one of
// the account's bookings. An account may leave at most one review per
// provider per booking.
type Review struct {
	id         kernel.UUID
	accountID  kernel.UUID
	providerID kernel.UUID
	bookingID  *kernel.UUID
	rating     Rating
	comment    string
	createdAt  time.Time
	updatedAt  time.Time
	guard      guard.ConstructorGuard
}

func NewReview(
	id kernel.UUID,
	accountID kernel.UUID,
	providerID kernel.UUID,
	bookingID *kernel.UUID,
	rating Rating,
	comment string,
) (*Review, error) {
	now := time.Now().UTC()
	r := &Review{
		comment:   strings.TrimSpace(comment),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setReference("account", &r.accountID, accountID),
		r.setReference("provider", &r.providerID, providerID),
		r.setBookingID(bookingID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview rebuilds a review from storage.
func RestoreReview(
	id kernel.UUID,
	accountID kernel.UUID,
	providerID kernel.UUID,
	bookingID *kernel.UUID,
	rating Rating,
	comment string,
	createdAt time.Time,
	updatedAt time.Time,
) *Review {
	return &Review{
		id:         id,
		accountID:  accountID,
		providerID: providerID,
		bookingID:  bookingID,
		rating:     rating,
		comment:    comment,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		guard:      guard.NewConstructorGuard(),
	}
}

func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

func (r *Review) ID() kernel.UUID {
	return r.id
}

func (r *Review) AccountID() kernel.UUID {
	return r.accountID
}

func (r *Review) ProviderID() kernel.UUID {
	return r.providerID
}

// BookingID is nil for reviews not tied to a booking.
func (r *Review) BookingID() *kernel.UUID {
	return r.bookingID
}

func (r *Review) Rating() Rating {
	return r.rating
}

func (r *Review) Comment() string {
	return r.comment
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

// Revise changes the score and comment. The provider's aggregate must be
// recomputed afterwards.
func (r *Review) Revise(rating Rating, comment string) error {
	if err := r.setRating(rating); err != nil {
		return err
	}
	r.comment = strings.TrimSpace(comment)
	r.updatedAt = time.Now().UTC()
	return nil
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setReference(name string, dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}

func (r *Review) setBookingID(bookingID *kernel.UUID) error {
	if bookingID == nil {
		return nil
	}
	if err := bookingID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("booking", err)
	}
	id := *bookingID
	r.bookingID = &id
	return nil
}

func (r *Review) setRating(rating Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	r.rating = rating
	return nil
}
