package queries

import (
	"errors"
	"time"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/review"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var (
	ErrListReviewsQueryIsNotConstructed = errors.New(
		"ListReviewsQuery must be created via NewListReviewsQuery constructor",
	)
	ErrGetReviewQueryIsNotConstructed = errors.New(
		"GetReviewQuery must be created via NewGetReviewQuery constructor",
	)
)

// ListReviewsQuery lists reviews, optionally of one provider. Reviews are
// public.
type ListReviewsQuery struct {
	actor      services.Actor
	providerID *kernel.UUID
	guard      guard.ConstructorGuard
}

func NewListReviewsQuery(actor services.Actor, providerID *kernel.UUID) (ListReviewsQuery, error) {
	if providerID != nil {
		if err := providerID.Validate(); err != nil {
			return ListReviewsQuery{}, err
		}
	}
	return ListReviewsQuery{
		actor:      actor,
		providerID: providerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListReviewsQuery) Validate() error {
	return q.guard.Validate(ErrListReviewsQueryIsNotConstructed)
}

func (q ListReviewsQuery) Actor() services.Actor {
	return q.actor
}

func (q ListReviewsQuery) ProviderID() *kernel.UUID {
	return q.providerID
}

type GetReviewQuery struct {
	actor    services.Actor
	reviewID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetReviewQuery(actor services.Actor, reviewID kernel.UUID) (GetReviewQuery, error) {
	if err := reviewID.Validate(); err != nil {
		return GetReviewQuery{}, err
	}
	return GetReviewQuery{
		actor:    actor,
		reviewID: reviewID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetReviewQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewQueryIsNotConstructed)
}

func (q GetReviewQuery) Actor() services.Actor {
	return q.actor
}

func (q GetReviewQuery) ReviewID() kernel.UUID {
	return q.reviewID
}

// ReviewResponse is a review with its author's username.
type ReviewResponse struct {
	ID         kernel.UUID
	AccountID  kernel.UUID
	Author     string
	ProviderID kernel.UUID
	BookingID  *kernel.UUID
	Rating     review.Rating
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
