package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/review"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/guard"
)

var ErrUpdateReviewCommandIsNotConstructed = errors.New(
	"UpdateReviewCommand must be created via NewUpdateReviewCommand constructor",
)

// UpdateReviewCommand revises the rating and/or comment of the actor's
// review. Nil fields are left as they are.
type UpdateReviewCommand struct {
	actor    services.Actor
	reviewID kernel.UUID
	rating   *review.Rating
	comment  *string

	guard guard.ConstructorGuard
}

func NewUpdateReviewCommand(
	actor services.Actor,
	reviewID kernel.UUID,
	rating *int,
	comment *string,
) (UpdateReviewCommand, error) {
	cmd := UpdateReviewCommand{
		actor:   actor,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	var ratingErr error
	if rating != nil {
		parsed, err := review.NewRating(*rating)
		ratingErr = err
		cmd.rating = &parsed
	}

	if err := errors.Join(validateActor(actor), reviewID.Validate(), ratingErr); err != nil {
		return UpdateReviewCommand{}, err
	}
	cmd.reviewID = reviewID

	return cmd, nil
}

func (c UpdateReviewCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReviewCommandIsNotConstructed)
}

func (c UpdateReviewCommand) Actor() services.Actor {
	return c.actor
}

func (c UpdateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c UpdateReviewCommand) Rating() *review.Rating {
	return c.rating
}

func (c UpdateReviewCommand) Comment() *string {
	return c.comment
}
