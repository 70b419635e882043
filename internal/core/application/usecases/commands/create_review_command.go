package commands

import (
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/review"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/errs"
	"relocation/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand rates a provider, optionally for a specific booking.
//
// Example:
//
//	cmd, err := NewCreateReviewCommand(actor, kernel.NewUUID(), providerID, &bookingID, 5, "On time, careful")
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	actor      services.Actor
	reviewID   kernel.UUID
	providerID kernel.UUID
	bookingID  *kernel.UUID
	rating     review.Rating
	comment    string

	guard guard.ConstructorGuard
}

func NewCreateReviewCommand(
	actor services.Actor,
	reviewID kernel.UUID,
	providerID kernel.UUID,
	bookingID *kernel.UUID,
	rating int,
	comment string,
) (CreateReviewCommand, error) {
	cmd := CreateReviewCommand{
		actor:     actor,
		bookingID: bookingID,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}

	var providerErr error
	if err := providerID.Validate(); err != nil {
		providerErr = errs.NewValueIsRequiredErrorWithCause("provider", err)
	}
	var bookingErr error
	if bookingID != nil {
		bookingErr = bookingID.Validate()
	}

	if err := errors.Join(
		validateActor(actor),
		reviewID.Validate(),
		providerErr,
		bookingErr,
		cmd.setRating(rating),
	); err != nil {
		return CreateReviewCommand{}, err
	}
	cmd.reviewID = reviewID
	cmd.providerID = providerID

	return cmd, nil
}

func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

func (c CreateReviewCommand) Actor() services.Actor {
	return c.actor
}

func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c CreateReviewCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c CreateReviewCommand) BookingID() *kernel.UUID {
	return c.bookingID
}

func (c CreateReviewCommand) Rating() review.Rating {
	return c.rating
}

func (c CreateReviewCommand) Comment() string {
	return c.comment
}

func (c *CreateReviewCommand) setRating(value int) error {
	rating, err := review.NewRating(value)
	if err != nil {
		return err
	}

	c.rating = rating
	return nil
}
