package commands

import (
	"context"
	"errors"

	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/review"
	"relocation/internal/core/domain/services"
	"relocation/internal/pkg/errs"
)

var ErrBookingServedByAnotherProvider = errs.NewValueIsInvalidErrorWithCause(
	"booking", errors.New("booking is not served by the reviewed provider"),
)

// CreateReviewCommandHandler stores a review and recomputes the provider's
// rating in the same transaction.
//
// The provider row is locked first. Every review write for a provider
// serializes on that lock, so the duplicate check, the insert and the
// recompute see a stable review set and no rating update is lost.
//
// Example:
//
//	handler := NewCreateReviewCommandHandler(uowFactory)
//	cmd, _ := NewCreateReviewCommand(actor, kernel.NewUUID(), providerID, nil, 3, "")
//
//	// provider had [5, 4, 5]; afterwards rating is 4.50 with 4 reviews
//	err := handler.Handle(ctx, cmd)
type CreateReviewCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	aggregator services.RatingAggregator
}

func NewCreateReviewCommandHandler(uowFactory UoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		aggregator: services.NewRatingAggregator(),
	}
}

func (h *CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	providerRepo := uow.ProviderRepository()
	profile, err := providerRepo.GetForUpdate(ctx, cmd.ProviderID())
	if err != nil {
		return err
	}

	if err = h.checkBooking(ctx, uow, cmd); err != nil {
		return err
	}

	accountID := cmd.Actor().AccountID()
	reviewRepo := uow.ReviewRepository()
	exists, err := reviewRepo.Exists(ctx, accountID, profile.ID(), cmd.BookingID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError("review", duplicateKey(profile.ID(), cmd.BookingID()))
	}

	r, err := review.NewReview(cmd.ReviewID(), accountID, profile.ID(), cmd.BookingID(), cmd.Rating(), cmd.Comment())
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return err
	}

	ratings, err := reviewRepo.ListRatingsByProvider(ctx, profile.ID())
	if err != nil {
		return err
	}

	if _, err = h.aggregator.Recompute(profile, ratings); err != nil {
		return err
	}

	if err = providerRepo.Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// checkBooking verifies that a referenced booking is visible to the actor
// and served by the reviewed provider.
func (h *CreateReviewCommandHandler) checkBooking(ctx context.Context, uow UoW, cmd CreateReviewCommand) error {
	bookingID := cmd.BookingID()
	if bookingID == nil {
		return nil
	}

	b, err := uow.BookingRepository().Get(ctx, *bookingID)
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeRead(cmd.Actor(), services.KindBooking, b.ID(), bookingOwnership(b)); err != nil {
		return err
	}

	if !b.ProviderID().IsEqual(cmd.ProviderID()) {
		return ErrBookingServedByAnotherProvider
	}
	return nil
}

func duplicateKey(providerID kernel.UUID, bookingID *kernel.UUID) string {
	if bookingID == nil {
		return "for provider " + providerID.String()
	}
	return "for provider " + providerID.String() + " and booking " + bookingID.String()
}
