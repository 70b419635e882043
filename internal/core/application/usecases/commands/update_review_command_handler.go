package commands

import (
	"context"

	"relocation/internal/core/domain/services"
)

// UpdateReviewCommandHandler revises a review and recomputes the provider's
// rating in the same transaction, under the provider row lock.
type UpdateReviewCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	aggregator services.RatingAggregator
}

func NewUpdateReviewCommandHandler(uowFactory UoWFactory) UpdateReviewCommandHandler {
	return UpdateReviewCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
		aggregator: services.NewRatingAggregator(),
	}
}

func (h *UpdateReviewCommandHandler) Handle(ctx context.Context, cmd UpdateReviewCommand) error {
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

	reviewRepo := uow.ReviewRepository()
	r, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeMutation(cmd.Actor(), services.KindReview, r.ID(),
		services.Ownership{AccountID: r.AccountID(), Public: true}); err != nil {
		return err
	}

	providerRepo := uow.ProviderRepository()
	profile, err := providerRepo.GetForUpdate(ctx, r.ProviderID())
	if err != nil {
		return err
	}

	rating := r.Rating()
	if cmd.Rating() != nil {
		rating = *cmd.Rating()
	}
	comment := r.Comment()
	if cmd.Comment() != nil {
		comment = *cmd.Comment()
	}
	if err = r.Revise(rating, comment); err != nil {
		return err
	}

	if err = reviewRepo.Update(ctx, r); err != nil {
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
