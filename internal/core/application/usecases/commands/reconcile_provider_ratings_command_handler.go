package commands

import (
	"context"

	"relocation/internal/core/domain/services"
)

// ReconcileProviderRatingsCommandHandler recomputes ratings provider by
// provider, each under its own row lock, in one transaction. It returns the
// number of profiles whose aggregate was rewritten.
type ReconcileProviderRatingsCommandHandler struct {
	uowFactory UoWFactory
	aggregator services.RatingAggregator
}

func NewReconcileProviderRatingsCommandHandler(uowFactory UoWFactory) ReconcileProviderRatingsCommandHandler {
	return ReconcileProviderRatingsCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewRatingAggregator(),
	}
}

func (h *ReconcileProviderRatingsCommandHandler) Handle(ctx context.Context, cmd ReconcileProviderRatingsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()
	providerRepo := uow.ProviderRepository()

	ids, err := reviewRepo.ProvidersWithReviews(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, id := range ids {
		profile, getErr := providerRepo.GetForUpdate(ctx, id)
		if getErr != nil {
			return 0, getErr
		}

		ratings, listErr := reviewRepo.ListRatingsByProvider(ctx, id)
		if listErr != nil {
			return 0, listErr
		}

		changed, recomputeErr := h.aggregator.Recompute(profile, ratings)
		if recomputeErr != nil {
			return 0, recomputeErr
		}
		if !changed {
			continue
		}

		if err = providerRepo.Update(ctx, profile); err != nil {
			return 0, err
		}
		updated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return updated, nil
}
