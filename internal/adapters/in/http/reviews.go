package http

import (
	"net/http"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/services"
	"relocation/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListReviews handles GET /api/v1/reviews, optionally narrowed to one provider.
func (s *Server) ListReviews(ctx echo.Context, params servers.ListReviewsParams) error {
	providerID, err := kernelIDPtr(params.Provider)
	if err != nil {
		return err
	}
	query, err := queries.NewListReviewsQuery(actorFrom(ctx), providerID)
	if err != nil {
		return err
	}

	items, err := s.queries.ListReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, mapAll(items, toReview))
}

// CreateReview handles POST /api/v1/reviews. The provider's rating is
// recomputed in the same transaction.
func (s *Server) CreateReview(ctx echo.Context) error {
	body, err := bind[servers.NewReview](ctx)
	if err != nil {
		return err
	}
	providerID, err := kernelID(body.ProviderId)
	if err != nil {
		return err
	}
	bookingID, err := kernelIDPtr(body.BookingId)
	if err != nil {
		return err
	}

	actor := actorFrom(ctx)
	reviewID := kernel.NewUUID()
	cmd, err := commands.NewCreateReviewCommand(actor, reviewID, providerID, bookingID, body.Rating, deref(body.Comment))
	if err != nil {
		return err
	}

	if err = s.commands.CreateReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondReview(ctx, http.StatusCreated, actor, reviewID)
}

// GetReview handles GET /api/v1/reviews/{id}.
func (s *Server) GetReview(ctx echo.Context, id servers.Id) error {
	reviewID, err := kernelID(id)
	if err != nil {
		return err
	}

	return s.respondReview(ctx, http.StatusOK, actorFrom(ctx), reviewID)
}

// UpdateReview handles PATCH /api/v1/reviews/{id}.
func (s *Server) UpdateReview(ctx echo.Context, id servers.Id) error {
	body, err := bind[servers.ReviewPatch](ctx)
	if err != nil {
		return err
	}
	reviewID, err := kernelID(id)
	if err != nil {
		return err
	}

	actor := actorFrom(ctx)
	cmd, err := commands.NewUpdateReviewCommand(actor, reviewID, body.Rating, body.Comment)
	if err != nil {
		return err
	}

	if err = s.commands.UpdateReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondReview(ctx, http.StatusOK, actor, reviewID)
}

func (s *Server) respondReview(ctx echo.Context, status int, actor services.Actor, id kernel.UUID) error {
	query, err := queries.NewGetReviewQuery(actor, id)
	if err != nil {
		return err
	}

	res, err := s.queries.GetReview.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(status, toReview(res))
}
