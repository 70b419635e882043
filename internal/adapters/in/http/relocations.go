package http

import (
	"net/http"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/relocation"
	"relocation/internal/core/domain/services"
	"relocation/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListRelocations handles GET /api/v1/relocations.
func (s *Server) ListRelocations(ctx echo.Context) error {
	items, err := s.queries.ListRelocations.Handle(ctx.Request().Context(), queries.NewListRelocationsQuery(actorFrom(ctx)))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, mapAll(items, toRelocation))
}

// CreateRelocation handles POST /api/v1/relocations.
func (s *Server) CreateRelocation(ctx echo.Context) error {
	body, err := bind[servers.NewRelocation](ctx)
	if err != nil {
		return err
	}

	actor := actorFrom(ctx)
	relocationID := kernel.NewUUID()
	cmd, err := commands.NewCreateRelocationCommand(actor, relocationID, relocation.Plan{
		Origin:      body.Origin,
		Destination: body.Destination,
		MovingDate:  body.MovingDate.Time,
		Inventory:   deref(body.Inventory),
	})
	if err != nil {
		return err
	}

	if err = s.commands.CreateRelocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondRelocation(ctx, http.StatusCreated, actor, relocationID)
}

// GetRelocation handles GET /api/v1/relocations/{id}.
func (s *Server) GetRelocation(ctx echo.Context, id servers.Id) error {
	relocationID, err := kernelID(id)
	if err != nil {
		return err
	}

	return s.respondRelocation(ctx, http.StatusOK, actorFrom(ctx), relocationID)
}

// UpdateRelocation handles PATCH /api/v1/relocations/{id}.
func (s *Server) UpdateRelocation(ctx echo.Context, id servers.Id) error {
	body, err := bind[servers.RelocationPatch](ctx)
	if err != nil {
		return err
	}
	relocationID, err := kernelID(id)
	if err != nil {
		return err
	}

	patch := commands.RelocationPatch{
		Origin:      body.Origin,
		Destination: body.Destination,
		MovingDate:  datePtr(body.MovingDate),
		Inventory:   body.Inventory,
	}
	if body.Status != nil {
		status, parseErr := relocation.ParseStatus(string(*body.Status))
		if parseErr != nil {
			return parseErr
		}
		patch.Status = &status
	}

	actor := actorFrom(ctx)
	cmd, err := commands.NewUpdateRelocationCommand(actor, relocationID, patch)
	if err != nil {
		return err
	}

	if err = s.commands.UpdateRelocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondRelocation(ctx, http.StatusOK, actor, relocationID)
}

// QuoteRelocation handles POST /api/v1/relocations/{id}/quote - stores and
// returns the estimated cost.
func (s *Server) QuoteRelocation(ctx echo.Context, id servers.Id) error {
	relocationID, err := kernelID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewQuoteRelocationCommand(actorFrom(ctx), relocationID)
	if err != nil {
		return err
	}

	cost, err := s.commands.QuoteRelocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Quote{EstimatedCost: cost.String()})
}

func (s *Server) respondRelocation(ctx echo.Context, status int, actor services.Actor, id kernel.UUID) error {
	query, err := queries.NewGetRelocationQuery(actor, id)
	if err != nil {
		return err
	}

	res, err := s.queries.GetRelocation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(status, toRelocation(res))
}
