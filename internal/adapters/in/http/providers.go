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

// ListProviders handles GET /api/v1/providers.
func (s *Server) ListProviders(ctx echo.Context) error {
	profiles, err := s.queries.ListProviders.Handle(ctx.Request().Context(), queries.NewListProvidersQuery(actorFrom(ctx)))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, mapAll(profiles, toProvider))
}

// GetProvider handles GET /api/v1/providers/{id}.
func (s *Server) GetProvider(ctx echo.Context, id servers.Id) error {
	profileID, err := kernelID(id)
	if err != nil {
		return err
	}

	return s.respondProvider(ctx, actorFrom(ctx), profileID)
}

// UpdateProvider handles PATCH /api/v1/providers/{id}.
func (s *Server) UpdateProvider(ctx echo.Context, id servers.Id) error {
	body, err := bind[servers.ProviderPatch](ctx)
	if err != nil {
		return err
	}
	profileID, err := kernelID(id)
	if err != nil {
		return err
	}

	actor := actorFrom(ctx)
	cmd, err := commands.NewUpdateProviderProfileCommand(actor, profileID, commands.ProfilePatch{
		CompanyName:     body.CompanyName,
		ContactPerson:   body.ContactPerson,
		ServicesOffered: deref(body.ServicesOffered),
		PricingInfo:     body.PricingInfo,
		Available:       body.Available,
	})
	if err != nil {
		return err
	}

	if err = s.commands.UpdateProviderProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondProvider(ctx, actor, profileID)
}

func (s *Server) respondProvider(ctx echo.Context, actor services.Actor, profileID kernel.UUID) error {
	query, err := queries.NewGetProviderQuery(actor, profileID)
	if err != nil {
		return err
	}

	profile, err := s.queries.GetProvider.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toProvider(profile))
}
