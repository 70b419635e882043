package http

import (
	"net/http"

	"relocation/internal/core/application/usecases/commands"
	"relocation/internal/core/application/usecases/queries"
	"relocation/internal/core/domain/model/account"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/provider"
	"relocation/internal/core/domain/services"
	"relocation/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateAccount handles POST /api/v1/accounts - registers a customer.
func (s *Server) CreateAccount(ctx echo.Context) error {
	body, err := bind[servers.RegisterCustomerRequest](ctx)
	if err != nil {
		return err
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(accountID, commands.Registration{
		Username:        body.Username,
		Email:           deref(body.Email),
		Password:        body.Password,
		PasswordConfirm: body.PasswordConfirm,
		Details: account.Details{
			FirstName: deref(body.FirstName),
			LastName:  deref(body.LastName),
			Contact:   deref(body.Contact),
			Address:   deref(body.Address),
		},
	})
	if err != nil {
		return err
	}

	if err = s.commands.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondAccount(ctx, http.StatusCreated, services.NewActor(accountID, account.RoleCustomer, nil))
}

// CreateProviderAccount handles POST /api/v1/accounts/providers - registers
// a provider together with its profile.
func (s *Server) CreateProviderAccount(ctx echo.Context) error {
	body, err := bind[servers.RegisterProviderRequest](ctx)
	if err != nil {
		return err
	}

	accountID := kernel.NewUUID()
	profileID := kernel.NewUUID()
	cmd, err := commands.NewRegisterProviderCommand(accountID, profileID, commands.Registration{
		Username:        body.Username,
		Email:           deref(body.Email),
		Password:        body.Password,
		PasswordConfirm: body.PasswordConfirm,
		Details: account.Details{
			FirstName: deref(body.FirstName),
			LastName:  deref(body.LastName),
			Contact:   deref(body.Contact),
			Address:   deref(body.Address),
		},
	}, provider.Info{
		CompanyName:     body.CompanyName,
		ContactPerson:   body.ContactPerson,
		ServicesOffered: deref(body.ServicesOffered),
		PricingInfo:     deref(body.PricingInfo),
	})
	if err != nil {
		return err
	}

	if err = s.commands.RegisterProvider.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondAccount(ctx, http.StatusCreated, services.NewActor(accountID, account.RoleProvider, &profileID))
}

// CreateSession handles POST /api/v1/sessions - exchanges credentials for tokens.
func (s *Server) CreateSession(ctx echo.Context) error {
	body, err := bind[servers.SessionRequest](ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateSessionCommand(body.Username, body.Password)
	if err != nil {
		return err
	}

	tokens, err := s.commands.CreateSession.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Tokens{AccessToken: tokens.Access, RefreshToken: tokens.Refresh})
}

// RefreshSession handles POST /api/v1/sessions/refresh.
func (s *Server) RefreshSession(ctx echo.Context) error {
	body, err := bind[servers.RefreshRequest](ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRefreshSessionCommand(body.RefreshToken)
	if err != nil {
		return err
	}

	tokens, err := s.commands.RefreshSession.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Tokens{AccessToken: tokens.Access, RefreshToken: tokens.Refresh})
}

// GetMe handles GET /api/v1/me.
func (s *Server) GetMe(ctx echo.Context) error {
	return s.respondAccount(ctx, http.StatusOK, actorFrom(ctx))
}

// ListAccounts handles GET /api/v1/accounts.
func (s *Server) ListAccounts(ctx echo.Context) error {
	accounts, err := s.queries.ListAccounts.Handle(ctx.Request().Context(), queries.NewListAccountsQuery(actorFrom(ctx)))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, mapAll(accounts, toAccount))
}

func (s *Server) respondAccount(ctx echo.Context, status int, actor services.Actor) error {
	res, err := s.queries.GetMe.Handle(ctx.Request().Context(), queries.NewGetMeQuery(actor))
	if err != nil {
		return err
	}

	return ctx.JSON(status, toAccount(res))
}

// GetHealth handles GET /health and GET /api/v1/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}
