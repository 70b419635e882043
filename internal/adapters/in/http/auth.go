package http

import (
	"strings"

	"relocation/internal/core/domain/services"
	"relocation/internal/core/ports"
	"relocation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// Authenticate resolves the bearer token into the request's Actor. Requests
// without an Authorization header continue as anonymous; a header that does
// not carry a valid access token is rejected.
func Authenticate(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				c.Set(actorKey, services.AnonymousActor())
				return next(c)
			}

			scheme, token, ok := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return errs.NewUnauthenticatedError("malformed authorization header")
			}

			claims, err := issuer.ParseAccess(token)
			if err != nil {
				return err
			}

			c.Set(actorKey, services.NewActor(claims.AccountID, claims.Role, claims.ProviderID))
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) services.Actor {
	actor, ok := c.Get(actorKey).(services.Actor)
	if !ok {
		return services.AnonymousActor()
	}
	return actor
}
