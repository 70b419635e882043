package http

import (
	"net/http"
	"sync"

	"relocation/internal/core/ports"
	"relocation/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const BaseURL = "/api/v1"

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

var registerSwagger sync.Once

// NewRouter builds the echo instance: error rendering, validation, request
// logging, the API under BaseURL and the OpenAPI document with its UI.
func NewRouter(server *Server, issuer ports.TokenIssuer, logger zerolog.Logger) (*echo.Echo, error) {
	spec, err := servers.GetSwagger()
	if err != nil {
		return nil, errors.Wrap(err, "load openapi document")
	}
	specJSON, err := spec.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "encode openapi document")
	}
	registerSwagger.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(specJSON)})
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(ContextLogger(logger))

	e.GET("/health", server.GetHealth)
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, specJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BaseURL, Authenticate(issuer))
	servers.RegisterHandlers(api, server)

	return e, nil
}
