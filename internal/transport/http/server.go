// Package http provides the HTTP server implementation for the chat service.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/auth"
	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/service"
	v1 "github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/transport/http/v1"
)

// NewServer creates and configures the HTTP server. All chat routes sit
// behind the bearer-token middleware; the health probe does not.
func NewServer(svc *service.Service, verifier *auth.Verifier, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	handler := v1.NewHandler(svc)
	handler.RegisterRoutes(e, auth.Middleware(verifier, logger))

	return e
}
