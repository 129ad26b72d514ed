// Package v1 provides HTTP handlers for the chat service.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server. requireAuth guards
// every chat route; failures there never reach the handlers.
func (h *Handler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	chat := e.Group("/api/chat", requireAuth)
	chat.POST("", h.Chat)
	chat.GET("/history", h.GetHistory)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
