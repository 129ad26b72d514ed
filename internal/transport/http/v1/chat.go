package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/auth"
	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/domain"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// historyEntry is the wire form of one stored message. The sender field
// carries the role string.
type historyEntry struct {
	UserID    string    `json:"userId"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat runs one conversation turn.
// POST /api/chat
func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message is required"})
	}

	ctx := c.Request().Context()
	reply, err := h.service.Chat(ctx, auth.UserID(c), req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMessage) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Message is required"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "An error occurred while processing your request"})
	}

	return c.JSON(http.StatusOK, chatResponse{Response: reply})
}

// GetHistory returns the caller's conversation, oldest first.
// GET /api/chat/history
func (h *Handler) GetHistory(c echo.Context) error {
	ctx := c.Request().Context()
	messages, err := h.service.History(ctx, auth.UserID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "An error occurred while processing your request"})
	}

	history := make([]historyEntry, 0, len(messages))
	for _, m := range messages {
		history = append(history, historyEntry{
			UserID:    m.UserID,
			Sender:    string(m.Role),
			Message:   m.Content,
			Timestamp: m.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"history": history,
	})
}
