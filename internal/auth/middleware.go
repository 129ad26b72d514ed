package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ContextKeyUserID is the echo context key carrying the verified identity.
const ContextKeyUserID = "user_id"

// Middleware returns an echo middleware that requires a valid bearer token.
// On success the verified user id is stored on the context under
// ContextKeyUserID; every failure yields 401 with a uniform body.
func Middleware(v *Verifier, logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return unauthorized(c)
			}

			userID, err := v.Verify(parts[1])
			if err != nil {
				logger.Debug().Str("path", c.Path()).Msg("token verification failed")
				return unauthorized(c)
			}

			c.Set(ContextKeyUserID, userID)
			return next(c)
		}
	}
}

// UserID extracts the verified identity set by Middleware.
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextKeyUserID).(string)
	return id
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
}
