package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-sree-builds/book-exchange/internal/session"
)

// SessionAuth returns an Echo middleware that resolves a Bearer token
// against the session store and injects the bound user id into the
// request context. Handlers behind it read the id via
// `c.Get("user_id")`. A missing, malformed, unknown or expired token
// yields 401; resolution of an expired token also evicts it from the
// store.
func SessionAuth(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			uid, ok := store.Resolve(raw)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			// Handlers also need the raw token for logout.
			c.Set("user_id", uid)
			c.Set("session_token", raw)
			return next(c)
		}
	}
}
