package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-sree-builds/book-exchange/internal/session"
)

// HealthHandler exposes the liveness endpoint used by load balancers
// and monitoring. Besides a static status it reports how many
// sessions are currently active.
type HealthHandler struct {
	Sessions *session.Store
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":          "healthy",
		"message":         "Book Exchange API is running",
		"active_sessions": h.Sessions.Active(),
	})
}
