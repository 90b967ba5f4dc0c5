package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the authenticated user's profile page data.
type ProfileHandler struct {
	Users UserStore
}

func NewProfileHandler(users UserStore) *ProfileHandler { return &ProfileHandler{Users: users} }

// Profile returns the user's identity plus aggregate counters
// computed at query time.
func (h *ProfileHandler) Profile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch profile"})
	}
	stats, err := h.Users.Stats(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch profile"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"username":      u.Username,
		"profile_photo": u.ProfilePhoto,
		"member_since":  u.CreatedAt.UTC().Format(time.RFC3339),
		"stats":         stats,
	})
}
