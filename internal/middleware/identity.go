package middleware

// identity.go provides the user identifier used when building rate
// limit keys. SessionAuth stores the resolved user id in the context;
// unauthenticated requests rate-limit as "anon".

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentUserID renders the authenticated user id for key building,
// or "anon" when the request carries no session.
func currentUserID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case uint64:
		return strconv.FormatUint(v, 10)
	case string:
		if v != "" {
			return v
		}
	}
	return "anon"
}
