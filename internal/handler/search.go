package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-sree-builds/book-exchange/internal/catalog"
)

// Search serves the public catalog search. The catalog is a fixed
// in-memory list, so there is no handler state and no store behind
// this endpoint.
func Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "search query required"})
	}
	books := catalog.Search(q)
	return c.JSON(http.StatusOK, echo.Map{
		"books": books,
		"count": len(books),
	})
}
