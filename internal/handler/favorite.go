package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-sree-builds/book-exchange/internal/model"
	"github.com/sowmya-sree-builds/book-exchange/internal/repository"
)

// FavoriteHandler manages the user's favorites list. Favorites store
// a copy of the book fields as submitted, so they survive edits and
// removals of the underlying book.
type FavoriteHandler struct {
	Favorites FavoriteStore
}

func NewFavoriteHandler(favorites FavoriteStore) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favorites}
}

type addFavoriteReq struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Cover       string `json:"cover"`
	Description string `json:"description"`
	ISBN        string `json:"isbn"`
}

// AddFavorite snapshots the submitted book into the favorites list.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req addFavoriteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)
	if req.Title == "" || req.Author == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and author required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Favorites.Add(ctx, userID, model.Favorite{
		Title:       req.Title,
		Author:      req.Author,
		Cover:       req.Cover,
		Description: req.Description,
		ISBN:        req.ISBN,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "book already in favorites"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add favorite"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":     "added to favorites",
		"favorite_id": id,
	})
}

type favoriteResp struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Cover       string `json:"cover"`
	Description string `json:"description"`
	ISBN        string `json:"isbn"`
	AddedAt     string `json:"added_at"`
}

// MyFavorites lists the caller's favorites, newest first.
func (h *FavoriteHandler) MyFavorites(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	favs, err := h.Favorites.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch favorites"})
	}
	out := make([]favoriteResp, 0, len(favs))
	for _, f := range favs {
		out = append(out, favoriteResp{
			ID:          f.ID,
			Title:       f.Title,
			Author:      f.Author,
			Cover:       f.Cover,
			Description: f.Description,
			ISBN:        f.ISBN,
			AddedAt:     f.AddedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"favorites": out, "count": len(out)})
}

// RemoveFavorite deletes one of the caller's favorites by id.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid favorite id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Favorites.Remove(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "favorite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove favorite"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "removed from favorites"})
}
