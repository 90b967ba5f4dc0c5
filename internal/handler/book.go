package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-sree-builds/book-exchange/internal/model"
	"github.com/sowmya-sree-builds/book-exchange/internal/repository"
)

// BookHandler covers the user's own library and the exchange browse
// view of other users' books.
type BookHandler struct {
	Books BookStore
}

func NewBookHandler(books BookStore) *BookHandler { return &BookHandler{Books: books} }

type addBookReq struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	CoverURL    string  `json:"cover_url"`
	Description string  `json:"description"`
	ISBN        string  `json:"isbn"`
	Rating      float64 `json:"rating"`
}

// AddBook inserts a book into the caller's library.
func (h *BookHandler) AddBook(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req addBookReq
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

	id, err := h.Books.Add(ctx, userID, model.Book{
		Title:       req.Title,
		Author:      req.Author,
		CoverURL:    req.CoverURL,
		Description: req.Description,
		ISBN:        req.ISBN,
		Rating:      req.Rating,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "book already in your library"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add book"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "book added to library",
		"book_id": id,
	})
}

type bookResp struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	CoverURL    string  `json:"cover_url"`
	Description string  `json:"description"`
	ISBN        string  `json:"isbn"`
	Rating      float64 `json:"rating"`
	AddedAt     string  `json:"added_at"`
}

// MyBooks lists the caller's library, newest first.
func (h *BookHandler) MyBooks(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	books, err := h.Books.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch books"})
	}
	out := make([]bookResp, 0, len(books))
	for _, b := range books {
		out = append(out, bookResp{
			ID:          b.ID,
			Title:       b.Title,
			Author:      b.Author,
			CoverURL:    b.CoverURL,
			Description: b.Description,
			ISBN:        b.ISBN,
			Rating:      b.Rating,
			AddedAt:     b.AddedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"books": out, "count": len(out)})
}

// Exchange lists books offered by everyone except the caller,
// together with each owner's display identity.
func (h *BookHandler) Exchange(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	listings, err := h.Books.ListExchange(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch exchange books"})
	}
	return c.JSON(http.StatusOK, echo.Map{"books": listings, "count": len(listings)})
}
