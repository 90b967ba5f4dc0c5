package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sowmya-sree-builds/book-exchange/internal/mocks"
	"github.com/sowmya-sree-builds/book-exchange/internal/model"
	"github.com/sowmya-sree-builds/book-exchange/internal/repository"
)

func setupBookRouter(books *mocks.BookStoreMock, userID uint64) *echo.Echo {
	h := NewBookHandler(books)
	e := echo.New()
	auth := asUser(userID)
	e.POST("/addBook", h.AddBook, auth)
	e.GET("/myBooks", h.MyBooks, auth)
	e.GET("/exchange", h.Exchange, auth)
	return e
}

func TestAddBookSuccess(t *testing.T) {
	books := new(mocks.BookStoreMock)
	e := setupBookRouter(books, 1)

	books.On("Add", mock.Anything, uint64(1), model.Book{Title: "Dune", Author: "Frank Herbert", Rating: 4.5}).
		Return(uint64(7), nil).Once()

	rec := doJSON(e, http.MethodPost, "/addBook", `{"title":"Dune","author":"Frank Herbert","rating":4.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, float64(7), resp["book_id"])
	books.AssertExpectations(t)
}

func TestAddBookTrimsAndValidates(t *testing.T) {
	books := new(mocks.BookStoreMock)
	e := setupBookRouter(books, 1)

	rec := doJSON(e, http.MethodPost, "/addBook", `{"title":"   ","author":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	books.AssertNotCalled(t, "Add")
}

func TestAddBookDuplicate(t *testing.T) {
	books := new(mocks.BookStoreMock)
	e := setupBookRouter(books, 1)

	books.On("Add", mock.Anything, uint64(1), mock.Anything).
		Return(uint64(0), repository.ErrConflict).Once()

	rec := doJSON(e, http.MethodPost, "/addBook", `{"title":"Dune","author":"Frank Herbert"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	books.AssertExpectations(t)
}

func TestMyBooksFormatsAddedAt(t *testing.T) {
	books := new(mocks.BookStoreMock)
	e := setupBookRouter(books, 1)

	added := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	books.On("ListByUser", mock.Anything, uint64(1)).
		Return([]model.Book{{ID: 7, Title: "Dune", Author: "Frank Herbert", AddedAt: added}}, nil).Once()

	rec := doJSON(e, http.MethodGet, "/myBooks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added_at":"2026-03-14 09:30:00"`)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestMyBooksEmpty(t *testing.T) {
	books := new(mocks.BookStoreMock)
	e := setupBookRouter(books, 1)

	books.On("ListByUser", mock.Anything, uint64(1)).
		Return([]model.Book{}, nil).Once()

	rec := doJSON(e, http.MethodGet, "/myBooks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"books":[]`)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestExchangeExcludesCaller(t *testing.T) {
	books := new(mocks.BookStoreMock)
	e := setupBookRouter(books, 3)

	books.On("ListExchange", mock.Anything, uint64(3)).
		Return([]repository.ExchangeListing{
			{ID: 7, Title: "Dune", OwnerID: 1, OwnerUsername: "alice"},
			{ID: 9, Title: "Neuromancer", OwnerID: 2, OwnerUsername: "bob"},
		}, nil).Once()

	rec := doJSON(e, http.MethodGet, "/exchange", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"owner_username":"alice"`)
	assert.Contains(t, rec.Body.String(), `"count":2`)
	books.AssertExpectations(t)
}
