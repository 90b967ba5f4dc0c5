package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sowmya-sree-builds/book-exchange/internal/mocks"
	"github.com/sowmya-sree-builds/book-exchange/internal/model"
	"github.com/sowmya-sree-builds/book-exchange/internal/repository"
)

func setupFavoriteRouter(favs *mocks.FavoriteStoreMock, userID uint64) *echo.Echo {
	h := NewFavoriteHandler(favs)
	e := echo.New()
	auth := asUser(userID)
	e.POST("/addFavorite", h.AddFavorite, auth)
	e.GET("/myFavorites", h.MyFavorites, auth)
	e.DELETE("/removeFavorite/:id", h.RemoveFavorite, auth)
	return e
}

func TestAddFavoriteSuccess(t *testing.T) {
	favs := new(mocks.FavoriteStoreMock)
	e := setupFavoriteRouter(favs, 2)

	favs.On("Add", mock.Anything, uint64(2), model.Favorite{Title: "1984", Author: "George Orwell"}).
		Return(uint64(3), nil).Once()

	rec := doJSON(e, http.MethodPost, "/addFavorite", `{"title":"1984","author":"George Orwell"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, float64(3), resp["favorite_id"])
	favs.AssertExpectations(t)
}

func TestAddFavoriteDuplicate(t *testing.T) {
	favs := new(mocks.FavoriteStoreMock)
	e := setupFavoriteRouter(favs, 2)

	favs.On("Add", mock.Anything, uint64(2), mock.Anything).
		Return(uint64(0), repository.ErrConflict).Once()

	rec := doJSON(e, http.MethodPost, "/addFavorite", `{"title":"1984","author":"George Orwell"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddFavoriteMissingTitle(t *testing.T) {
	favs := new(mocks.FavoriteStoreMock)
	e := setupFavoriteRouter(favs, 2)

	rec := doJSON(e, http.MethodPost, "/addFavorite", `{"author":"George Orwell"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	favs.AssertNotCalled(t, "Add")
}

func TestMyFavoritesEmpty(t *testing.T) {
	favs := new(mocks.FavoriteStoreMock)
	e := setupFavoriteRouter(favs, 2)

	favs.On("ListByUser", mock.Anything, uint64(2)).
		Return([]model.Favorite{}, nil).Once()

	rec := doJSON(e, http.MethodGet, "/myFavorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorites":[]`)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}

func TestRemoveFavoriteSuccess(t *testing.T) {
	favs := new(mocks.FavoriteStoreMock)
	e := setupFavoriteRouter(favs, 2)

	favs.On("Remove", mock.Anything, uint64(3), uint64(2)).Return(nil).Once()

	rec := doJSON(e, http.MethodDelete, "/removeFavorite/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	favs.AssertExpectations(t)
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	favs := new(mocks.FavoriteStoreMock)
	e := setupFavoriteRouter(favs, 2)

	favs.On("Remove", mock.Anything, uint64(99), uint64(2)).
		Return(repository.ErrNotFound).Once()

	rec := doJSON(e, http.MethodDelete, "/removeFavorite/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveFavoriteBadID(t *testing.T) {
	favs := new(mocks.FavoriteStoreMock)
	e := setupFavoriteRouter(favs, 2)

	rec := doJSON(e, http.MethodDelete, "/removeFavorite/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	favs.AssertNotCalled(t, "Remove")
}
