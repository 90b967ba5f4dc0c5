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
	"github.com/sowmya-sree-builds/book-exchange/internal/session"
)

func TestProfile(t *testing.T) {
	users := new(mocks.UserStoreMock)
	h := NewProfileHandler(users)
	e := echo.New()
	e.GET("/profile", h.Profile, asUser(1))

	joined := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	users.On("GetByID", mock.Anything, uint64(1)).
		Return(model.User{ID: 1, Username: "alice", ProfilePhoto: "https://ui-avatars.com/api/?name=alice", CreatedAt: joined}, nil).Once()
	users.On("Stats", mock.Anything, uint64(1)).
		Return(model.ProfileStats{Exchanges: 2, Requests: 3, Favorites: 1, BooksOwned: 4}, nil).Once()

	rec := doJSON(e, http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "alice", resp["username"])
	assert.Equal(t, "2026-01-02T15:04:05Z", resp["member_since"])

	stats, ok := resp["stats"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), stats["exchanges"])
	assert.Equal(t, float64(4), stats["books_owned"])
	users.AssertExpectations(t)
}

func TestHealthReportsActiveSessions(t *testing.T) {
	store := session.New(time.Hour)
	_, _, err := store.Issue(1)
	require.NoError(t, err)
	_, _, err = store.Issue(2)
	require.NoError(t, err)

	h := &HealthHandler{Sessions: store}
	e := echo.New()
	e.GET("/health", h.Health)

	rec := doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, float64(2), resp["active_sessions"])
}

func TestSearchRequiresQuery(t *testing.T) {
	e := echo.New()
	e.GET("/search", Search)

	rec := doJSON(e, http.MethodGet, "/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/search?q=%20%20", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchMatchesCatalog(t *testing.T) {
	e := echo.New()
	e.GET("/search", Search)

	rec := doJSON(e, http.MethodGet, "/search?q=orwell", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1984")
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestSearchFallback(t *testing.T) {
	e := echo.New()
	e.GET("/search", Search)

	rec := doJSON(e, http.MethodGet, "/search?q=zzzzzz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":4`)
}
