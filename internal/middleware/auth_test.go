package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sowmya-sree-builds/book-exchange/internal/session"
)

func setupAuthRouter(store *session.Store) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"user_id": c.Get("user_id")})
	}, SessionAuth(store))
	return e
}

func TestSessionAuthValidToken(t *testing.T) {
	store := session.New(time.Hour)
	tok, _, err := store.Issue(5)
	require.NoError(t, err)

	e := setupAuthRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuthMissingHeader(t *testing.T) {
	e := setupAuthRouter(session.New(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthMalformedHeader(t *testing.T) {
	store := session.New(time.Hour)
	tok, _, err := store.Issue(5)
	require.NoError(t, err)

	e := setupAuthRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", tok) // no Bearer prefix
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthUnknownToken(t *testing.T) {
	e := setupAuthRouter(session.New(time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthExpiredToken(t *testing.T) {
	store := session.New(time.Hour)
	tok, _, err := store.Issue(5)
	require.NoError(t, err)
	store.SetClock(func() time.Time { return time.Now().Add(2 * time.Hour) })

	e := setupAuthRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
