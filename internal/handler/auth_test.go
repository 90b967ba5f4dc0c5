package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sowmya-sree-builds/book-exchange/internal/middleware"
	"github.com/sowmya-sree-builds/book-exchange/internal/mocks"
	"github.com/sowmya-sree-builds/book-exchange/internal/model"
	"github.com/sowmya-sree-builds/book-exchange/internal/repository"
	"github.com/sowmya-sree-builds/book-exchange/internal/session"
	"github.com/sowmya-sree-builds/book-exchange/internal/utils"
)

const testBcryptCost = 4 // keep hashing cheap in tests

func setupAuthRouter(users *mocks.UserStoreMock, store *session.Store) *echo.Echo {
	h := NewAuthHandler(users, store, testBcryptCost)
	e := echo.New()
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout, middleware.SessionAuth(store))
	return e
}

func postJSON(e *echo.Echo, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSignupSuccess(t *testing.T) {
	users := new(mocks.UserStoreMock)
	store := session.New(time.Hour)
	e := setupAuthRouter(users, store)

	users.On("Create", mock.Anything, "alice", "alice@example.com", "secret1", testBcryptCost).
		Return(uint64(1), nil).Once()

	rec := postJSON(e, "/signup", `{"username":"alice","email":"alice@example.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)

	uid, ok := store.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, uint64(1), uid)
	users.AssertExpectations(t)
}

func TestSignupMissingFields(t *testing.T) {
	users := new(mocks.UserStoreMock)
	e := setupAuthRouter(users, session.New(time.Hour))

	rec := postJSON(e, "/signup", `{"username":"alice","password":"secret1"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	users.AssertNotCalled(t, "Create")
}

func TestSignupShortPassword(t *testing.T) {
	users := new(mocks.UserStoreMock)
	e := setupAuthRouter(users, session.New(time.Hour))

	rec := postJSON(e, "/signup", `{"username":"alice","email":"a@b.c","password":"12345"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	users.AssertNotCalled(t, "Create")
}

func TestSignupDuplicate(t *testing.T) {
	users := new(mocks.UserStoreMock)
	e := setupAuthRouter(users, session.New(time.Hour))

	users.On("Create", mock.Anything, "alice", "a@b.c", "secret1", testBcryptCost).
		Return(uint64(0), repository.ErrUserExists).Once()

	rec := postJSON(e, "/signup", `{"username":"alice","email":"a@b.c","password":"secret1"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	users.AssertExpectations(t)
}

func TestLoginIssuesDistinctTokens(t *testing.T) {
	hash, err := utils.HashPassword("secret1", testBcryptCost)
	require.NoError(t, err)

	users := new(mocks.UserStoreMock)
	store := session.New(time.Hour)
	e := setupAuthRouter(users, store)

	users.On("GetByUsername", mock.Anything, "alice").
		Return(model.User{ID: 1, Username: "alice", PasswordHash: hash}, nil).Twice()

	tokens := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		rec := postJSON(e, "/login", `{"username":"alice","password":"secret1"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		tok, _ := resp["token"].(string)
		require.NotEmpty(t, tok)
		tokens = append(tokens, tok)
	}
	assert.NotEqual(t, tokens[0], tokens[1])
	users.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("secret1", testBcryptCost)
	require.NoError(t, err)

	users := new(mocks.UserStoreMock)
	e := setupAuthRouter(users, session.New(time.Hour))

	users.On("GetByUsername", mock.Anything, "alice").
		Return(model.User{ID: 1, Username: "alice", PasswordHash: hash}, nil).Once()

	rec := postJSON(e, "/login", `{"username":"alice","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	users := new(mocks.UserStoreMock)
	e := setupAuthRouter(users, session.New(time.Hour))

	users.On("GetByUsername", mock.Anything, "ghost").
		Return(model.User{}, repository.ErrNotFound).Once()

	rec := postJSON(e, "/login", `{"username":"ghost","password":"secret1"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	users := new(mocks.UserStoreMock)
	store := session.New(time.Hour)
	e := setupAuthRouter(users, store)

	tok, _, err := store.Issue(1)
	require.NoError(t, err)

	rec := postJSON(e, "/logout", "", tok)
	require.Equal(t, http.StatusOK, rec.Code)

	_, ok := store.Resolve(tok)
	assert.False(t, ok)

	// The revoked token is now rejected.
	rec = postJSON(e, "/logout", "", tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
