package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-sree-builds/book-exchange/internal/repository"
	"github.com/sowmya-sree-builds/book-exchange/internal/session"
	"github.com/sowmya-sree-builds/book-exchange/internal/utils"
)

// minPasswordLen is the smallest password accepted at signup.
const minPasswordLen = 6

// AuthHandler bundles dependencies for signup, login and logout.
type AuthHandler struct {
	Users      UserStore
	Sessions   *session.Store
	BcryptCost int
}

func NewAuthHandler(users UserStore, sessions *session.Store, bcryptCost int) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions, BcryptCost: bcryptCost}
}

// ----- DTOs -----

type signupReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup: create the user and return a fresh session token.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	if len(req.Password) < minPasswordLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 6 characters"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.Email, req.Password, h.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username or email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	token, _, err := h.Sessions.Issue(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":       "signup successful",
		"user_id":       uid,
		"username":      req.Username,
		"token":         token,
		"profile_photo": utils.AvatarURL(req.Username),
	})
}

// Login: verify credentials and return a new session token. Each
// login issues a distinct token; earlier tokens stay valid until
// logout or expiry.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
	}

	token, _, err := h.Sessions.Issue(u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":       "login successful",
		"user_id":       u.ID,
		"username":      u.Username,
		"token":         token,
		"profile_photo": u.ProfilePhoto,
	})
}

// Logout: revoke the presented token. Runs behind SessionAuth, so the
// token in context is known valid; revocation always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	if tok, ok := c.Get("session_token").(string); ok && tok != "" {
		h.Sessions.Revoke(tok)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out successfully"})
}
