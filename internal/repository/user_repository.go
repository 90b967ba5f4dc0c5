package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sowmya-sree-builds/book-exchange/internal/model"
	"github.com/sowmya-sree-builds/book-exchange/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts the user, returning its ID.
// The profile photo URL is generated from the username at signup.
func (r *UserRepo) Create(ctx context.Context, username, email, password string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, profile_photo) VALUES (?,?,?,?)",
		username, email, hash, utils.AvatarURL(username))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUserExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.TrimSpace(username)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,profile_photo,created_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.ProfilePhoto, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,profile_photo,created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.ProfilePhoto, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, ErrNotFound
	}
	return u, err
}

// Stats computes the profile counters for a user: completed exchanges
// on either side, pending requests sent or received, favorites and
// owned books.
func (r *UserRepo) Stats(ctx context.Context, userID uint64) (model.ProfileStats, error) {
	var s model.ProfileStats
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM completed_exchanges WHERE user1_id=? OR user2_id=?",
		userID, userID).Scan(&s.Exchanges); err != nil {
		return s, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM exchange_requests WHERE (requester_id=? OR owner_id=?) AND status='pending'",
		userID, userID).Scan(&s.Requests); err != nil {
		return s, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM favorites WHERE user_id=?", userID).Scan(&s.Favorites); err != nil {
		return s, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM books WHERE user_id=?", userID).Scan(&s.BooksOwned); err != nil {
		return s, err
	}
	return s, nil
}
