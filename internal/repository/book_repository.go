package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sowmya-sree-builds/book-exchange/internal/model"
)

// BookRepo provides access to the per-user book library.
type BookRepo struct{ db *sql.DB }

func NewBookRepo(db *sql.DB) *BookRepo { return &BookRepo{db: db} }

// ExchangeListing is a book offered by another user, joined with the
// owner's display identity for the browse view.
type ExchangeListing struct {
	ID            uint64  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	CoverURL      string  `json:"cover_url"`
	Description   string  `json:"description"`
	ISBN          string  `json:"isbn"`
	Rating        float64 `json:"rating"`
	OwnerID       uint64  `json:"owner_id"`
	OwnerUsername string  `json:"owner_username"`
	OwnerPhoto    string  `json:"owner_photo"`
}

// Add inserts a book into the user's library. A book with the same
// title and author already present in that library is a conflict.
func (r *BookRepo) Add(ctx context.Context, userID uint64, b model.Book) (uint64, error) {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)

	var existing uint64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM books WHERE user_id=? AND title=? AND author=? LIMIT 1",
		userID, b.Title, b.Author).Scan(&existing)
	switch {
	case err == nil:
		return 0, ErrConflict
	case err != sql.ErrNoRows:
		return 0, err
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO books (user_id, title, author, cover_url, description, isbn, rating) VALUES (?,?,?,?,?,?,?)",
		userID, b.Title, b.Author, b.CoverURL, b.Description, b.ISBN, b.Rating)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByUser returns the user's books, newest first.
func (r *BookRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Book, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, author, cover_url, description, isbn, rating, added_at
		 FROM books WHERE user_id=? ORDER BY added_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		var desc sql.NullString
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.CoverURL,
			&desc, &b.ISBN, &b.Rating, &b.AddedAt); err != nil {
			return nil, err
		}
		b.Description = desc.String
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListExchange returns books owned by everyone except excludeUserID,
// joined with the owner's username and photo, newest first.
func (r *BookRepo) ListExchange(ctx context.Context, excludeUserID uint64) ([]ExchangeListing, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id, b.title, b.author, b.cover_url, b.description, b.isbn, b.rating,
		        u.id, u.username, u.profile_photo
		 FROM books b
		 JOIN users u ON u.id = b.user_id
		 WHERE b.user_id != ?
		 ORDER BY b.added_at DESC, b.id DESC`, excludeUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ExchangeListing, 0)
	for rows.Next() {
		var l ExchangeListing
		var desc sql.NullString
		if err := rows.Scan(&l.ID, &l.Title, &l.Author, &l.CoverURL, &desc, &l.ISBN, &l.Rating,
			&l.OwnerID, &l.OwnerUsername, &l.OwnerPhoto); err != nil {
			return nil, err
		}
		l.Description = desc.String
		out = append(out, l)
	}
	return out, rows.Err()
}
