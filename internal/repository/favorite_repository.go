package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/sowmya-sree-builds/book-exchange/internal/model"
)

// FavoriteRepo stores per-user favorite books. Favorites are
// snapshots of the book's fields at add time; they are independent of
// the books table.
type FavoriteRepo struct{ db *sql.DB }

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{db: db} }

// Add inserts a favorite. The same (title, author) pair can be
// favorited at most once per user.
func (r *FavoriteRepo) Add(ctx context.Context, userID uint64, f model.Favorite) (uint64, error) {
	f.Title = strings.TrimSpace(f.Title)
	f.Author = strings.TrimSpace(f.Author)

	var existing uint64
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM favorites WHERE user_id=? AND book_title=? AND book_author=? LIMIT 1",
		userID, f.Title, f.Author).Scan(&existing)
	switch {
	case err == nil:
		return 0, ErrConflict
	case err != sql.ErrNoRows:
		return 0, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, book_title, book_author, book_cover, book_description, book_isbn)
		 VALUES (?,?,?,?,?,?)`,
		userID, f.Title, f.Author, f.Cover, f.Description, f.ISBN)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByUser returns the user's favorites, newest first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Favorite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, book_title, book_author, book_cover, book_description, book_isbn, added_at
		 FROM favorites WHERE user_id=? ORDER BY added_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Favorite, 0)
	for rows.Next() {
		var f model.Favorite
		var desc sql.NullString
		if err := rows.Scan(&f.ID, &f.UserID, &f.Title, &f.Author, &f.Cover, &desc, &f.ISBN, &f.AddedAt); err != nil {
			return nil, err
		}
		f.Description = desc.String
		out = append(out, f)
	}
	return out, rows.Err()
}

// Remove deletes the favorite when it belongs to userID. ErrNotFound
// covers both an unknown id and someone else's favorite.
func (r *FavoriteRepo) Remove(ctx context.Context, id, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE id=? AND user_id=?", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
