package model

import "time"

// Favorite mirrors the `favorites` table. A favorite is a
// denormalized copy of the book's display fields frozen at the
// moment it was added; it deliberately does not reference a row in
// `books`, so later edits or deletions of the book never alter it.
type Favorite struct {
	ID          uint64    // favorites.id
	UserID      uint64    // favorites.user_id
	Title       string    // favorites.book_title
	Author      string    // favorites.book_author
	Cover       string    // favorites.book_cover
	Description string    // favorites.book_description
	ISBN        string    // favorites.book_isbn
	AddedAt     time.Time // favorites.added_at
}
