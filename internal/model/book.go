package model

import "time"

// Book mirrors the `books` table. Every book belongs to exactly one
// user; ownership is the user_id column and is never shared.
type Book struct {
	ID          uint64    // books.id
	UserID      uint64    // books.user_id (owner)
	Title       string    // books.title
	Author      string    // books.author
	CoverURL    string    // books.cover_url
	Description string    // books.description
	ISBN        string    // books.isbn
	Rating      float64   // books.rating
	AddedAt     time.Time // books.added_at
}
