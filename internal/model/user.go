package model

import "time"

// User represents an application user record as stored in the
// `users` table. JSON tags are omitted because these structs are
// used internally by the repository layer; handlers define
// separate response types with appropriate tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique display name chosen at signup.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  ProfilePhoto – URL of the avatar image generated at signup.
//  CreatedAt    – timestamp of account creation.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	ProfilePhoto string    // users.profile_photo
	CreatedAt    time.Time // users.created_at
}

// ProfileStats aggregates the counters shown on a user's profile
// page. All counts are computed at query time, never stored.
//
// Fields:
//  Exchanges  – completed exchanges where the user was either party.
//  Requests   – exchange requests still pending, sent or received.
//  Favorites  – entries in the user's favorites list.
//  BooksOwned – books currently in the user's library.
type ProfileStats struct {
	Exchanges  int64 `json:"exchanges"`
	Requests   int64 `json:"requests"`
	Favorites  int64 `json:"favorites"`
	BooksOwned int64 `json:"books_owned"`
}
