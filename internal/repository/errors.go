// Package repository is the data access layer. This file defines the
// sentinel errors shared across repositories so that handlers can map
// failure kinds to HTTP statuses without inspecting SQL errors.
package repository

import "errors"

// ErrNotFound is returned when a referenced row does not exist.
// Handlers translate this into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own, such as deciding another user's exchange
// request. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an operation cannot proceed because of
// existing state: a duplicate book or favorite, a second pending
// request for the same book, or deciding a request that was already
// decided. Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrOwnBook is returned when a user requests an exchange for a book
// they already own. Handlers translate this into HTTP 400.
var ErrOwnBook = errors.New("cannot request own book")

// ErrUserExists is returned on signup when the username or email is
// already taken.
var ErrUserExists = errors.New("username or email already exists")
