// Package session implements the in-process registry of bearer tokens.
// Tokens are opaque random strings bound to a user id and an expiry;
// the registry lives only in memory, so restarting the server
// invalidates every session.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 24 * time.Hour

type entry struct {
	userID  uint64
	expires time.Time
}

// Store maps tokens to sessions behind a mutex. It is safe for
// concurrent use. The zero value is not usable; construct with New.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time // injectable clock for tests
}

// New returns an empty store issuing tokens with the given TTL.
// A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue creates a new token bound to userID and returns it together
// with its expiry time. Every call produces a distinct token, even
// for the same user.
func (s *Store) Issue(userID uint64) (string, time.Time, error) {
	tok, err := randomHex(32) // 32 bytes -> 64 hex chars
	if err != nil {
		return "", time.Time{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := s.now().UTC().Add(s.ttl)
	s.entries[tok] = entry{userID: userID, expires: exp}
	return tok, exp, nil
}

// Resolve returns the user id bound to token. Expired entries are
// evicted on lookup, so a resolve after expiry reports not-found.
func (s *Store) Resolve(token string) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return 0, false
	}
	if s.now().UTC().After(e.expires) {
		delete(s.entries, token)
		return 0, false
	}
	return e.userID, true
}

// Revoke removes token unconditionally. Revoking an unknown token is
// a no-op.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}

// Active counts sessions that have not yet expired, pruning the ones
// that have.
func (s *Store) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().UTC()
	n := 0
	for tok, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, tok)
			continue
		}
		n++
	}
	return n
}

// SetClock replaces the store's time source. Intended for tests that
// need to fast-forward past the TTL.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
