package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sowmya-sree-builds/book-exchange/internal/model"
)

// ExchangeRepo manages the exchange-request lifecycle. A request is
// created pending, decided exactly once by the book's owner, and an
// accepted decision appends one row to completed_exchanges in the
// same transaction as the status update.
type ExchangeRepo struct{ db *sql.DB }

func NewExchangeRepo(db *sql.DB) *ExchangeRepo { return &ExchangeRepo{db: db} }

// SentRequest is a request the user made, enriched with the current
// book fields and the owner's identity. Book data is joined live at
// query time, not snapshotted.
type SentRequest struct {
	ID            uint64    `json:"id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	BookID        uint64    `json:"book_id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	CoverURL      string    `json:"cover_url"`
	OwnerUsername string    `json:"owner_username"`
	OwnerPhoto    string    `json:"owner_photo"`
}

// ReceivedRequest is a request made against one of the user's books,
// enriched with the requester's identity.
type ReceivedRequest struct {
	ID                uint64    `json:"id"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	BookID            uint64    `json:"book_id"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	CoverURL          string    `json:"cover_url"`
	RequesterUsername string    `json:"requester_username"`
	RequesterPhoto    string    `json:"requester_photo"`
}

// CreateRequest creates a pending request for bookID on behalf of
// requesterID. The book's current owner is captured into the request
// row. Fails with ErrNotFound when the book does not exist, ErrOwnBook
// when the requester owns it, and ErrConflict when the requester
// already has a pending request for the same book.
func (r *ExchangeRepo) CreateRequest(ctx context.Context, requesterID, bookID uint64) (uint64, error) {
	var ownerID uint64
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id FROM books WHERE id=? LIMIT 1", bookID).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	if ownerID == requesterID {
		return 0, ErrOwnBook
	}

	var pending uint64
	err = r.db.QueryRowContext(ctx,
		"SELECT id FROM exchange_requests WHERE requester_id=? AND book_id=? AND status='pending' LIMIT 1",
		requesterID, bookID).Scan(&pending)
	switch {
	case err == nil:
		return 0, ErrConflict
	case err != sql.ErrNoRows:
		return 0, err
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO exchange_requests (requester_id, owner_id, book_id, status) VALUES (?,?,?,'pending')",
		requesterID, ownerID, bookID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListSent returns the requests userID made, newest first.
func (r *ExchangeRepo) ListSent(ctx context.Context, userID uint64) ([]SentRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT er.id, er.status, er.created_at, er.book_id,
		        b.title, b.author, b.cover_url,
		        u.username, u.profile_photo
		 FROM exchange_requests er
		 JOIN books b ON b.id = er.book_id
		 JOIN users u ON u.id = er.owner_id
		 WHERE er.requester_id = ?
		 ORDER BY er.created_at DESC, er.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SentRequest, 0)
	for rows.Next() {
		var s SentRequest
		if err := rows.Scan(&s.ID, &s.Status, &s.CreatedAt, &s.BookID,
			&s.Title, &s.Author, &s.CoverURL, &s.OwnerUsername, &s.OwnerPhoto); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListReceived returns the requests made against userID's books,
// newest first.
func (r *ExchangeRepo) ListReceived(ctx context.Context, userID uint64) ([]ReceivedRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT er.id, er.status, er.created_at, er.book_id,
		        b.title, b.author, b.cover_url,
		        u.username, u.profile_photo
		 FROM exchange_requests er
		 JOIN books b ON b.id = er.book_id
		 JOIN users u ON u.id = er.requester_id
		 WHERE er.owner_id = ?
		 ORDER BY er.created_at DESC, er.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ReceivedRequest, 0)
	for rows.Next() {
		var rr ReceivedRequest
		if err := rows.Scan(&rr.ID, &rr.Status, &rr.CreatedAt, &rr.BookID,
			&rr.Title, &rr.Author, &rr.CoverURL, &rr.RequesterUsername, &rr.RequesterPhoto); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// Decide resolves a pending request to accepted or rejected. Only the
// request's owner may decide, and only while the request is still
// pending. Accepting also inserts the completed_exchanges row; the
// status update and the insert commit or roll back together. The
// decided request is returned for event publishing.
func (r *ExchangeRepo) Decide(ctx context.Context, requestID, deciderID uint64, status string) (model.ExchangeRequest, error) {
	var req model.ExchangeRequest
	if status != model.StatusAccepted && status != model.StatusRejected {
		return req, ErrConflict
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return req, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx,
		`SELECT id, requester_id, owner_id, book_id, status, created_at, updated_at
		 FROM exchange_requests WHERE id=? FOR UPDATE`, requestID).Scan(
		&req.ID, &req.RequesterID, &req.OwnerID, &req.BookID, &req.Status,
		&req.CreatedAt, &req.UpdatedAt)
	if err == sql.ErrNoRows {
		return req, ErrNotFound
	}
	if err != nil {
		return req, err
	}
	if req.OwnerID != deciderID {
		return req, ErrForbidden
	}
	// A request transitions exactly once; deciding it again would
	// duplicate the completed-exchange record.
	if req.Status != model.StatusPending {
		return req, ErrConflict
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE exchange_requests SET status=?, updated_at=NOW() WHERE id=?",
		status, requestID); err != nil {
		return req, err
	}
	if status == model.StatusAccepted {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO completed_exchanges (user1_id, user2_id, book_id) VALUES (?,?,?)",
			req.OwnerID, req.RequesterID, req.BookID); err != nil {
			return req, err
		}
	}
	if err := tx.Commit(); err != nil {
		return req, err
	}
	committed = true
	req.Status = status
	return req, nil
}
