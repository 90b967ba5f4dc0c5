package model

import "time"

// Exchange request status values. A request starts as pending and
// transitions exactly once to accepted or rejected; no further
// transitions are allowed.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ExchangeRequest mirrors the `exchange_requests` table. The owner
// is captured from the book at creation time and not re-verified
// afterwards.
//
// Fields:
//  ID          – primary key identifier.
//  RequesterID – user asking for the book.
//  OwnerID     – user who owned the book when the request was made.
//  BookID      – the requested book.
//  Status      – pending, accepted or rejected.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – timestamp of the last status change.
type ExchangeRequest struct {
	ID          uint64    // exchange_requests.id
	RequesterID uint64    // exchange_requests.requester_id
	OwnerID     uint64    // exchange_requests.owner_id
	BookID      uint64    // exchange_requests.book_id
	Status      string    // exchange_requests.status
	CreatedAt   time.Time // exchange_requests.created_at
	UpdatedAt   time.Time // exchange_requests.updated_at
}

// CompletedExchange mirrors the append-only `completed_exchanges`
// table. Exactly one row is written when a request is accepted;
// user1 is the former owner and user2 the former requester.
type CompletedExchange struct {
	ID          uint64    // completed_exchanges.id
	User1ID     uint64    // completed_exchanges.user1_id (former owner)
	User2ID     uint64    // completed_exchanges.user2_id (former requester)
	BookID      uint64    // completed_exchanges.book_id
	CompletedAt time.Time // completed_exchanges.completed_at
}
