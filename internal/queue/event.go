// Package queue defines message payloads exchanged over the message broker.
package queue

// ExchangeCompletedEvent is published after an exchange request is
// accepted and the completed-exchange row has committed. It carries
// enough information for downstream consumers to log or trigger
// analytics without querying the primary database.
type ExchangeCompletedEvent struct {
	RequestID   uint64 `json:"request_id"`
	OwnerID     uint64 `json:"owner_id"`
	RequesterID uint64 `json:"requester_id"`
	BookID      uint64 `json:"book_id"`
	CompletedAt string `json:"completed_at"`
}
