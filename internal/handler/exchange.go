package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-sree-builds/book-exchange/internal/model"
	"github.com/sowmya-sree-builds/book-exchange/internal/queue"
	"github.com/sowmya-sree-builds/book-exchange/internal/repository"
)

// ExchangeHandler drives the exchange-request workflow: creating a
// request against another user's book, listing sent and received
// requests, and deciding a received request.
type ExchangeHandler struct {
	Exchanges ExchangeStore

	// Publish, when set, is invoked after an accepted decision has
	// committed. Failures are ignored; the event stream is a log, not
	// part of the request contract.
	Publish func(ctx context.Context, ev queue.ExchangeCompletedEvent) error
}

func NewExchangeHandler(exchanges ExchangeStore) *ExchangeHandler {
	return &ExchangeHandler{Exchanges: exchanges}
}

type requestExchangeReq struct {
	BookID uint64 `json:"book_id"`
}
type updateRequestReq struct {
	Status string `json:"status"`
}

// RequestExchange creates a pending request for another user's book.
func (h *ExchangeHandler) RequestExchange(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req requestExchangeReq
	if err := c.Bind(&req); err != nil || req.BookID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "book id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Exchanges.CreateRequest(ctx, userID, req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		case errors.Is(err, repository.ErrOwnBook):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot request your own book"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "request already pending"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create request"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "exchange request sent",
		"request_id": id,
	})
}

// MyRequests returns the caller's sent and received requests, each
// newest first, each joined against the current book and counterpart
// user data.
func (h *ExchangeHandler) MyRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	sent, err := h.Exchanges.ListSent(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch requests"})
	}
	received, err := h.Exchanges.ListReceived(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch requests"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"sent":           sent,
		"received":       received,
		"sent_count":     len(sent),
		"received_count": len(received),
	})
}

// UpdateRequest lets the book's owner accept or reject a pending
// request. Accepting also records the completed exchange; both writes
// happen in one transaction inside the store.
func (h *ExchangeHandler) UpdateRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || requestID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request id"})
	}
	var req updateRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Status != model.StatusAccepted && req.Status != model.StatusRejected {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	decided, err := h.Exchanges.Decide(ctx, requestID, userID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "only the owner can decide this request"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "request already decided"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update request"})
	}

	if req.Status == model.StatusAccepted && h.Publish != nil {
		ev := queue.ExchangeCompletedEvent{
			RequestID:   decided.ID,
			OwnerID:     decided.OwnerID,
			RequesterID: decided.RequesterID,
			BookID:      decided.BookID,
			CompletedAt: time.Now().UTC().Format(time.RFC3339),
		}
		go func() {
			pctx, pcancel := context.WithTimeout(context.Background(), dbTimeout)
			defer pcancel()
			_ = h.Publish(pctx, ev)
		}()
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "request " + req.Status,
		"status":  req.Status,
	})
}
