// Package handler implements the HTTP endpoints. Handlers depend on
// narrow store interfaces rather than concrete repositories so tests
// can substitute mocks.
package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sowmya-sree-builds/book-exchange/internal/model"
	"github.com/sowmya-sree-builds/book-exchange/internal/repository"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// UserStore is the credential-store surface handlers need.
type UserStore interface {
	Create(ctx context.Context, username, email, password string, cost int) (uint64, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
	Stats(ctx context.Context, userID uint64) (model.ProfileStats, error)
}

// BookStore is the library-store surface for owned books.
type BookStore interface {
	Add(ctx context.Context, userID uint64, b model.Book) (uint64, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Book, error)
	ListExchange(ctx context.Context, excludeUserID uint64) ([]repository.ExchangeListing, error)
}

// FavoriteStore is the library-store surface for favorites.
type FavoriteStore interface {
	Add(ctx context.Context, userID uint64, f model.Favorite) (uint64, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Favorite, error)
	Remove(ctx context.Context, id, userID uint64) error
}

// ExchangeStore is the exchange-workflow surface.
type ExchangeStore interface {
	CreateRequest(ctx context.Context, requesterID, bookID uint64) (uint64, error)
	ListSent(ctx context.Context, userID uint64) ([]repository.SentRequest, error)
	ListReceived(ctx context.Context, userID uint64) ([]repository.ReceivedRequest, error)
	Decide(ctx context.Context, requestID, deciderID uint64, status string) (model.ExchangeRequest, error)
}

// getUserID extracts the user id that SessionAuth stored in the
// context.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}
