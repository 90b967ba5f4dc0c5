// Package mocks provides testify-based fakes of the store interfaces
// consumed by the HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sowmya-sree-builds/book-exchange/internal/model"
	"github.com/sowmya-sree-builds/book-exchange/internal/repository"
)

type UserStoreMock struct {
	mock.Mock
}

func (m *UserStoreMock) Create(ctx context.Context, username, email, password string, cost int) (uint64, error) {
	args := m.Called(ctx, username, email, password, cost)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *UserStoreMock) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	var u model.User
	if v := args.Get(0); v != nil {
		u = v.(model.User)
	}
	return u, args.Error(1)
}

func (m *UserStoreMock) GetByID(ctx context.Context, id uint64) (model.User, error) {
	args := m.Called(ctx, id)
	var u model.User
	if v := args.Get(0); v != nil {
		u = v.(model.User)
	}
	return u, args.Error(1)
}

func (m *UserStoreMock) Stats(ctx context.Context, userID uint64) (model.ProfileStats, error) {
	args := m.Called(ctx, userID)
	var s model.ProfileStats
	if v := args.Get(0); v != nil {
		s = v.(model.ProfileStats)
	}
	return s, args.Error(1)
}

type BookStoreMock struct {
	mock.Mock
}

func (m *BookStoreMock) Add(ctx context.Context, userID uint64, b model.Book) (uint64, error) {
	args := m.Called(ctx, userID, b)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *BookStoreMock) ListByUser(ctx context.Context, userID uint64) ([]model.Book, error) {
	args := m.Called(ctx, userID)
	var list []model.Book
	if v := args.Get(0); v != nil {
		list = v.([]model.Book)
	}
	return list, args.Error(1)
}

func (m *BookStoreMock) ListExchange(ctx context.Context, excludeUserID uint64) ([]repository.ExchangeListing, error) {
	args := m.Called(ctx, excludeUserID)
	var list []repository.ExchangeListing
	if v := args.Get(0); v != nil {
		list = v.([]repository.ExchangeListing)
	}
	return list, args.Error(1)
}

type FavoriteStoreMock struct {
	mock.Mock
}

func (m *FavoriteStoreMock) Add(ctx context.Context, userID uint64, f model.Favorite) (uint64, error) {
	args := m.Called(ctx, userID, f)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *FavoriteStoreMock) ListByUser(ctx context.Context, userID uint64) ([]model.Favorite, error) {
	args := m.Called(ctx, userID)
	var list []model.Favorite
	if v := args.Get(0); v != nil {
		list = v.([]model.Favorite)
	}
	return list, args.Error(1)
}

func (m *FavoriteStoreMock) Remove(ctx context.Context, id, userID uint64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type ExchangeStoreMock struct {
	mock.Mock
}

func (m *ExchangeStoreMock) CreateRequest(ctx context.Context, requesterID, bookID uint64) (uint64, error) {
	args := m.Called(ctx, requesterID, bookID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *ExchangeStoreMock) ListSent(ctx context.Context, userID uint64) ([]repository.SentRequest, error) {
	args := m.Called(ctx, userID)
	var list []repository.SentRequest
	if v := args.Get(0); v != nil {
		list = v.([]repository.SentRequest)
	}
	return list, args.Error(1)
}

func (m *ExchangeStoreMock) ListReceived(ctx context.Context, userID uint64) ([]repository.ReceivedRequest, error) {
	args := m.Called(ctx, userID)
	var list []repository.ReceivedRequest
	if v := args.Get(0); v != nil {
		list = v.([]repository.ReceivedRequest)
	}
	return list, args.Error(1)
}

func (m *ExchangeStoreMock) Decide(ctx context.Context, requestID, deciderID uint64, status string) (model.ExchangeRequest, error) {
	args := m.Called(ctx, requestID, deciderID, status)
	var req model.ExchangeRequest
	if v := args.Get(0); v != nil {
		req = v.(model.ExchangeRequest)
	}
	return req, args.Error(1)
}
