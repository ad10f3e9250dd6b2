package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"gstbilling/internal/domain"
)

// MockBookRepo is a mock implementation of port.BookRepository.
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepo) GetByID(ctx context.Context, userID, bookID uuid.UUID) (*domain.Book, error) {
	args := m.Called(ctx, userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepo) GetByCustomer(ctx context.Context, userID, customerID uuid.UUID) (*domain.Book, error) {
	args := m.Called(ctx, userID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Book, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}

func (m *MockBookRepo) AddLog(ctx context.Context, userID uuid.UUID, log *domain.BookLog) error {
	args := m.Called(ctx, userID, log)
	return args.Error(0)
}

func (m *MockBookRepo) ListLogs(ctx context.Context, userID, bookID uuid.UUID) ([]domain.BookLog, error) {
	args := m.Called(ctx, userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookLog), args.Error(1)
}
