package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbilling/internal/domain"
	"gstbilling/internal/service"
	"gstbilling/mocks"
)

func TestBookService_AddLog_Payment(t *testing.T) {
	bookRepo := new(mocks.MockBookRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewBookService(bookRepo, invoiceRepo)

	userID := uuid.New()
	bookID := uuid.New()

	bookRepo.On("GetByID", mock.Anything, userID, bookID).
		Return(&domain.Book{ID: bookID, UserID: userID}, nil)
	bookRepo.On("AddLog", mock.Anything, userID, mock.MatchedBy(func(l *domain.BookLog) bool {
		return l.BookID == bookID && l.Change == "500.00" && l.InvoiceID == nil
	})).Return(nil)

	logEntry, err := svc.AddLog(context.Background(), userID, bookID, service.AddBookLogInput{
		Change: "500",
		Note:   "cash received",
	})

	require.NoError(t, err)
	assert.Equal(t, "500.00", logEntry.Change)
	bookRepo.AssertExpectations(t)
}

func TestBookService_AddLog_LinksInvoiceByNumber(t *testing.T) {
	bookRepo := new(mocks.MockBookRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewBookService(bookRepo, invoiceRepo)

	userID := uuid.New()
	bookID := uuid.New()
	invoiceID := uuid.New()
	number := 42

	bookRepo.On("GetByID", mock.Anything, userID, bookID).
		Return(&domain.Book{ID: bookID, UserID: userID}, nil)
	invoiceRepo.On("GetByNumber", mock.Anything, userID, number).
		Return(&domain.Invoice{ID: invoiceID, InvoiceNumber: number}, nil)
	bookRepo.On("AddLog", mock.Anything, userID, mock.MatchedBy(func(l *domain.BookLog) bool {
		return l.InvoiceID != nil && *l.InvoiceID == invoiceID
	})).Return(nil)

	_, err := svc.AddLog(context.Background(), userID, bookID, service.AddBookLogInput{
		Change:        "-120.50",
		InvoiceNumber: &number,
	})

	require.NoError(t, err)
	bookRepo.AssertExpectations(t)
}

func TestBookService_AddLog_UnknownInvoiceNumber(t *testing.T) {
	bookRepo := new(mocks.MockBookRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewBookService(bookRepo, invoiceRepo)

	userID := uuid.New()
	bookID := uuid.New()
	number := 999

	bookRepo.On("GetByID", mock.Anything, userID, bookID).
		Return(&domain.Book{ID: bookID, UserID: userID}, nil)
	invoiceRepo.On("GetByNumber", mock.Anything, userID, number).
		Return(nil, domain.ErrNotFound)

	_, err := svc.AddLog(context.Background(), userID, bookID, service.AddBookLogInput{
		Change:        "10",
		InvoiceNumber: &number,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInvoiceNumber)
	bookRepo.AssertNotCalled(t, "AddLog", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookService_AddLog_BadAmount(t *testing.T) {
	bookRepo := new(mocks.MockBookRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewBookService(bookRepo, invoiceRepo)

	userID := uuid.New()
	bookID := uuid.New()

	bookRepo.On("GetByID", mock.Anything, userID, bookID).
		Return(&domain.Book{ID: bookID, UserID: userID}, nil)

	_, err := svc.AddLog(context.Background(), userID, bookID, service.AddBookLogInput{
		Change: "not-a-number",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInvoiceData)
}

func TestBookService_AddLog_UnknownBook(t *testing.T) {
	bookRepo := new(mocks.MockBookRepo)
	invoiceRepo := new(mocks.MockInvoiceRepo)
	svc := service.NewBookService(bookRepo, invoiceRepo)

	userID := uuid.New()
	bookID := uuid.New()

	bookRepo.On("GetByID", mock.Anything, userID, bookID).Return(nil, domain.ErrNotFound)

	_, err := svc.AddLog(context.Background(), userID, bookID, service.AddBookLogInput{Change: "10"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
