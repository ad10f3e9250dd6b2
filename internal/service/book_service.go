package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbilling/internal/domain"
	"gstbilling/internal/port"
)

// AddBookLogInput is the DTO for a manual book entry. Change is a signed
// decimal string: payments received are positive, dues are negative. An
// optional invoice number ties the entry to an invoice.
type AddBookLogInput struct {
	Change        string `json:"change" binding:"required"`
	Note          string `json:"note"`
	InvoiceNumber *int   `json:"invoice_number"`
}

// BookService defines the customer ledger contract.
type BookService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Book, error)
	GetByID(ctx context.Context, userID, bookID uuid.UUID) (*domain.Book, error)
	AddLog(ctx context.Context, userID, bookID uuid.UUID, input AddBookLogInput) (*domain.BookLog, error)
	ListLogs(ctx context.Context, userID, bookID uuid.UUID) ([]domain.BookLog, error)
}

type bookService struct {
	repo        port.BookRepository
	invoiceRepo port.InvoiceRepository
}

// NewBookService creates a new BookService implementation.
func NewBookService(repo port.BookRepository, invoiceRepo port.InvoiceRepository) BookService {
	return &bookService{repo: repo, invoiceRepo: invoiceRepo}
}

func (s *bookService) List(ctx context.Context, userID uuid.UUID) ([]domain.Book, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *bookService) GetByID(ctx context.Context, userID, bookID uuid.UUID) (*domain.Book, error) {
	return s.repo.GetByID(ctx, userID, bookID)
}

// AddLog validates the change amount and the optional invoice reference, then
// records the entry against the book's running balance.
func (s *bookService) AddLog(ctx context.Context, userID, bookID uuid.UUID, input AddBookLogInput) (*domain.BookLog, error) {
	if _, err := s.repo.GetByID(ctx, userID, bookID); err != nil {
		return nil, err
	}

	change, err := decimal.NewFromString(input.Change)
	if err != nil {
		return nil, domain.ErrInvalidInvoiceData
	}

	var invoiceID *uuid.UUID
	if input.InvoiceNumber != nil {
		invoice, err := s.invoiceRepo.GetByNumber(ctx, userID, *input.InvoiceNumber)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrInvalidInvoiceNumber
			}
			return nil, err
		}
		invoiceID = &invoice.ID
	}

	logEntry := &domain.BookLog{
		BookID:    bookID,
		Change:    change.StringFixed(2),
		Note:      input.Note,
		InvoiceID: invoiceID,
	}
	if err := s.repo.AddLog(ctx, userID, logEntry); err != nil {
		return nil, err
	}
	return logEntry, nil
}

func (s *bookService) ListLogs(ctx context.Context, userID, bookID uuid.UUID) ([]domain.BookLog, error) {
	return s.repo.ListLogs(ctx, userID, bookID)
}
