package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbilling/internal/domain"
	"gstbilling/internal/port"
)

type bookRepo struct {
	db *sqlx.DB
}

// NewBookRepo creates a new PostgreSQL-backed BookRepository.
func NewBookRepo(db *sqlx.DB) port.BookRepository {
	return &bookRepo{db: db}
}

func (r *bookRepo) Create(ctx context.Context, b *domain.Book) error {
	b.ID = uuid.New()
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	if b.CurrentBalance == "" {
		b.CurrentBalance = "0"
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO books (id, user_id, book_name, customer_id, current_balance, last_log_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.UserID, b.BookName, b.CustomerID, b.CurrentBalance, b.LastLogID, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("bookRepo.Create: %w", err)
	}
	return nil
}

func (r *bookRepo) GetByID(ctx context.Context, userID, bookID uuid.UUID) (*domain.Book, error) {
	var b domain.Book
	err := r.db.GetContext(ctx, &b,
		"SELECT * FROM books WHERE id = $1 AND user_id = $2", bookID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bookRepo.GetByID: %w", err)
	}
	return &b, nil
}

func (r *bookRepo) GetByCustomer(ctx context.Context, userID, customerID uuid.UUID) (*domain.Book, error) {
	var b domain.Book
	err := r.db.GetContext(ctx, &b,
		"SELECT * FROM books WHERE user_id = $1 AND customer_id = $2", userID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bookRepo.GetByCustomer: %w", err)
	}
	return &b, nil
}

func (r *bookRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Book, error) {
	var books []domain.Book
	err := r.db.SelectContext(ctx, &books,
		"SELECT * FROM books WHERE user_id = $1 ORDER BY book_name", userID)
	if err != nil {
		return nil, fmt.Errorf("bookRepo.ListByUser: %w", err)
	}
	return books, nil
}

// AddLog inserts the log row and applies its change to the running balance in
// one transaction. Balances are stored as numeric text and added in SQL to
// avoid binary float drift.
func (r *bookRepo) AddLog(ctx context.Context, userID uuid.UUID, log *domain.BookLog) error {
	log.ID = uuid.New()
	log.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bookRepo.AddLog begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO book_logs (id, book_id, change, note, invoice_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		log.ID, log.BookID, log.Change, log.Note, log.InvoiceID, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("bookRepo.AddLog insert: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE books SET current_balance = (current_balance::numeric + $1::numeric)::text,
		last_log_id = $2, updated_at = $3 WHERE id = $4 AND user_id = $5`,
		log.Change, log.ID, log.CreatedAt, log.BookID, userID)
	if err != nil {
		return fmt.Errorf("bookRepo.AddLog update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("bookRepo.AddLog commit: %w", err)
	}
	return nil
}

func (r *bookRepo) ListLogs(ctx context.Context, userID, bookID uuid.UUID) ([]domain.BookLog, error) {
	var logs []domain.BookLog
	err := r.db.SelectContext(ctx, &logs,
		`SELECT bl.* FROM book_logs bl
		JOIN books b ON b.id = bl.book_id
		WHERE bl.book_id = $1 AND b.user_id = $2
		ORDER BY bl.created_at DESC`, bookID, userID)
	if err != nil {
		return nil, fmt.Errorf("bookRepo.ListLogs: %w", err)
	}
	return logs, nil
}
