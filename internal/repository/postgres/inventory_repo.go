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

type inventoryRepo struct {
	db *sqlx.DB
}

// NewInventoryRepo creates a new PostgreSQL-backed InventoryRepository.
func NewInventoryRepo(db *sqlx.DB) port.InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, inv *domain.Inventory) error {
	inv.ID = uuid.New()
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO inventory (id, user_id, product_id, current_stock, last_log_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		inv.ID, inv.UserID, inv.ProductID, inv.CurrentStock, inv.LastLogID, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inventoryRepo.Create: %w", err)
	}
	return nil
}

func (r *inventoryRepo) GetByID(ctx context.Context, userID, inventoryID uuid.UUID) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM inventory WHERE id = $1 AND user_id = $2", inventoryID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("inventoryRepo.GetByID: %w", err)
	}
	return &inv, nil
}

func (r *inventoryRepo) GetByProduct(ctx context.Context, userID, productID uuid.UUID) (*domain.Inventory, error) {
	var inv domain.Inventory
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM inventory WHERE user_id = $1 AND product_id = $2", userID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("inventoryRepo.GetByProduct: %w", err)
	}
	return &inv, nil
}

func (r *inventoryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Inventory, error) {
	var list []domain.Inventory
	err := r.db.SelectContext(ctx, &list,
		"SELECT * FROM inventory WHERE user_id = $1 ORDER BY created_at", userID)
	if err != nil {
		return nil, fmt.Errorf("inventoryRepo.ListByUser: %w", err)
	}
	return list, nil
}

// AddLog inserts the log row and applies its change to current stock in one
// transaction, so a failed insert never moves the stock.
func (r *inventoryRepo) AddLog(ctx context.Context, log *domain.InventoryLog) error {
	log.ID = uuid.New()
	log.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("inventoryRepo.AddLog begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO inventory_logs (id, user_id, product_id, change, note, invoice_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		log.ID, log.UserID, log.ProductID, log.Change, log.Note, log.InvoiceID, log.CreatedAt)
	if err != nil {
		return fmt.Errorf("inventoryRepo.AddLog insert: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE inventory SET current_stock = current_stock + $1, last_log_id = $2, updated_at = $3
		WHERE user_id = $4 AND product_id = $5`,
		log.Change, log.ID, log.CreatedAt, log.UserID, log.ProductID)
	if err != nil {
		return fmt.Errorf("inventoryRepo.AddLog update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("inventoryRepo.AddLog commit: %w", err)
	}
	return nil
}

func (r *inventoryRepo) ListLogs(ctx context.Context, userID, productID uuid.UUID) ([]domain.InventoryLog, error) {
	var logs []domain.InventoryLog
	err := r.db.SelectContext(ctx, &logs,
		"SELECT * FROM inventory_logs WHERE user_id = $1 AND product_id = $2 ORDER BY created_at DESC",
		userID, productID)
	if err != nil {
		return nil, fmt.Errorf("inventoryRepo.ListLogs: %w", err)
	}
	return logs, nil
}

// DeleteLogsByInvoice removes an invoice's stock deductions and rolls their
// total change back into current stock.
func (r *inventoryRepo) DeleteLogsByInvoice(ctx context.Context, userID, invoiceID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("inventoryRepo.DeleteLogsByInvoice begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var logs []domain.InventoryLog
	err = tx.SelectContext(ctx, &logs,
		"SELECT * FROM inventory_logs WHERE user_id = $1 AND invoice_id = $2", userID, invoiceID)
	if err != nil {
		return fmt.Errorf("inventoryRepo.DeleteLogsByInvoice select: %w", err)
	}

	now := time.Now().UTC()
	for i := range logs {
		_, err = tx.ExecContext(ctx,
			`UPDATE inventory SET current_stock = current_stock - $1, updated_at = $2
			WHERE user_id = $3 AND product_id = $4`,
			logs[i].Change, now, userID, logs[i].ProductID)
		if err != nil {
			return fmt.Errorf("inventoryRepo.DeleteLogsByInvoice revert: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"DELETE FROM inventory_logs WHERE user_id = $1 AND invoice_id = $2", userID, invoiceID)
	if err != nil {
		return fmt.Errorf("inventoryRepo.DeleteLogsByInvoice delete: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("inventoryRepo.DeleteLogsByInvoice commit: %w", err)
	}
	return nil
}
