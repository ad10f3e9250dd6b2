package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UserProfile holds the business details printed on invoices. BusinessGST is
// the seller GSTIN consumed by the tax breakdown.
type UserProfile struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	BusinessTitle   string    `db:"business_title" json:"business_title"`
	BusinessAddress string    `db:"business_address" json:"business_address"`
	BusinessPhone   string    `db:"business_phone" json:"business_phone"`
	BusinessGST     string    `db:"business_gst" json:"business_gst"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is a buyer. CustomerGST may be empty (B2C).
type Customer struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	CustomerName    string    `db:"customer_name" json:"customer_name"`
	CustomerAddress string    `db:"customer_address" json:"customer_address"`
	CustomerPhone   string    `db:"customer_phone" json:"customer_phone"`
	CustomerGST     string    `db:"customer_gst" json:"customer_gst"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Product is a sellable item carrying its last-used rate and HSN code.
type Product struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	ProductName string    `db:"product_name" json:"product_name"`
	ProductHSN  string    `db:"product_hsn" json:"product_hsn"`
	ProductRate string    `db:"product_rate" json:"product_rate"`
	TaxRate     string    `db:"tax_rate" json:"tax_rate"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Invoice stores the submitted invoice content as a JSON blob. The line item
// list inside InvoiceJSON is re-read and normalized at view time; the invoice
// row never stores computed tax values.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	UserID        uuid.UUID       `db:"user_id" json:"user_id"`
	InvoiceNumber int             `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   time.Time       `db:"invoice_date" json:"invoice_date"`
	CustomerID    *uuid.UUID      `db:"customer_id" json:"customer_id"`
	InvoiceJSON   json.RawMessage `db:"invoice_json" json:"invoice_json"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// Inventory tracks current stock for a product.
type Inventory struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UserID       uuid.UUID  `db:"user_id" json:"user_id"`
	ProductID    uuid.UUID  `db:"product_id" json:"product_id"`
	CurrentStock int64      `db:"current_stock" json:"current_stock"`
	LastLogID    *uuid.UUID `db:"last_log_id" json:"last_log_id"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// InventoryLog records a stock change, optionally tied to an invoice.
type InventoryLog struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	ProductID uuid.UUID  `db:"product_id" json:"product_id"`
	Change    int64      `db:"change" json:"change"`
	Note      string     `db:"note" json:"note"`
	InvoiceID *uuid.UUID `db:"invoice_id" json:"invoice_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Book is a running balance ledger, one per customer by default.
type Book struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	UserID         uuid.UUID  `db:"user_id" json:"user_id"`
	BookName       string     `db:"book_name" json:"book_name"`
	CustomerID     *uuid.UUID `db:"customer_id" json:"customer_id"`
	CurrentBalance string     `db:"current_balance" json:"current_balance"`
	LastLogID      *uuid.UUID `db:"last_log_id" json:"last_log_id"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// BookLog records a balance change, optionally tied to an invoice.
type BookLog struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	BookID    uuid.UUID  `db:"book_id" json:"book_id"`
	Change    string     `db:"change" json:"change"`
	Note      string     `db:"note" json:"note"`
	InvoiceID *uuid.UUID `db:"invoice_id" json:"invoice_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
