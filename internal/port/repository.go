package port

import (
	"context"

	"github.com/google/uuid"

	"gstbilling/internal/domain"
)

// UserRepository defines the contract for account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProfileRepository defines the contract for business profile persistence.
// Every account has at most one profile.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Update(ctx context.Context, profile *domain.UserProfile) error
}

// CustomerRepository defines the contract for customer persistence.
// All query methods are scoped by userID.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, userID, customerID uuid.UUID) (*domain.Customer, error)
	// FindExact matches a customer on all four identity fields, the way
	// invoice submission decides between reuse and insert.
	FindExact(ctx context.Context, userID uuid.UUID, name, address, phone, gst string) (*domain.Customer, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, userID, customerID uuid.UUID) error
}

// ProductRepository defines the contract for product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, userID, productID uuid.UUID) (*domain.Product, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Product, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}

// InvoiceRepository defines the contract for invoice persistence.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, userID, invoiceID uuid.UUID) (*domain.Invoice, error)
	GetByNumber(ctx context.Context, userID uuid.UUID, number int) (*domain.Invoice, error)
	// MaxNumber returns the highest invoice number for the user, 0 when none.
	MaxNumber(ctx context.Context, userID uuid.UUID) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	ListAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error)
	Delete(ctx context.Context, userID, invoiceID uuid.UUID) error
}

// InventoryRepository defines the contract for inventory and its log trail.
type InventoryRepository interface {
	Create(ctx context.Context, inv *domain.Inventory) error
	GetByID(ctx context.Context, userID, inventoryID uuid.UUID) (*domain.Inventory, error)
	GetByProduct(ctx context.Context, userID, productID uuid.UUID) (*domain.Inventory, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Inventory, error)
	// AddLog inserts the log and applies its change to current stock.
	AddLog(ctx context.Context, log *domain.InventoryLog) error
	ListLogs(ctx context.Context, userID, productID uuid.UUID) ([]domain.InventoryLog, error)
	DeleteLogsByInvoice(ctx context.Context, userID, invoiceID uuid.UUID) error
}

// BookRepository defines the contract for running-balance books.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, userID, bookID uuid.UUID) (*domain.Book, error)
	GetByCustomer(ctx context.Context, userID, customerID uuid.UUID) (*domain.Book, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Book, error)
	// AddLog inserts the log and applies its change to the running balance.
	AddLog(ctx context.Context, userID uuid.UUID, log *domain.BookLog) error
	ListLogs(ctx context.Context, userID, bookID uuid.UUID) ([]domain.BookLog, error)
}
