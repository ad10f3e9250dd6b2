package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gstbilling/internal/domain"
	"gstbilling/internal/port"
)

// CreateCustomerInput is the DTO for creating a customer.
type CreateCustomerInput struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerAddress string `json:"customer_address"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerGST     string `json:"customer_gst"`
}

// UpdateCustomerInput is the DTO for editing a customer.
type UpdateCustomerInput struct {
	CustomerName    *string `json:"customer_name"`
	CustomerAddress *string `json:"customer_address"`
	CustomerPhone   *string `json:"customer_phone"`
	CustomerGST     *string `json:"customer_gst"`
}

// CustomerService defines the customer management contract.
type CustomerService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, userID, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Customer, error)
	Update(ctx context.Context, userID, customerID uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, userID, customerID uuid.UUID) error
}

type customerService struct {
	repo     port.CustomerRepository
	bookRepo port.BookRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository, bookRepo port.BookRepository) CustomerService {
	return &customerService{repo: repo, bookRepo: bookRepo}
}

// Create stores the customer and opens their running-balance book.
func (s *customerService) Create(ctx context.Context, userID uuid.UUID, input CreateCustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		UserID:          userID,
		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		CustomerPhone:   input.CustomerPhone,
		CustomerGST:     input.CustomerGST,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}

	book := &domain.Book{
		UserID:     userID,
		BookName:   customer.CustomerName,
		CustomerID: &customer.ID,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("customerService.Create: opening book: %w", err)
	}

	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, userID, customerID uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, userID, customerID)
}

func (s *customerService) List(ctx context.Context, userID uuid.UUID) ([]domain.Customer, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *customerService) Update(ctx context.Context, userID, customerID uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, userID, customerID)
	if err != nil {
		return nil, err
	}

	if input.CustomerName != nil {
		customer.CustomerName = *input.CustomerName
	}
	if input.CustomerAddress != nil {
		customer.CustomerAddress = *input.CustomerAddress
	}
	if input.CustomerPhone != nil {
		customer.CustomerPhone = *input.CustomerPhone
	}
	if input.CustomerGST != nil {
		customer.CustomerGST = *input.CustomerGST
	}

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, userID, customerID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, customerID)
}
