package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gstbilling/internal/domain"
	"gstbilling/internal/port"
)

// CreateProductInput is the DTO for creating a product.
type CreateProductInput struct {
	ProductName string `json:"product_name" binding:"required"`
	ProductHSN  string `json:"product_hsn"`
	ProductRate string `json:"product_rate"`
	TaxRate     string `json:"tax_rate"`
}

// UpdateProductInput is the DTO for editing a product.
type UpdateProductInput struct {
	ProductName *string `json:"product_name"`
	ProductHSN  *string `json:"product_hsn"`
	ProductRate *string `json:"product_rate"`
	TaxRate     *string `json:"tax_rate"`
}

// ProductService defines the product management contract.
type ProductService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, userID, productID uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Product, error)
	Update(ctx context.Context, userID, productID uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}

type productService struct {
	repo          port.ProductRepository
	inventoryRepo port.InventoryRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(repo port.ProductRepository, inventoryRepo port.InventoryRepository) ProductService {
	return &productService{repo: repo, inventoryRepo: inventoryRepo}
}

// Create stores the product and starts tracking its inventory at zero stock.
func (s *productService) Create(ctx context.Context, userID uuid.UUID, input CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		UserID:      userID,
		ProductName: input.ProductName,
		ProductHSN:  input.ProductHSN,
		ProductRate: input.ProductRate,
		TaxRate:     input.TaxRate,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	inv := &domain.Inventory{
		UserID:    userID,
		ProductID: product.ID,
	}
	if err := s.inventoryRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("productService.Create: creating inventory: %w", err)
	}

	return product, nil
}

func (s *productService) GetByID(ctx context.Context, userID, productID uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, userID, productID)
}

func (s *productService) List(ctx context.Context, userID uuid.UUID) ([]domain.Product, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *productService) Update(ctx context.Context, userID, productID uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if input.ProductName != nil {
		product.ProductName = *input.ProductName
	}
	if input.ProductHSN != nil {
		product.ProductHSN = *input.ProductHSN
	}
	if input.ProductRate != nil {
		product.ProductRate = *input.ProductRate
	}
	if input.TaxRate != nil {
		product.TaxRate = *input.TaxRate
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, productID)
}
