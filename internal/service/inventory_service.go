package service

import (
	"context"

	"github.com/google/uuid"

	"gstbilling/internal/domain"
	"gstbilling/internal/port"
)

// AddStockInput is the DTO for a manual stock adjustment.
type AddStockInput struct {
	Change int64  `json:"change" binding:"required"`
	Note   string `json:"note"`
}

// InventoryService defines the stock tracking contract.
type InventoryService interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Inventory, error)
	GetByProduct(ctx context.Context, userID, productID uuid.UUID) (*domain.Inventory, error)
	AddLog(ctx context.Context, userID, productID uuid.UUID, input AddStockInput) (*domain.InventoryLog, error)
	ListLogs(ctx context.Context, userID, productID uuid.UUID) ([]domain.InventoryLog, error)
}

type inventoryService struct {
	repo        port.InventoryRepository
	productRepo port.ProductRepository
}

// NewInventoryService creates a new InventoryService implementation.
func NewInventoryService(repo port.InventoryRepository, productRepo port.ProductRepository) InventoryService {
	return &inventoryService{repo: repo, productRepo: productRepo}
}

func (s *inventoryService) List(ctx context.Context, userID uuid.UUID) ([]domain.Inventory, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *inventoryService) GetByProduct(ctx context.Context, userID, productID uuid.UUID) (*domain.Inventory, error) {
	return s.repo.GetByProduct(ctx, userID, productID)
}

// AddLog records a manual stock change. The product must belong to the user;
// negative changes may take stock below zero, matching how backdated sales
// are entered.
func (s *inventoryService) AddLog(ctx context.Context, userID, productID uuid.UUID, input AddStockInput) (*domain.InventoryLog, error) {
	if _, err := s.productRepo.GetByID(ctx, userID, productID); err != nil {
		return nil, err
	}

	logEntry := &domain.InventoryLog{
		UserID:    userID,
		ProductID: productID,
		Change:    input.Change,
		Note:      input.Note,
	}
	if err := s.repo.AddLog(ctx, logEntry); err != nil {
		return nil, err
	}
	return logEntry, nil
}

func (s *inventoryService) ListLogs(ctx context.Context, userID, productID uuid.UUID) ([]domain.InventoryLog, error) {
	return s.repo.ListLogs(ctx, userID, productID)
}
