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

func TestInventoryService_AddLog_Restock(t *testing.T) {
	repo := new(mocks.MockInventoryRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewInventoryService(repo, productRepo)

	userID := uuid.New()
	productID := uuid.New()

	productRepo.On("GetByID", mock.Anything, userID, productID).
		Return(&domain.Product{ID: productID, UserID: userID}, nil)
	repo.On("AddLog", mock.Anything, mock.MatchedBy(func(l *domain.InventoryLog) bool {
		return l.ProductID == productID && l.Change == 50 && l.Note == "restock" && l.InvoiceID == nil
	})).Return(nil)

	logEntry, err := svc.AddLog(context.Background(), userID, productID, service.AddStockInput{
		Change: 50,
		Note:   "restock",
	})

	require.NoError(t, err)
	assert.EqualValues(t, 50, logEntry.Change)
	repo.AssertExpectations(t)
}

func TestInventoryService_AddLog_UnknownProduct(t *testing.T) {
	repo := new(mocks.MockInventoryRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewInventoryService(repo, productRepo)

	userID := uuid.New()
	productID := uuid.New()

	productRepo.On("GetByID", mock.Anything, userID, productID).Return(nil, domain.ErrNotFound)

	_, err := svc.AddLog(context.Background(), userID, productID, service.AddStockInput{Change: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "AddLog", mock.Anything, mock.Anything)
}
