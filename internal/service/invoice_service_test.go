package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbilling/internal/billing"
	"gstbilling/internal/domain"
	"gstbilling/internal/service"
	"gstbilling/mocks"
)

type invoiceMocks struct {
	invoiceRepo   *mocks.MockInvoiceRepo
	customerRepo  *mocks.MockCustomerRepo
	productRepo   *mocks.MockProductRepo
	inventoryRepo *mocks.MockInventoryRepo
	bookRepo      *mocks.MockBookRepo
	profileRepo   *mocks.MockProfileRepo
	sender        *mocks.MockEmailSender
}

func newInvoiceService() (service.InvoiceService, *invoiceMocks) {
	m := &invoiceMocks{
		invoiceRepo:   new(mocks.MockInvoiceRepo),
		customerRepo:  new(mocks.MockCustomerRepo),
		productRepo:   new(mocks.MockProductRepo),
		inventoryRepo: new(mocks.MockInventoryRepo),
		bookRepo:      new(mocks.MockBookRepo),
		profileRepo:   new(mocks.MockProfileRepo),
		sender:        new(mocks.MockEmailSender),
	}
	svc := service.NewInvoiceService(
		m.invoiceRepo, m.customerRepo, m.productRepo,
		m.inventoryRepo, m.bookRepo, m.profileRepo, m.sender,
	)
	return svc, m
}

func rawItem(description string, qty, rate, taxRate, hsn string) map[string]json.RawMessage {
	row := map[string]json.RawMessage{
		"description": json.RawMessage(`"` + description + `"`),
		"qty":         json.RawMessage(qty),
		"rate":        json.RawMessage(rate),
		"tax_rate":    json.RawMessage(taxRate),
	}
	if hsn != "" {
		row["hsn"] = json.RawMessage(`"` + hsn + `"`)
	}
	return row
}

func sellerProfile(userID uuid.UUID) *domain.UserProfile {
	return &domain.UserProfile{
		ID:            uuid.New(),
		UserID:        userID,
		BusinessTitle: "Sharma Traders",
		BusinessGST:   "27AAAAA0000A1Z5",
	}
}

func TestInvoiceService_Create_Success(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()
	customerID := uuid.New()
	bookID := uuid.New()
	productID := uuid.New()

	m.profileRepo.On("GetByUser", mock.Anything, userID).Return(sellerProfile(userID), nil)
	m.invoiceRepo.On("MaxNumber", mock.Anything, userID).Return(41, nil)
	m.customerRepo.On("FindExact", mock.Anything, userID, "Buyer Inc", "12 MG Road", "9876543210", "27BBBBB0000B1Z5").
		Return(&domain.Customer{
			ID:           customerID,
			UserID:       userID,
			CustomerName: "Buyer Inc",
			CustomerGST:  "27BBBBB0000B1Z5",
		}, nil)
	m.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Invoice).ID = uuid.New()
		}).
		Return(nil)
	m.productRepo.On("GetByName", mock.Anything, userID, "Steel Rod").
		Return(&domain.Product{ID: productID, UserID: userID, ProductName: "Steel Rod"}, nil)
	m.productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.ProductRate == "100" && p.TaxRate == "18" && p.ProductHSN == "721391"
	})).Return(nil)
	m.inventoryRepo.On("AddLog", mock.Anything, mock.MatchedBy(func(l *domain.InventoryLog) bool {
		return l.ProductID == productID && l.Change == -2 && l.InvoiceID != nil
	})).Return(nil)
	m.bookRepo.On("GetByCustomer", mock.Anything, userID, customerID).
		Return(&domain.Book{ID: bookID, UserID: userID, CustomerID: &customerID}, nil)
	// 2 x 100 at 18% intrastate = 236.00 grand total, debited from the book.
	m.bookRepo.On("AddLog", mock.Anything, userID, mock.MatchedBy(func(l *domain.BookLog) bool {
		return l.BookID == bookID && l.Change == "-236.00" && l.InvoiceID != nil
	})).Return(nil)

	invoice, err := svc.Create(context.Background(), userID, service.CreateInvoiceInput{
		InvoiceDate:     "2025-01-15",
		CustomerName:    "Buyer Inc",
		CustomerAddress: "12 MG Road",
		CustomerPhone:   "9876543210",
		CustomerGST:     "27BBBBB0000B1Z5",
		Items: []map[string]json.RawMessage{
			rawItem("Steel Rod", "2", "100", "18", "721391"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 42, invoice.InvoiceNumber)
	require.NotNil(t, invoice.CustomerID)
	assert.Equal(t, customerID, *invoice.CustomerID)

	m.invoiceRepo.AssertExpectations(t)
	m.bookRepo.AssertExpectations(t)
	m.inventoryRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_NewCustomerOpensBook(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()

	m.profileRepo.On("GetByUser", mock.Anything, userID).Return(sellerProfile(userID), nil)
	m.customerRepo.On("FindExact", mock.Anything, userID, "Walk-in", "", "", "").
		Return(nil, domain.ErrNotFound)
	m.customerRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Customer).ID = uuid.New()
		}).
		Return(nil)
	m.bookRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Book) bool {
		return b.BookName == "Walk-in" && b.CustomerID != nil
	})).Return(nil)
	m.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Invoice).ID = uuid.New()
		}).
		Return(nil)
	m.productRepo.On("GetByName", mock.Anything, userID, "Thing").Return(nil, domain.ErrNotFound)
	m.productRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Product).ID = uuid.New()
		}).
		Return(nil)
	m.inventoryRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Inventory")).Return(nil)
	m.bookRepo.On("GetByCustomer", mock.Anything, userID, mock.Anything).
		Return(&domain.Book{ID: uuid.New(), UserID: userID}, nil)
	m.bookRepo.On("AddLog", mock.Anything, userID, mock.Anything).Return(nil)

	invoice, err := svc.Create(context.Background(), userID, service.CreateInvoiceInput{
		InvoiceNumber: 7,
		InvoiceDate:   "2025-02-01",
		CustomerName:  "Walk-in",
		Items: []map[string]json.RawMessage{
			rawItem("Thing", "1", "50", "5", ""),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 7, invoice.InvoiceNumber)
	m.customerRepo.AssertExpectations(t)
	m.bookRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_ProfileIncomplete(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()

	m.profileRepo.On("GetByUser", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), userID, service.CreateInvoiceInput{
		InvoiceDate:  "2025-01-15",
		CustomerName: "Buyer Inc",
		Items: []map[string]json.RawMessage{
			rawItem("Thing", "1", "50", "5", ""),
		},
	})

	assert.ErrorIs(t, err, domain.ErrProfileIncomplete)
}

func TestInvoiceService_Create_NoItems(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()

	m.profileRepo.On("GetByUser", mock.Anything, userID).Return(sellerProfile(userID), nil)

	_, err := svc.Create(context.Background(), userID, service.CreateInvoiceInput{
		InvoiceNumber: 5,
		InvoiceDate:   "2025-01-15",
		CustomerName:  "Buyer Inc",
		Items:         []map[string]json.RawMessage{},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInvoiceData)
}

func TestInvoiceService_Create_BadDate(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()

	m.profileRepo.On("GetByUser", mock.Anything, userID).Return(sellerProfile(userID), nil)

	_, err := svc.Create(context.Background(), userID, service.CreateInvoiceInput{
		InvoiceNumber: 5,
		InvoiceDate:   "15-01-2025",
		CustomerName:  "Buyer Inc",
		Items: []map[string]json.RawMessage{
			rawItem("Thing", "1", "50", "5", ""),
		},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInvoiceData)
}

func TestInvoiceService_View_Success(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()
	invoiceID := uuid.New()
	customerID := uuid.New()

	payload, _ := json.Marshal(map[string]any{
		"invoice_items": []map[string]json.RawMessage{
			rawItem("Steel Rod", "2", "100", "18", "721391"),
		},
	})
	m.invoiceRepo.On("GetByID", mock.Anything, userID, invoiceID).Return(&domain.Invoice{
		ID:            invoiceID,
		UserID:        userID,
		InvoiceNumber: 42,
		InvoiceDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		CustomerID:    &customerID,
		InvoiceJSON:   payload,
	}, nil)
	m.profileRepo.On("GetByUser", mock.Anything, userID).Return(sellerProfile(userID), nil)
	m.customerRepo.On("GetByID", mock.Anything, userID, customerID).Return(&domain.Customer{
		ID:           customerID,
		CustomerName: "Buyer Inc",
		CustomerGST:  "27BBBBB0000B1Z5",
	}, nil)

	view, err := svc.View(context.Background(), userID, invoiceID)
	require.NoError(t, err)

	bd := view.Breakdown
	assert.Equal(t, billing.InvoiceTypeB2B, bd.Classification.InvoiceType)
	assert.Equal(t, billing.TaxModeIntra, bd.Classification.TaxMode)
	assert.Equal(t, "236.00", bd.Totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "18.00", bd.Totals.TotalCGST.StringFixed(2))
	assert.Equal(t, "18.00", bd.Totals.TotalSGST.StringFixed(2))
	assert.Equal(t, "Two Hundred Thirty Six", bd.TotalInWords)
	require.NotNil(t, view.Customer)
	assert.Equal(t, "Buyer Inc", view.Customer.CustomerName)
}

func TestInvoiceService_View_BuyerGSTFallsBackToPayload(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()
	invoiceID := uuid.New()
	customerID := uuid.New()

	payload, _ := json.Marshal(map[string]any{
		"invoice_items": []map[string]json.RawMessage{
			rawItem("Steel Rod", "1", "100", "18", ""),
		},
		"customer_gst": "09CCCCC0000C1Z5",
	})
	m.invoiceRepo.On("GetByID", mock.Anything, userID, invoiceID).Return(&domain.Invoice{
		ID:          invoiceID,
		UserID:      userID,
		CustomerID:  &customerID,
		InvoiceJSON: payload,
	}, nil)
	m.profileRepo.On("GetByUser", mock.Anything, userID).Return(sellerProfile(userID), nil)
	// The linked customer record has no GSTIN; the payload's customer_gst wins.
	m.customerRepo.On("GetByID", mock.Anything, userID, customerID).Return(&domain.Customer{
		ID:           customerID,
		CustomerName: "Buyer Inc",
		CustomerGST:  "",
	}, nil)

	view, err := svc.View(context.Background(), userID, invoiceID)
	require.NoError(t, err)

	assert.Equal(t, billing.InvoiceTypeB2B, view.Breakdown.Classification.InvoiceType)
	assert.Equal(t, billing.TaxModeInter, view.Breakdown.Classification.TaxMode)
	assert.Equal(t, "09CCCCC0000C1Z5", view.Breakdown.Classification.BuyerGST)
	assert.Equal(t, "18.00", view.Breakdown.Totals.TotalIGST.StringFixed(2))
}

func TestInvoiceService_View_MalformedPayload(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()
	invoiceID := uuid.New()

	m.invoiceRepo.On("GetByID", mock.Anything, userID, invoiceID).Return(&domain.Invoice{
		ID:          invoiceID,
		UserID:      userID,
		InvoiceJSON: json.RawMessage(`{not json`),
	}, nil)
	m.profileRepo.On("GetByUser", mock.Anything, userID).Return(sellerProfile(userID), nil)

	view, err := svc.View(context.Background(), userID, invoiceID)
	require.NoError(t, err)

	assert.Empty(t, view.Breakdown.Lines)
	assert.Equal(t, "0.00", view.Breakdown.Totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "Zero", view.Breakdown.TotalInWords)
}

func TestInvoiceService_Delete_WithInventoryRollback(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()
	invoiceID := uuid.New()

	m.inventoryRepo.On("DeleteLogsByInvoice", mock.Anything, userID, invoiceID).Return(nil)
	m.invoiceRepo.On("Delete", mock.Anything, userID, invoiceID).Return(nil)

	err := svc.Delete(context.Background(), userID, invoiceID, service.DeleteInvoiceInput{
		RemoveInventoryEntries: true,
	})

	require.NoError(t, err)
	m.inventoryRepo.AssertExpectations(t)
	m.invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_Delete_KeepsInventoryByDefault(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()
	invoiceID := uuid.New()

	m.invoiceRepo.On("Delete", mock.Anything, userID, invoiceID).Return(nil)

	err := svc.Delete(context.Background(), userID, invoiceID, service.DeleteInvoiceInput{})

	require.NoError(t, err)
	m.inventoryRepo.AssertNotCalled(t, "DeleteLogsByInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_SendEmail(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()
	invoiceID := uuid.New()

	payload, _ := json.Marshal(map[string]any{
		"invoice_items": []map[string]json.RawMessage{
			rawItem("Steel Rod", "2", "100", "18", ""),
		},
	})
	m.invoiceRepo.On("GetByID", mock.Anything, userID, invoiceID).Return(&domain.Invoice{
		ID:            invoiceID,
		UserID:        userID,
		InvoiceNumber: 42,
		InvoiceJSON:   payload,
	}, nil)
	m.profileRepo.On("GetByUser", mock.Anything, userID).Return(sellerProfile(userID), nil)
	m.sender.On("Send", mock.Anything, "buyer@example.com", "Invoice #42", mock.Anything, mock.Anything).
		Return(nil)

	err := svc.SendEmail(context.Background(), userID, invoiceID, "buyer@example.com")
	require.NoError(t, err)
	m.sender.AssertExpectations(t)
}

func TestInvoiceService_SendEmail_DeliveryFailure(t *testing.T) {
	svc, m := newInvoiceService()
	userID := uuid.New()
	invoiceID := uuid.New()

	m.invoiceRepo.On("GetByID", mock.Anything, userID, invoiceID).Return(&domain.Invoice{
		ID:            invoiceID,
		UserID:        userID,
		InvoiceNumber: 42,
		InvoiceJSON:   json.RawMessage(`{}`),
	}, nil)
	m.profileRepo.On("GetByUser", mock.Anything, userID).Return(sellerProfile(userID), nil)
	m.sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	err := svc.SendEmail(context.Background(), userID, invoiceID, "buyer@example.com")
	assert.ErrorIs(t, err, domain.ErrEmailSendFailed)
}
