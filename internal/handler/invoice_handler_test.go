package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbilling/internal/billing"
	"gstbilling/internal/domain"
	"gstbilling/internal/handler"
	"gstbilling/internal/middleware"
	"gstbilling/internal/service"
	"gstbilling/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withUser injects the authenticated user into the context, standing in for
// the JWT middleware.
func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, userID)
		c.Next()
	}
}

func TestInvoiceHandler_View(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)
	userID := uuid.New()
	invoiceID := uuid.New()

	view := &service.InvoiceView{
		Invoice:   &domain.Invoice{ID: invoiceID, InvoiceNumber: 42},
		Breakdown: billing.ComputeBreakdown("27AAAAA0000A1Z5", "27BBBBB0000B1Z5", nil),
	}
	svc.On("View", mock.Anything, userID, invoiceID).Return(view, nil)

	r := gin.New()
	r.GET("/invoices/:id/view", withUser(userID), h.View)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/"+invoiceID.String()+"/view", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Breakdown billing.Breakdown `json:"breakdown"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, billing.InvoiceTypeB2B, resp.Data.Breakdown.Classification.InvoiceType)
	assert.Equal(t, "₹", resp.Data.Breakdown.Currency)
}

func TestInvoiceHandler_View_NotFound(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)
	userID := uuid.New()
	invoiceID := uuid.New()

	svc.On("View", mock.Anything, userID, invoiceID).Return(nil, domain.ErrNotFound)

	r := gin.New()
	r.GET("/invoices/:id/view", withUser(userID), h.View)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/"+invoiceID.String()+"/view", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestInvoiceHandler_View_BadID(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)

	r := gin.New()
	r.GET("/invoices/:id/view", withUser(uuid.New()), h.View)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices/not-a-uuid/view", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "View", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceHandler_Create_DuplicateNumber(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)
	userID := uuid.New()

	svc.On("Create", mock.Anything, userID, mock.Anything).
		Return(nil, domain.ErrDuplicateInvoiceNumber)

	r := gin.New()
	r.POST("/invoices", withUser(userID), h.Create)

	body := `{"invoice_number":7,"invoice_date":"2025-01-15","customer_name":"Buyer Inc","invoice_items":[{"description":"Thing","qty":1,"rate":50,"tax_rate":5}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE_INVOICE_NUMBER")
}

func TestInvoiceHandler_Create_MissingFields(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)

	r := gin.New()
	r.POST("/invoices", withUser(uuid.New()), h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceHandler_List_ClampsPagination(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)
	userID := uuid.New()

	svc.On("List", mock.Anything, userID, 0, 20).Return([]domain.Invoice{}, 0, nil)

	r := gin.New()
	r.GET("/invoices", withUser(userID), h.List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices?offset=-5&limit=1000", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestInvoiceHandler_Unauthenticated(t *testing.T) {
	svc := new(mocks.MockInvoiceService)
	h := handler.NewInvoiceHandler(svc)

	r := gin.New()
	r.GET("/invoices", h.List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
