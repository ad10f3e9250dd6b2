package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"gstbilling/internal/billing"
	"gstbilling/internal/domain"
	"gstbilling/internal/port"
)

// CreateInvoiceInput is the DTO for invoice submission. Items arrive as loose
// JSON objects; they are normalized once through the billing boundary before
// anything is stored.
type CreateInvoiceInput struct {
	InvoiceNumber   int                          `json:"invoice_number"`
	InvoiceDate     string                       `json:"invoice_date" binding:"required"`
	CustomerName    string                       `json:"customer_name" binding:"required"`
	CustomerAddress string                       `json:"customer_address"`
	CustomerPhone   string                       `json:"customer_phone"`
	CustomerGST     string                       `json:"customer_gst"`
	Items           []map[string]json.RawMessage `json:"invoice_items" binding:"required"`
}

// DeleteInvoiceInput is the DTO for invoice deletion.
type DeleteInvoiceInput struct {
	// RemoveInventoryEntries also rolls back the stock deductions this
	// invoice made.
	RemoveInventoryEntries bool `json:"remove_inventory_entries"`
}

// InvoiceView is the complete render-ready result for one invoice: the stored
// record, the resolved customer (nil for inline B2C buyers), and the computed
// tax breakdown.
type InvoiceView struct {
	Invoice   *domain.Invoice    `json:"invoice"`
	Customer  *domain.Customer   `json:"customer,omitempty"`
	Breakdown *billing.Breakdown `json:"breakdown"`
}

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error)
	NextNumber(ctx context.Context, userID uuid.UUID) (int, error)
	View(ctx context.Context, userID, invoiceID uuid.UUID) (*InvoiceView, error)
	Delete(ctx context.Context, userID, invoiceID uuid.UUID, input DeleteInvoiceInput) error
	SendEmail(ctx context.Context, userID, invoiceID uuid.UUID, to string) error
}

type invoiceService struct {
	invoiceRepo   port.InvoiceRepository
	customerRepo  port.CustomerRepository
	productRepo   port.ProductRepository
	inventoryRepo port.InventoryRepository
	bookRepo      port.BookRepository
	profileRepo   port.ProfileRepository
	sender        port.EmailSender
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	productRepo port.ProductRepository,
	inventoryRepo port.InventoryRepository,
	bookRepo port.BookRepository,
	profileRepo port.ProfileRepository,
	sender port.EmailSender,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:   invoiceRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		bookRepo:      bookRepo,
		profileRepo:   profileRepo,
		sender:        sender,
	}
}

// Create validates the submission, reuses or registers the customer, stores
// the normalized line items as the invoice payload, then applies the ledger
// side effects: product rates refresh, stock deductions, and a book debit for
// the grand total.
func (s *invoiceService) Create(ctx context.Context, userID uuid.UUID, input CreateInvoiceInput) (*domain.Invoice, error) {
	profile, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProfileIncomplete
		}
		return nil, fmt.Errorf("invoiceService.Create: %w", err)
	}
	if profile.BusinessTitle == "" {
		return nil, domain.ErrProfileIncomplete
	}

	invoiceDate, err := time.Parse("2006-01-02", input.InvoiceDate)
	if err != nil {
		return nil, domain.ErrInvalidInvoiceData
	}

	number := input.InvoiceNumber
	if number <= 0 {
		number, err = s.NextNumber(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	payload, err := json.Marshal(map[string]any{
		"invoice_items": input.Items,
		"customer_gst":  input.CustomerGST,
	})
	if err != nil {
		return nil, domain.ErrInvalidInvoiceData
	}
	items, err := billing.ExtractItems(payload)
	if err != nil || len(items) == 0 {
		return nil, domain.ErrInvalidInvoiceData
	}

	customer, err := s.resolveCustomer(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		UserID:        userID,
		InvoiceNumber: number,
		InvoiceDate:   invoiceDate,
		CustomerID:    &customer.ID,
		InvoiceJSON:   payload,
	}
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	s.refreshProducts(ctx, userID, items)
	s.deductInventory(ctx, userID, invoice, items)
	s.debitBook(ctx, userID, invoice, customer, profile.BusinessGST, items)

	return invoice, nil
}

// resolveCustomer reuses an existing customer matching on all identity fields
// or registers a new one (with their book) for this submission.
func (s *invoiceService) resolveCustomer(ctx context.Context, userID uuid.UUID, input CreateInvoiceInput) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindExact(ctx, userID,
		input.CustomerName, input.CustomerAddress, input.CustomerPhone, input.CustomerGST)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("invoiceService.resolveCustomer: %w", err)
	}

	customer = &domain.Customer{
		UserID:          userID,
		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		CustomerPhone:   input.CustomerPhone,
		CustomerGST:     input.CustomerGST,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	book := &domain.Book{UserID: userID, BookName: customer.CustomerName, CustomerID: &customer.ID}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("invoiceService.resolveCustomer: opening book: %w", err)
	}
	return customer, nil
}

// refreshProducts upserts each line's product with its latest rate, tax rate,
// and HSN code. Failures here never fail the invoice; they are logged and the
// invoice stands.
func (s *invoiceService) refreshProducts(ctx context.Context, userID uuid.UUID, items []billing.LineItem) {
	for _, item := range items {
		name := strings.TrimSpace(item.Description)
		if name == "" {
			continue
		}
		product, err := s.productRepo.GetByName(ctx, userID, name)
		if errors.Is(err, domain.ErrNotFound) {
			product = &domain.Product{
				UserID:      userID,
				ProductName: name,
				ProductHSN:  item.HSN,
				ProductRate: item.Rate.String(),
				TaxRate:     item.TaxPercent.String(),
			}
			if err := s.productRepo.Create(ctx, product); err != nil {
				log.Printf("invoice create: registering product %q: %v", name, err)
				continue
			}
			if err := s.inventoryRepo.Create(ctx, &domain.Inventory{UserID: userID, ProductID: product.ID}); err != nil {
				log.Printf("invoice create: creating inventory for %q: %v", name, err)
			}
			continue
		}
		if err != nil {
			log.Printf("invoice create: looking up product %q: %v", name, err)
			continue
		}

		product.ProductHSN = item.HSN
		product.ProductRate = item.Rate.String()
		product.TaxRate = item.TaxPercent.String()
		if err := s.productRepo.Update(ctx, product); err != nil {
			log.Printf("invoice create: updating product %q: %v", name, err)
		}
	}
}

// deductInventory writes one negative stock log per line, linked to the
// invoice. Lines whose product has no inventory record are skipped.
func (s *invoiceService) deductInventory(ctx context.Context, userID uuid.UUID, invoice *domain.Invoice, items []billing.LineItem) {
	for _, item := range items {
		name := strings.TrimSpace(item.Description)
		if name == "" {
			continue
		}
		product, err := s.productRepo.GetByName(ctx, userID, name)
		if err != nil {
			continue
		}
		logEntry := &domain.InventoryLog{
			UserID:    userID,
			ProductID: product.ID,
			Change:    -item.Qty.IntPart(),
			Note:      fmt.Sprintf("invoice #%d", invoice.InvoiceNumber),
			InvoiceID: &invoice.ID,
		}
		if err := s.inventoryRepo.AddLog(ctx, logEntry); err != nil {
			log.Printf("invoice create: deducting stock for %q: %v", name, err)
		}
	}
}

// debitBook debits the customer's book by the invoice grand total.
func (s *invoiceService) debitBook(ctx context.Context, userID uuid.UUID, invoice *domain.Invoice, customer *domain.Customer, sellerGST string, items []billing.LineItem) {
	bd := billing.ComputeBreakdown(sellerGST, customer.CustomerGST, items)
	if bd.Totals.GrandTotal.IsZero() {
		return
	}

	book, err := s.bookRepo.GetByCustomer(ctx, userID, customer.ID)
	if err != nil {
		log.Printf("invoice create: book for customer %s: %v", customer.ID, err)
		return
	}
	entry := &domain.BookLog{
		BookID:    book.ID,
		Change:    bd.Totals.GrandTotal.Neg().StringFixed(2),
		Note:      fmt.Sprintf("invoice #%d", invoice.InvoiceNumber),
		InvoiceID: &invoice.ID,
	}
	if err := s.bookRepo.AddLog(ctx, userID, entry); err != nil {
		log.Printf("invoice create: debiting book %s: %v", book.ID, err)
	}
}

func (s *invoiceService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *invoiceService) NextNumber(ctx context.Context, userID uuid.UUID) (int, error) {
	max, err := s.invoiceRepo.MaxNumber(ctx, userID)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// View assembles the inputs for the tax breakdown — seller GSTIN from the
// business profile, buyer GSTIN from the linked customer with the stored
// payload's customer_gst as fallback, line items from the payload — and runs
// the billing pipeline. A payload that fails to decode is logged and rendered
// as zero lines; the view itself never fails once the invoice and profile
// exist.
func (s *invoiceService) View(ctx context.Context, userID, invoiceID uuid.UUID) (*InvoiceView, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var customer *domain.Customer
	buyerGST := ""
	if invoice.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(ctx, userID, *invoice.CustomerID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	if customer != nil && strings.TrimSpace(customer.CustomerGST) != "" {
		buyerGST = customer.CustomerGST
	} else {
		buyerGST = embeddedBuyerGST(invoice.InvoiceJSON)
	}

	items, err := billing.ExtractItems(invoice.InvoiceJSON)
	if err != nil {
		log.Printf("invoice view %s: %v", invoice.ID, err)
	}

	return &InvoiceView{
		Invoice:   invoice,
		Customer:  customer,
		Breakdown: billing.ComputeBreakdown(profile.BusinessGST, buyerGST, items),
	}, nil
}

// embeddedBuyerGST reads the customer_gst fallback field from the stored
// payload; any decode problem just means no GSTIN.
func embeddedBuyerGST(raw json.RawMessage) string {
	var env struct {
		CustomerGST string `json:"customer_gst"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.CustomerGST
}

func (s *invoiceService) Delete(ctx context.Context, userID, invoiceID uuid.UUID, input DeleteInvoiceInput) error {
	if input.RemoveInventoryEntries {
		if err := s.inventoryRepo.DeleteLogsByInvoice(ctx, userID, invoiceID); err != nil {
			return err
		}
	}
	return s.invoiceRepo.Delete(ctx, userID, invoiceID)
}

// SendEmail mails a plain summary of the invoice breakdown to the given
// address.
func (s *invoiceService) SendEmail(ctx context.Context, userID, invoiceID uuid.UUID, to string) error {
	view, err := s.View(ctx, userID, invoiceID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Invoice #%d", view.Invoice.InvoiceNumber)
	text := invoiceEmailText(view)
	html := "<pre>" + text + "</pre>"

	if err := s.sender.Send(ctx, to, subject, html, text); err != nil {
		log.Printf("invoice email %s: %v", invoiceID, err)
		return domain.ErrEmailSendFailed
	}
	return nil
}

func invoiceEmailText(view *InvoiceView) string {
	t := view.Breakdown.Totals
	var b strings.Builder
	fmt.Fprintf(&b, "Invoice #%d (%s)\n", view.Invoice.InvoiceNumber, view.Invoice.InvoiceDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Type: %s / %s\n\n", view.Breakdown.Classification.InvoiceType, view.Breakdown.Classification.TaxMode)
	for _, line := range view.Breakdown.Lines {
		fmt.Fprintf(&b, "%s  %s x %s = %s %s (tax %s)\n",
			line.Description, line.Qty, line.Rate, view.Breakdown.Currency, line.TaxableValue.StringFixed(2), line.TaxValue.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTaxable: %s\nTax: %s (CGST %s / SGST %s / IGST %s)\nGrand total: %s %s\n%s\n",
		t.TotalTaxable.StringFixed(2), t.TotalTax.StringFixed(2),
		t.TotalCGST.StringFixed(2), t.TotalSGST.StringFixed(2), t.TotalIGST.StringFixed(2),
		view.Breakdown.Currency, t.GrandTotal.StringFixed(2), view.Breakdown.TotalInWords)
	return b.String()
}
