package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"gstbilling/internal/billing"
	"gstbilling/internal/domain"
	"gstbilling/internal/export"
	"gstbilling/internal/port"
)

// ExportFormat selects the register file format.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

// ExportResult is a rendered register file ready to stream to the client.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService renders the invoice register as a downloadable file.
type ReportService interface {
	ExportRegister(ctx context.Context, userID uuid.UUID, format ExportFormat) (*ExportResult, error)
}

type reportService struct {
	invoiceRepo  port.InvoiceRepository
	customerRepo port.CustomerRepository
	profileRepo  port.ProfileRepository
	storage      port.ObjectStorage
}

// NewReportService creates a new ReportService implementation. storage may be
// nil; archiving is then skipped.
func NewReportService(
	invoiceRepo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	profileRepo port.ProfileRepository,
	storage port.ObjectStorage,
) ReportService {
	return &reportService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		profileRepo:  profileRepo,
		storage:      storage,
	}
}

// ExportRegister recomputes every invoice's breakdown and writes the register
// in the requested format. The file is archived to object storage on a best
// effort basis; an archive failure never fails the download.
func (s *reportService) ExportRegister(ctx context.Context, userID uuid.UUID, format ExportFormat) (*ExportResult, error) {
	if format != FormatCSV && format != FormatXLSX {
		return nil, domain.ErrExportFailed
	}

	profile, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.buildRecords(ctx, userID, profile.BusinessGST)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	contentType := ""
	switch format {
	case FormatCSV:
		contentType = "text/csv; charset=utf-8"
		buf.Write(export.BOM)
		w := export.NewWriter(&buf)
		if err := w.WriteHeader(); err != nil {
			return nil, fmt.Errorf("reportService.ExportRegister: %w", err)
		}
		if err := w.WriteRecords(records); err != nil {
			return nil, fmt.Errorf("reportService.ExportRegister: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("reportService.ExportRegister: %w", err)
		}
	case FormatXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		if err := export.WriteWorkbook(&buf, records); err != nil {
			return nil, fmt.Errorf("reportService.ExportRegister: %w", err)
		}
	}

	result := &ExportResult{
		Filename:    export.BuildFilename(profile.BusinessTitle, string(format)),
		ContentType: contentType,
		Data:        buf.Bytes(),
	}
	s.archive(ctx, userID, result)
	return result, nil
}

// buildRecords joins all invoices with their customers and runs each payload
// through the tax pipeline. A payload that fails to decode is logged and
// exported with zero lines.
func (s *reportService) buildRecords(ctx context.Context, userID uuid.UUID, sellerGST string) ([]export.Record, error) {
	invoices, err := s.invoiceRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*domain.Customer, len(customers))
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}

	records := make([]export.Record, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]

		name := ""
		buyerGST := ""
		if inv.CustomerID != nil {
			if c, ok := byID[*inv.CustomerID]; ok {
				name = c.CustomerName
				buyerGST = c.CustomerGST
			}
		}
		if strings.TrimSpace(buyerGST) == "" {
			buyerGST = embeddedBuyerGST(inv.InvoiceJSON)
		}

		items, err := billing.ExtractItems(inv.InvoiceJSON)
		if err != nil {
			log.Printf("register export: invoice #%d: %v", inv.InvoiceNumber, err)
		}

		records = append(records, export.Record{
			Invoice:      inv,
			CustomerName: name,
			Breakdown:    billing.ComputeBreakdown(sellerGST, buyerGST, items),
		})
	}
	return records, nil
}

// archive uploads the export to object storage when configured.
func (s *reportService) archive(ctx context.Context, userID uuid.UUID, result *ExportResult) {
	if s.storage == nil {
		return
	}
	key := fmt.Sprintf("exports/%s/%s", userID, result.Filename)
	if err := s.storage.Upload(ctx, key, result.ContentType, bytes.NewReader(result.Data)); err != nil {
		log.Printf("register export: archiving %s: %v", key, err)
	}
}
