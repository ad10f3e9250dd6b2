package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gstbilling/internal/billing"
	"gstbilling/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the register header row (15 columns).
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Customer Name",
	"Buyer GSTIN",
	"Invoice Type",
	"Tax Mode",
	"Line Item Count",
	"Taxable Amount",
	"CGST",
	"SGST",
	"IGST",
	"Total Tax",
	"Grand Total",
	"Currency",
	"Amount In Words",
}

// Record is one register row: the stored invoice joined with its computed
// breakdown. Breakdown is never nil; an invoice whose payload failed to
// decode still exports with zero totals.
type Record struct {
	Invoice      *domain.Invoice
	CustomerName string
	Breakdown    *billing.Breakdown
}

// Writer exports invoice register records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the register header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRecords converts a batch of records to CSV rows and writes them.
func (w *Writer) WriteRecords(records []Record) error {
	for i := range records {
		if err := w.csv.Write(recordToRow(&records[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// recordToRow converts a single record to a 15-element string slice.
func recordToRow(rec *Record) []string {
	row := make([]string, len(columns))
	bd := rec.Breakdown

	row[0] = strconv.Itoa(rec.Invoice.InvoiceNumber)
	row[1] = rec.Invoice.InvoiceDate.Format("2006-01-02")
	row[2] = rec.CustomerName
	row[3] = bd.Classification.BuyerGST
	row[4] = string(bd.Classification.InvoiceType)
	row[5] = string(bd.Classification.TaxMode)
	row[6] = strconv.Itoa(len(bd.Lines))
	row[7] = bd.Totals.TotalTaxable.StringFixed(2)
	row[8] = bd.Totals.TotalCGST.StringFixed(2)
	row[9] = bd.Totals.TotalSGST.StringFixed(2)
	row[10] = bd.Totals.TotalIGST.StringFixed(2)
	row[11] = bd.Totals.TotalTax.StringFixed(2)
	row[12] = bd.Totals.GrandTotal.StringFixed(2)
	row[13] = bd.Currency
	row[14] = bd.TotalInWords

	return row
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a business title for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_title}_register_{YYYY-MM-DD}.{ext}
func BuildFilename(title, ext string) string {
	sanitized := SanitizeFilename(title)
	if sanitized == "" {
		sanitized = "invoices"
	}
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_register_%s.%s", sanitized, date, ext)
}
