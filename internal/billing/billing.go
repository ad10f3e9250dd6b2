// Package billing computes the GST tax breakdown shown on an invoice: the
// B2B/B2C and intra/inter-state classification, per-line CGST/SGST/IGST
// splits with fixed-point rounding, HSN digit advisories, totals, and the
// grand total in words. Everything here is pure: inputs come from the
// persistence layer, outputs go to rendering, and nothing is cached or
// mutated between invocations.
package billing

import "github.com/shopspring/decimal"

// Currency is attached at render time; it is never part of a computation.
const Currency = "₹"

// InvoiceType distinguishes registered buyers from consumers.
type InvoiceType string

const (
	InvoiceTypeB2B InvoiceType = "B2B"
	InvoiceTypeB2C InvoiceType = "B2C"
)

// TaxMode selects between the CGST/SGST split and full IGST.
type TaxMode string

const (
	TaxModeIntra TaxMode = "INTRA"
	TaxModeInter TaxMode = "INTER"
)

// Classification is the derived transaction class for one invoice.
type Classification struct {
	InvoiceType InvoiceType `json:"invoice_type"`
	TaxMode     TaxMode     `json:"tax_mode"`
	SellerGST   string      `json:"seller_gst"`
	BuyerGST    string      `json:"buyer_gst"`
}

// LineItem is one normalized input row. Construct via ExtractItems (or fill
// directly in tests); defaults are applied at that boundary, so a zero-value
// LineItem is not meaningful.
type LineItem struct {
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	Rate        decimal.Decimal `json:"rate"`
	TaxPercent  decimal.Decimal `json:"tax_rate"`
	HSN         string          `json:"hsn"`
}

// LineBreakdown is the computed output for one line. All monetary fields are
// rounded to 2 decimal places at the point they are produced.
type LineBreakdown struct {
	Description    string          `json:"description"`
	Qty            decimal.Decimal `json:"qty"`
	Rate           decimal.Decimal `json:"rate"`
	TaxPercent     decimal.Decimal `json:"tax_percent"`
	TaxableValue   decimal.Decimal `json:"taxable_value"`
	TaxValue       decimal.Decimal `json:"tax_value"`
	CGST           decimal.Decimal `json:"cgst"`
	SGST           decimal.Decimal `json:"sgst"`
	IGST           decimal.Decimal `json:"igst"`
	HSN            string          `json:"hsn"`
	HSNWarning     bool            `json:"hsn_warning"`
	HSNRecommended int             `json:"hsn_recommended"`
}

// Totals are invoice-level sums of the per-line values.
type Totals struct {
	TotalTaxable decimal.Decimal `json:"total_taxable"`
	TotalTax     decimal.Decimal `json:"total_tax"`
	TotalCGST    decimal.Decimal `json:"total_cgst"`
	TotalSGST    decimal.Decimal `json:"total_sgst"`
	TotalIGST    decimal.Decimal `json:"total_igst"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// Breakdown is the complete result handed to the rendering layer. Lines keep
// the input order.
type Breakdown struct {
	Classification Classification  `json:"classification"`
	Lines          []LineBreakdown `json:"breakdown"`
	Totals         Totals          `json:"totals"`
	TotalInWords   string          `json:"total_in_words"`
	Currency       string          `json:"currency"`
}

// round2 applies the fixed-point rounding used everywhere in this package:
// 2 decimal places, ties rounded half-up.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeBreakdown runs the whole pipeline: classify, compute each line,
// aggregate, render the total in words. It never fails; degenerate inputs
// produce a zeroed but renderable result.
func ComputeBreakdown(sellerGST, buyerGST string, items []LineItem) *Breakdown {
	cls := Classify(sellerGST, buyerGST)

	lines := make([]LineBreakdown, 0, len(items))
	for _, item := range items {
		lb := ComputeLine(item, cls.TaxMode)
		lb.HSNWarning, lb.HSNRecommended = CheckHSN(item.HSN, cls.InvoiceType)
		lines = append(lines, lb)
	}

	totals := Aggregate(lines)

	return &Breakdown{
		Classification: cls,
		Lines:          lines,
		Totals:         totals,
		TotalInWords:   AmountInWords(totals.GrandTotal),
		Currency:       Currency,
	}
}
