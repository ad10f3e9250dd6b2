package billing

import "github.com/shopspring/decimal"

// Aggregate sums the per-line values into invoice totals. Inputs are already
// 2-decimal values, so the sums are exact; the grand total is still re-rounded
// at this level to reproduce the stored-report behavior byte for byte.
// An empty slice yields all-zero totals.
func Aggregate(lines []LineBreakdown) Totals {
	t := Totals{
		TotalTaxable: decimal.Zero,
		TotalTax:     decimal.Zero,
		TotalCGST:    decimal.Zero,
		TotalSGST:    decimal.Zero,
		TotalIGST:    decimal.Zero,
	}
	for i := range lines {
		t.TotalTaxable = t.TotalTaxable.Add(lines[i].TaxableValue)
		t.TotalTax = t.TotalTax.Add(lines[i].TaxValue)
		t.TotalCGST = t.TotalCGST.Add(lines[i].CGST)
		t.TotalSGST = t.TotalSGST.Add(lines[i].SGST)
		t.TotalIGST = t.TotalIGST.Add(lines[i].IGST)
	}
	t.GrandTotal = round2(t.TotalTaxable.Add(t.TotalTax))
	return t
}
