package billing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)
var two = decimal.NewFromInt(2)

// ComputeLine computes the monetary fields for one line item under the given
// tax mode. Each value is rounded to 2 places as it is produced — rounding is
// never deferred to the aggregate:
//
//	taxable = round2(qty × rate)
//	tax     = round2(taxable × pct / 100)
//
// INTRA splits the tax 50/50 into CGST and SGST, each independently rounded
// from the same half-value; when the tax is an odd number of cents their sum
// can differ from the tax by one cent. That artifact is reproducible and
// accepted. INTER assigns the full tax to IGST.
//
// HSN advisory fields are not set here; see CheckHSN.
func ComputeLine(item LineItem, mode TaxMode) LineBreakdown {
	taxable := round2(item.Qty.Mul(item.Rate))
	tax := round2(taxable.Mul(item.TaxPercent).Div(hundred))

	cgst, sgst, igst := decimal.Zero, decimal.Zero, decimal.Zero
	if mode == TaxModeIntra {
		half := round2(tax.Div(two))
		cgst, sgst = half, half
	} else {
		igst = tax
	}

	return LineBreakdown{
		Description:  item.Description,
		Qty:          item.Qty,
		Rate:         item.Rate,
		TaxPercent:   item.TaxPercent,
		TaxableValue: taxable,
		TaxValue:     tax,
		CGST:         cgst,
		SGST:         sgst,
		IGST:         igst,
		HSN:          item.HSN,
	}
}
