package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbilling/internal/billing"
)

// The intra-state reference scenario: same state prefix on both GSTINs, one
// line of 2 × 100 at 18% with a 4-digit HSN on a B2B invoice.
func TestComputeBreakdown_IntraState(t *testing.T) {
	items, err := billing.ExtractItems([]byte(`{"invoice_items":[
		{"description":"widget","qty":2,"rate":100,"tax_rate":18,"hsn":"1234"}
	]}`))
	require.NoError(t, err)

	bd := billing.ComputeBreakdown("27AAAA0000A1Z5", "27BBBB1111B1Z6", items)

	assert.Equal(t, billing.InvoiceTypeB2B, bd.Classification.InvoiceType)
	assert.Equal(t, billing.TaxModeIntra, bd.Classification.TaxMode)

	require.Len(t, bd.Lines, 1)
	line := bd.Lines[0]
	assert.Equal(t, "200.00", line.TaxableValue.StringFixed(2))
	assert.Equal(t, "36.00", line.TaxValue.StringFixed(2))
	assert.Equal(t, "18.00", line.CGST.StringFixed(2))
	assert.Equal(t, "18.00", line.SGST.StringFixed(2))
	assert.Equal(t, "0.00", line.IGST.StringFixed(2))
	assert.True(t, line.HSNWarning)
	assert.Equal(t, 6, line.HSNRecommended)

	assert.Equal(t, "236.00", bd.Totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "Two Hundred Thirty Six", bd.TotalInWords)
	assert.Equal(t, "₹", bd.Currency)
}

// Same item, buyer registered in another state: full IGST, no split.
func TestComputeBreakdown_InterState(t *testing.T) {
	items, err := billing.ExtractItems([]byte(`{"invoice_items":[
		{"description":"widget","qty":2,"rate":100,"tax_rate":18,"hsn":"1234"}
	]}`))
	require.NoError(t, err)

	bd := billing.ComputeBreakdown("27AAAA0000A1Z5", "09BBBB1111B1Z6", items)

	assert.Equal(t, billing.TaxModeInter, bd.Classification.TaxMode)
	require.Len(t, bd.Lines, 1)
	assert.Equal(t, "36.00", bd.Lines[0].IGST.StringFixed(2))
	assert.Equal(t, "0.00", bd.Lines[0].CGST.StringFixed(2))
	assert.Equal(t, "0.00", bd.Lines[0].SGST.StringFixed(2))
	assert.Equal(t, "36.00", bd.Totals.TotalIGST.StringFixed(2))
}

func TestComputeBreakdown_B2C(t *testing.T) {
	items := []billing.LineItem{{Qty: one(), Rate: dec("100"), TaxPercent: dec("5"), HSN: "1234"}}

	bd := billing.ComputeBreakdown("27AAAA0000A1Z5", "", items)

	assert.Equal(t, billing.InvoiceTypeB2C, bd.Classification.InvoiceType)
	assert.Equal(t, billing.TaxModeInter, bd.Classification.TaxMode)
	require.Len(t, bd.Lines, 1)
	assert.False(t, bd.Lines[0].HSNWarning)
	assert.Equal(t, 4, bd.Lines[0].HSNRecommended)
}

func TestComputeBreakdown_NoItems(t *testing.T) {
	bd := billing.ComputeBreakdown("27AAAA0000A1Z5", "27BBBB1111B1Z6", nil)

	assert.Empty(t, bd.Lines)
	assert.Equal(t, "0.00", bd.Totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "Zero", bd.TotalInWords)
}

func TestComputeBreakdown_OrderPreserved(t *testing.T) {
	items, err := billing.ExtractItems([]byte(`{"items":[
		{"description":"first","rate":1},
		{"description":"second","rate":2},
		{"description":"third","rate":3}
	]}`))
	require.NoError(t, err)

	bd := billing.ComputeBreakdown("", "", items)
	require.Len(t, bd.Lines, 3)
	assert.Equal(t, "first", bd.Lines[0].Description)
	assert.Equal(t, "second", bd.Lines[1].Description)
	assert.Equal(t, "third", bd.Lines[2].Description)
}
