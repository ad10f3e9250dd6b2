package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstbilling/internal/billing"
)

func TestCheckHSN(t *testing.T) {
	cases := []struct {
		name        string
		hsn         string
		invoiceType billing.InvoiceType
		wantWarning bool
		wantDigits  int
	}{
		{"b2b_four_digits_warns", "1234", billing.InvoiceTypeB2B, true, 6},
		{"b2b_six_digits_ok", "123456", billing.InvoiceTypeB2B, false, 6},
		{"b2b_eight_digits_ok", "12345678", billing.InvoiceTypeB2B, false, 6},
		{"b2c_four_digits_ok", "1234", billing.InvoiceTypeB2C, false, 4},
		{"b2c_three_digits_warns", "123", billing.InvoiceTypeB2C, true, 4},
		{"empty_code_warns", "", billing.InvoiceTypeB2C, true, 4},
		{"separators_not_counted", "12-34", billing.InvoiceTypeB2C, false, 4},
		{"letters_not_counted", "12AB34", billing.InvoiceTypeB2B, true, 6},
		{"spaced_six_digits_ok", "12 34 56", billing.InvoiceTypeB2B, false, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			warning, recommended := billing.CheckHSN(tc.hsn, tc.invoiceType)
			assert.Equal(t, tc.wantWarning, warning)
			assert.Equal(t, tc.wantDigits, recommended)
		})
	}
}
