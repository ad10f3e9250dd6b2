package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstbilling/internal/billing"
)

func TestClassify_InvoiceType(t *testing.T) {
	t.Run("buyer_gst_present_is_b2b", func(t *testing.T) {
		cls := billing.Classify("27AAAA0000A1Z5", "27BBBB1111B1Z6")
		assert.Equal(t, billing.InvoiceTypeB2B, cls.InvoiceType)
	})

	t.Run("buyer_gst_empty_is_b2c", func(t *testing.T) {
		cls := billing.Classify("27AAAA0000A1Z5", "")
		assert.Equal(t, billing.InvoiceTypeB2C, cls.InvoiceType)
	})

	t.Run("buyer_gst_whitespace_is_b2c", func(t *testing.T) {
		cls := billing.Classify("27AAAA0000A1Z5", "   ")
		assert.Equal(t, billing.InvoiceTypeB2C, cls.InvoiceType)
	})

	t.Run("inputs_are_trimmed", func(t *testing.T) {
		cls := billing.Classify("  27AAAA0000A1Z5 ", " 27BBBB1111B1Z6\n")
		assert.Equal(t, "27AAAA0000A1Z5", cls.SellerGST)
		assert.Equal(t, "27BBBB1111B1Z6", cls.BuyerGST)
	})
}

func TestClassify_TaxMode(t *testing.T) {
	cases := []struct {
		name      string
		sellerGST string
		buyerGST  string
		want      billing.TaxMode
	}{
		{"same_state_intra", "27AAAA0000A1Z5", "27BBBB1111B1Z6", billing.TaxModeIntra},
		{"different_state_inter", "27AAAA0000A1Z5", "09BBBB1111B1Z6", billing.TaxModeInter},
		{"missing_buyer_inter", "27AAAA0000A1Z5", "", billing.TaxModeInter},
		{"missing_seller_inter", "", "27BBBB1111B1Z6", billing.TaxModeInter},
		{"both_missing_inter", "", "", billing.TaxModeInter},
		{"non_digit_prefix_inter", "XYAAAA0000A1Z5", "XYBBBB1111B1Z6", billing.TaxModeInter},
		{"one_char_gstin_inter", "2", "27BBBB1111B1Z6", billing.TaxModeInter},
		{"mixed_prefix_inter", "2AAAAA0000A1Z5", "27BBBB1111B1Z6", billing.TaxModeInter},
		{"bare_state_codes_intra", "09", "09", billing.TaxModeIntra},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cls := billing.Classify(tc.sellerGST, tc.buyerGST)
			assert.Equal(t, tc.want, cls.TaxMode)
		})
	}
}
