package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gstbilling/internal/billing"
)

func words(s string) string {
	return billing.AmountInWords(decimal.RequireFromString(s))
}

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "Zero"},
		{"single_digit", "7", "Seven"},
		{"teens", "14", "Fourteen"},
		{"round_tens", "90", "Ninety"},
		{"tens_and_ones", "42", "Forty Two"},
		{"hundreds", "305", "Three Hundred Five"},
		{"fifteen_hundred", "1500", "One Thousand Five Hundred"},
		{"thousands", "99999", "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{"lakh", "100000", "One Lakh"},
		{"lakh_mixed", "1234567", "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven"},
		{"crore", "10000000", "One Crore"},
		{"crore_mixed", "98765432", "Nine Crore Eighty Seven Lakh Sixty Five Thousand Four Hundred Thirty Two"},
		{"crore_of_crores", "100000000000000", "One Crore Crore"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, words(tc.amount))
		})
	}
}

func TestAmountInWords_TruncatesFraction(t *testing.T) {
	// the fraction is cut, never rounded up
	assert.Equal(t, "One Thousand Five Hundred", words("1500.75"))
	assert.Equal(t, "Ninety Nine", words("99.99"))
}

func TestAmountInWords_UnsupportedValue(t *testing.T) {
	assert.Equal(t, "", words("-1"))
	assert.Equal(t, "", words("-1500.75"))
}
