package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var wordOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountInWords renders the integer part of an amount as title-cased
// Indian-English words with lakh/crore grouping. The fractional part is
// truncated, not rounded: 1500.75 reads "One Thousand Five Hundred".
// Values outside the supported range (negatives) come back as an empty
// string; this function never fails.
func AmountInWords(d decimal.Decimal) string {
	n := d.IntPart()
	if n < 0 {
		return ""
	}
	if n == 0 {
		return "Zero"
	}
	return strings.Join(groupWords(n), " ")
}

// groupWords decomposes n by the Indian scale: crore (1e7), lakh (1e5),
// thousand, hundred, then the last two digits. Amounts of a crore crore and
// beyond recurse on the crore count.
func groupWords(n int64) []string {
	var parts []string

	if c := n / 1_00_00_000; c > 0 {
		parts = append(parts, groupWords(c)...)
		parts = append(parts, "Crore")
		n %= 1_00_00_000
	}
	if l := n / 1_00_000; l > 0 {
		parts = append(parts, twoDigitWords(l)...)
		parts = append(parts, "Lakh")
		n %= 1_00_000
	}
	if t := n / 1_000; t > 0 {
		parts = append(parts, twoDigitWords(t)...)
		parts = append(parts, "Thousand")
		n %= 1_000
	}
	if h := n / 100; h > 0 {
		parts = append(parts, wordOnes[h], "Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, twoDigitWords(n)...)
	}
	return parts
}

func twoDigitWords(n int64) []string {
	if n < 20 {
		return []string{wordOnes[n]}
	}
	if n%10 == 0 {
		return []string{wordTens[n/10]}
	}
	return []string{wordTens[n/10], wordOnes[n%10]}
}
