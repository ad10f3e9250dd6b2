package billing

// Recommended HSN digit counts by invoice type.
const (
	hsnDigitsB2B = 6
	hsnDigitsB2C = 4
)

// CheckHSN counts the ASCII digits in an HSN code and flags it when it falls
// short of the recommended length for the invoice type (6 for B2B, 4 for
// B2C). Separators and other non-digit characters are ignored, not counted.
// The flag is advisory; it never blocks creation or viewing.
func CheckHSN(hsn string, t InvoiceType) (warning bool, recommended int) {
	recommended = hsnDigitsB2C
	if t == InvoiceTypeB2B {
		recommended = hsnDigitsB2B
	}

	digits := 0
	for _, ch := range hsn {
		if ch >= '0' && ch <= '9' {
			digits++
		}
	}
	return digits < recommended, recommended
}
