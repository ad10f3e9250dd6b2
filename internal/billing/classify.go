package billing

import "strings"

// stateCode returns the two-digit GSTIN state prefix and whether it resolved.
// Anything shorter than two characters or with a non-digit in the first two
// positions is unresolvable.
func stateCode(gstin string) (string, bool) {
	if len(gstin) < 2 {
		return "", false
	}
	if gstin[0] < '0' || gstin[0] > '9' || gstin[1] < '0' || gstin[1] > '9' {
		return "", false
	}
	return gstin[:2], true
}

// Classify derives the invoice type and tax mode from the two GSTINs.
// A non-empty buyer GSTIN makes the invoice B2B. The tax mode is INTRA only
// when both state prefixes resolve and match; an absent or malformed GSTIN
// falls through to INTER, i.e. full IGST rather than a guessed split.
func Classify(sellerGST, buyerGST string) Classification {
	sellerGST = strings.TrimSpace(sellerGST)
	buyerGST = strings.TrimSpace(buyerGST)

	invoiceType := InvoiceTypeB2C
	if buyerGST != "" {
		invoiceType = InvoiceTypeB2B
	}

	taxMode := TaxModeInter
	if s, ok := stateCode(sellerGST); ok {
		if b, ok := stateCode(buyerGST); ok && s == b {
			taxMode = TaxModeIntra
		}
	}

	return Classification{
		InvoiceType: invoiceType,
		TaxMode:     taxMode,
		SellerGST:   sellerGST,
		BuyerGST:    buyerGST,
	}
}
