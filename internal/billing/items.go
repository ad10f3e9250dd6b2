package billing

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// payloadEnvelope matches the stored invoice blob. Historical rows keyed the
// line items as "invoice_items", newer ones as "items"; both are read and the
// first non-empty list wins.
type payloadEnvelope struct {
	InvoiceItems []map[string]json.RawMessage `json:"invoice_items"`
	Items        []map[string]json.RawMessage `json:"items"`
}

// ExtractItems decodes the stored invoice payload into normalized line items.
// Defaults are applied here, once, per field: qty 1, rate 0, tax percent 0
// (key "tax_rate"), description and hsn empty. A payload that cannot be
// decoded yields an empty list together with a non-nil error; callers log the
// error and render the invoice with zero lines rather than failing.
func ExtractItems(raw []byte) ([]LineItem, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []LineItem{}, nil
	}

	var env payloadEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return []LineItem{}, fmt.Errorf("billing.ExtractItems: decoding payload: %w", err)
	}

	rows := env.InvoiceItems
	if len(rows) == 0 {
		rows = env.Items
	}

	items := make([]LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, LineItem{
			Description: stringField(row, "description"),
			Qty:         decimalField(row, "qty", one),
			Rate:        decimalField(row, "rate", decimal.Zero),
			TaxPercent:  decimalField(row, "tax_rate", decimal.Zero),
			HSN:         stringField(row, "hsn"),
		})
	}
	return items, nil
}

// stringField reads a string value, tolerating absence, null, and non-string
// JSON (which is kept in its raw text form).
func stringField(row map[string]json.RawMessage, key string) string {
	raw, ok := row[key]
	if !ok || isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// decimalField parses a numeric field with a declared default. Absent, null,
// empty, zero, and unparseable values all fall back to the default — one bad
// field never fails the invoice. Zero counts as absent to match the stored
// data this replaces, where unset quantities arrived as 0.
func decimalField(row map[string]json.RawMessage, key string, def decimal.Decimal) decimal.Decimal {
	raw, ok := row[key]
	if !ok || isNull(raw) {
		return def
	}

	text := string(bytes.TrimSpace(raw))
	// Strings carry quoted numerics ("12.5"); strip the quotes and parse.
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	if text == "" {
		return def
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return def
	}
	if d.IsZero() {
		return def
	}
	return d
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
