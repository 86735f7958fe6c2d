package request

import (
	"encoding/json"
	"fmt"
	"strings"
	"techflow_billing/internal/domain/money"

	"github.com/shopspring/decimal"
)

// Amount is a numeric form field as the user typed it. It accepts a JSON number or
// string; parsing happens when the request is converted to domain input.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) blank() bool { return strings.TrimSpace(string(a)) == "" }

// parseQuantity reads hours or a quantity. Blank is zero; unreadable or out of range
// input is zero plus a warning naming the field.
func parseQuantity(a Amount, field string, warnings *[]string) decimal.Decimal {
	if a.blank() {
		return decimal.Zero
	}
	d, err := money.ParseDecimal(string(a))
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("%s %q is not a number; treated as 0", field, string(a)))
		return decimal.Zero
	}
	return d
}

// parseMoney reads a price as typed, currency markers and separators included.
func parseMoney(a Amount, field string, warnings *[]string) money.Money {
	if a.blank() {
		return money.Zero
	}
	m, err := money.Parse(string(a))
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("%s %q is not an amount; treated as $0.00", field, string(a)))
		return money.Zero
	}
	return m
}
