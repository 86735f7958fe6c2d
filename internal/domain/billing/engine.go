// Package billing computes invoice totals from a snapshot of hourly work and line items,
// and validates that snapshot before totals are treated as final.
//
// Everything here is a pure function of its arguments.
package billing

import (
	"strings"

	"techflow_billing/internal/domain/money"

	"github.com/shopspring/decimal"
)

// TaxRate is the HST rate applied to every invoice subtotal.
var TaxRate = decimal.RequireFromString("0.13")

type HourlyService struct {
	ServiceTypeID string          `json:"service_type_id"`
	Description   string          `json:"description"`
	Hours         decimal.Decimal `json:"hours"`
	Rate          money.Money     `json:"rate"`
}

type LineItem struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   money.Money     `json:"unit_price"`
}

// Valid reports whether the item may contribute to a total.
func (li LineItem) Valid() bool {
	return strings.TrimSpace(li.Description) != "" && li.Quantity.IsPositive() && li.UnitPrice.IsPositive()
}

// Total is the displayed row amount, round(quantity × unitPrice).
func (li LineItem) Total() money.Money {
	return money.Round(money.Multiply(li.UnitPrice, li.Quantity))
}

// Input is the billable snapshot. A nil Hourly means no hourly service was entered.
type Input struct {
	Hourly    *HourlyService
	LineItems []LineItem
}

type InvoiceTotals struct {
	HourlyTotal    money.Money     `json:"hourly_total"`
	LineItemsTotal money.Money     `json:"line_items_total"`
	Subtotal       money.Money     `json:"subtotal"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxAmount      money.Money     `json:"tax_amount"`
	GrandTotal     money.Money     `json:"grand_total"`
}

// ComputeHourlyTotal returns round(hours × rate). ok is false, with a zero total, when
// either factor is not positive.
func ComputeHourlyTotal(hours decimal.Decimal, rate money.Money) (money.Money, bool) {
	if !hours.IsPositive() || !rate.IsPositive() {
		return money.Zero, false
	}
	return money.Round(money.Multiply(rate, hours)), true
}

// ComputeLineItemsTotal sums the totals of valid items. Invalid items are skipped here;
// Validate is what reports them.
func ComputeLineItemsTotal(items []LineItem) money.Money {
	total := money.Zero
	for _, li := range items {
		if !li.Valid() {
			continue
		}
		total = money.Add(total, li.Total())
	}
	return total
}

// ValidLineItems returns the items that contribute to the total, in input order.
func ValidLineItems(items []LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, li := range items {
		if li.Valid() {
			out = append(out, li)
		}
	}
	return out
}

func ComputeInvoiceTotals(in Input) InvoiceTotals {
	hourly := money.Zero
	if in.Hourly != nil {
		hourly, _ = ComputeHourlyTotal(in.Hourly.Hours, in.Hourly.Rate)
	}
	lines := ComputeLineItemsTotal(in.LineItems)
	subtotal := money.Add(hourly, lines)
	tax := money.Round(money.Multiply(subtotal, TaxRate))

	return InvoiceTotals{
		HourlyTotal:    hourly,
		LineItemsTotal: lines,
		Subtotal:       subtotal,
		TaxRate:        TaxRate,
		TaxAmount:      tax,
		GrandTotal:     money.Add(subtotal, tax),
	}
}
