package entities

import (
	"time"

	"techflow_billing/internal/domain/billing"
	"techflow_billing/internal/domain/money"
)

// CustomerDetails is the bill-to block printed on an invoice.
type CustomerDetails struct {
	Name    string `json:"name" validate:"required" label:"Customer name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty" validate:"omitempty,contact_email" label:"Customer email"`
	Phone   string `json:"phone" validate:"required,contact_phone" label:"Customer phone"`
	Address string `json:"address,omitempty"`
}

type InvoiceLine struct {
	billing.LineItem
	Total money.Money `json:"total"`
}

// InvoiceRecord is a finalized (printed) invoice as archived.
type InvoiceRecord struct {
	Number    string                 `json:"number"`
	Date      time.Time              `json:"date"`
	DueDate   time.Time              `json:"due_date"`
	Customer  CustomerDetails        `json:"customer"`
	Hourly    *billing.HourlyService `json:"hourly_service,omitempty"`
	LineItems []InvoiceLine          `json:"line_items"`
	Totals    billing.InvoiceTotals  `json:"totals"`
	Notes     string                 `json:"notes,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	PrintedAt time.Time              `json:"printed_at"`
}
