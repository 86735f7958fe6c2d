package response

import (
	"techflow_billing/internal/domain/billing"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/domain/validation"
	"techflow_billing/internal/usecase"
	"time"
)

const dateLayout = "2006-01-02"

type HourlyServiceResponse struct {
	ServiceTypeID string `json:"service_type_id"`
	Description   string `json:"description"`
	Hours         string `json:"hours"`
	Rate          Amount `json:"rate"`
	Total         Amount `json:"total"`
}

type InvoiceLineResponse struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   Amount `json:"unit_price"`
	Total       Amount `json:"total"`
}

type TotalsResponse struct {
	HourlyTotal    Amount `json:"hourly_total"`
	LineItemsTotal Amount `json:"line_items_total"`
	Subtotal       Amount `json:"subtotal"`
	TaxRate        string `json:"tax_rate"`
	TaxAmount      Amount `json:"tax_amount"`
	GrandTotal     Amount `json:"grand_total"`
}

// InvoiceComputationResponse is returned by calculate and preview. Totals are
// always filled; Valid is false while Errors is not empty.
type InvoiceComputationResponse struct {
	Number        string                   `json:"number,omitempty"`
	Date          string                   `json:"date"`
	DueDate       string                   `json:"due_date"`
	Customer      entities.CustomerDetails `json:"customer"`
	HourlyService *HourlyServiceResponse   `json:"hourly_service,omitempty"`
	LineItems     []InvoiceLineResponse    `json:"line_items"`
	Totals        TotalsResponse           `json:"totals"`
	Notes         string                   `json:"notes,omitempty"`
	Valid         bool                     `json:"valid"`
	Errors        validation.Errors        `json:"errors"`
	Warnings      []string                 `json:"warnings"`
}

type InvoiceResponse struct {
	Number        string                   `json:"number"`
	Date          string                   `json:"date"`
	DueDate       string                   `json:"due_date"`
	Customer      entities.CustomerDetails `json:"customer"`
	HourlyService *HourlyServiceResponse   `json:"hourly_service,omitempty"`
	LineItems     []InvoiceLineResponse    `json:"line_items"`
	Totals        TotalsResponse           `json:"totals"`
	Notes         string                   `json:"notes,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	PrintedAt     time.Time                `json:"printed_at"`
}

type FinalizedInvoiceResponse struct {
	Invoice  InvoiceResponse `json:"invoice"`
	Warnings []string        `json:"warnings"`
}

type InvoiceStatsResponse struct {
	TotalInvoices     int    `json:"total_invoices"`
	TotalRevenue      Amount `json:"total_revenue"`
	ThisYearInvoices  int    `json:"this_year_invoices"`
	ThisYearRevenue   Amount `json:"this_year_revenue"`
	ThisMonthInvoices int    `json:"this_month_invoices"`
	ThisMonthRevenue  Amount `json:"this_month_revenue"`
	AverageInvoice    Amount `json:"average_invoice"`
}

type NextNumberResponse struct {
	Number string `json:"number" example:"TFS-2026-0001"`
}

func FromInvoiceComputation(c usecase.InvoiceComputation, extraWarnings []string) InvoiceComputationResponse {
	warnings := append(append([]string{}, extraWarnings...), c.Warnings...)
	errs := c.Errors
	if errs == nil {
		errs = validation.Errors{}
	}
	return InvoiceComputationResponse{
		Number:        c.Number,
		Date:          formatDate(c.Date),
		DueDate:       formatDate(c.DueDate),
		Customer:      c.Customer,
		HourlyService: fromHourly(c.Hourly),
		LineItems:     fromLines(c.LineItems),
		Totals:        fromTotals(c.Totals),
		Notes:         c.Notes,
		Valid:         c.Valid(),
		Errors:        errs,
		Warnings:      warnings,
	}
}

func FromInvoiceRecord(inv entities.InvoiceRecord) InvoiceResponse {
	return InvoiceResponse{
		Number:        inv.Number,
		Date:          formatDate(inv.Date),
		DueDate:       formatDate(inv.DueDate),
		Customer:      inv.Customer,
		HourlyService: fromHourly(inv.Hourly),
		LineItems:     fromLines(inv.LineItems),
		Totals:        fromTotals(inv.Totals),
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		PrintedAt:     inv.PrintedAt,
	}
}

func FromInvoiceRecords(items []entities.InvoiceRecord) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(items))
	for _, inv := range items {
		out = append(out, FromInvoiceRecord(inv))
	}
	return out
}

func FromFinalizedInvoice(f usecase.FinalizedInvoice, extraWarnings []string) FinalizedInvoiceResponse {
	return FinalizedInvoiceResponse{
		Invoice:  FromInvoiceRecord(f.Invoice),
		Warnings: append(append([]string{}, extraWarnings...), f.Warnings...),
	}
}

func FromInvoiceStats(s usecase.InvoiceStats) InvoiceStatsResponse {
	return InvoiceStatsResponse{
		TotalInvoices:     s.TotalInvoices,
		TotalRevenue:      NewAmount(s.TotalRevenue),
		ThisYearInvoices:  s.ThisYearInvoices,
		ThisYearRevenue:   NewAmount(s.ThisYearRevenue),
		ThisMonthInvoices: s.ThisMonthInvoices,
		ThisMonthRevenue:  NewAmount(s.ThisMonthRevenue),
		AverageInvoice:    NewAmount(s.AverageInvoice),
	}
}

func fromHourly(h *billing.HourlyService) *HourlyServiceResponse {
	if h == nil {
		return nil
	}
	total, _ := billing.ComputeHourlyTotal(h.Hours, h.Rate)
	return &HourlyServiceResponse{
		ServiceTypeID: h.ServiceTypeID,
		Description:   h.Description,
		Hours:         h.Hours.String(),
		Rate:          NewAmount(h.Rate),
		Total:         NewAmount(total),
	}
}

func fromLines(lines []entities.InvoiceLine) []InvoiceLineResponse {
	out := make([]InvoiceLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, InvoiceLineResponse{
			ID:          l.ID,
			Description: l.Description,
			Quantity:    l.Quantity.String(),
			UnitPrice:   NewAmount(l.UnitPrice),
			Total:       NewAmount(l.Total),
		})
	}
	return out
}

func fromTotals(t billing.InvoiceTotals) TotalsResponse {
	return TotalsResponse{
		HourlyTotal:    NewAmount(t.HourlyTotal),
		LineItemsTotal: NewAmount(t.LineItemsTotal),
		Subtotal:       NewAmount(t.Subtotal),
		TaxRate:        t.TaxRate.String(),
		TaxAmount:      NewAmount(t.TaxAmount),
		GrandTotal:     NewAmount(t.GrandTotal),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
