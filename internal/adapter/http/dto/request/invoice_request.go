package request

import (
	"errors"
	"fmt"
	"strings"
	"techflow_billing/internal/domain/billing"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/usecase"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

type CustomerDetailsRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type HourlyServiceRequest struct {
	ServiceTypeID string `json:"service_type_id"`
	Description   string `json:"description"`
	Hours         Amount `json:"hours" swaggertype:"string" example:"2"`
	Rate          Amount `json:"rate" swaggertype:"string" example:"80.00"`
}

type LineItemRequest struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    Amount `json:"quantity" swaggertype:"string" example:"3"`
	UnitPrice   Amount `json:"unit_price" swaggertype:"string" example:"$10.00"`
}

// InvoiceRequest is the invoice form. Every field is optional at this layer;
// what is missing or wrong comes back as validation errors, not a 400.
type InvoiceRequest struct {
	Date          string                 `json:"date" example:"2026-10-16"`
	Customer      CustomerDetailsRequest `json:"customer"`
	HourlyService *HourlyServiceRequest  `json:"hourly_service"`
	LineItems     []LineItemRequest      `json:"line_items"`
	Notes         string                 `json:"notes"`
}

// ToDraft parses the typed amounts. Unreadable amounts become zero and are listed
// in the returned warnings.
func (r InvoiceRequest) ToDraft(loc *time.Location) (usecase.InvoiceDraft, []string, error) {
	var warnings []string
	draft := usecase.InvoiceDraft{
		Customer: entities.CustomerDetails{
			Name:    r.Customer.Name,
			Company: r.Customer.Company,
			Email:   r.Customer.Email,
			Phone:   r.Customer.Phone,
			Address: r.Customer.Address,
		},
		Notes: r.Notes,
	}

	if d := strings.TrimSpace(r.Date); d != "" {
		if loc == nil {
			loc = time.Local
		}
		t, err := time.ParseInLocation(DateLayout, d, loc)
		if err != nil {
			return usecase.InvoiceDraft{}, nil, ErrInvalidDate
		}
		draft.Date = t
	}

	if h := r.HourlyService; h != nil {
		draft.Hourly = &billing.HourlyService{
			ServiceTypeID: strings.TrimSpace(h.ServiceTypeID),
			Description:   h.Description,
			Hours:         parseQuantity(h.Hours, "Hours", &warnings),
			Rate:          parseMoney(h.Rate, "Hourly rate", &warnings),
		}
	}

	for i, li := range r.LineItems {
		row := fmt.Sprintf("Line %d", i+1)
		draft.LineItems = append(draft.LineItems, billing.LineItem{
			ID:          li.ID,
			Description: li.Description,
			Quantity:    parseQuantity(li.Quantity, row+" quantity", &warnings),
			UnitPrice:   parseMoney(li.UnitPrice, row+" unit price", &warnings),
		})
	}
	return draft, warnings, nil
}
