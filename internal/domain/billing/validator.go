package billing

import (
	"fmt"
	"strings"

	"techflow_billing/internal/domain/validation"
)

// Validate reports every problem with the billable snapshot; it never stops at the
// first one. Line items are numbered from 1 in messages and fields.
func Validate(hourly *HourlyService, items []LineItem) validation.Errors {
	var errs validation.Errors

	if hourly == nil && len(items) == 0 {
		errs = append(errs, validation.Error{
			Field:   "billing",
			Code:    validation.CodeNothingToBill,
			Message: "Nothing to bill: add at least one service or line item",
		})
	}

	if hourly != nil {
		if !hourly.Hours.IsPositive() {
			errs = append(errs, validation.Error{
				Field:   "hourly_service.hours",
				Code:    validation.CodeNotPositive,
				Message: "Hours worked must be greater than 0",
			})
		}
		if !hourly.Rate.IsPositive() {
			errs = append(errs, validation.Error{
				Field:   "hourly_service.rate",
				Code:    validation.CodeNotPositive,
				Message: "Hourly rate must be greater than 0",
			})
		}
	}

	for i, li := range items {
		n := i + 1
		if strings.TrimSpace(li.Description) == "" {
			errs = append(errs, validation.Error{
				Field:   fmt.Sprintf("line_items[%d].description", n),
				Code:    validation.CodeRequired,
				Message: fmt.Sprintf("Line item %d: Description is required", n),
			})
		}
		if !li.Quantity.IsPositive() {
			errs = append(errs, validation.Error{
				Field:   fmt.Sprintf("line_items[%d].quantity", n),
				Code:    validation.CodeNotPositive,
				Message: fmt.Sprintf("Line item %d: Quantity must be greater than 0", n),
			})
		}
		if !li.UnitPrice.IsPositive() {
			errs = append(errs, validation.Error{
				Field:   fmt.Sprintf("line_items[%d].unit_price", n),
				Code:    validation.CodeNotPositive,
				Message: fmt.Sprintf("Line item %d: Price must be greater than 0", n),
			})
		}
	}

	return errs
}
