package response

import (
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/domain/validation"
	"time"
)

type CustomerResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone"`
	PhoneDisplay string    `json:"phone_display"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Company:      c.Company,
		Email:        c.Email,
		Phone:        c.Phone,
		PhoneDisplay: validation.FormatPhone(c.Phone),
		Address:      c.Address,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromCustomers(items []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCustomer(c))
	}
	return out
}
