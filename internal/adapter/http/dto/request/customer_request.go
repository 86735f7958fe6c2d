package request

import "techflow_billing/internal/domain/entities"

type CustomerRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:    r.Name,
		Company: r.Company,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}
