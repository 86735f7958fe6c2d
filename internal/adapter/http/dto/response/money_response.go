package response

import "techflow_billing/internal/domain/money"

// Amount pairs the canonical 2dp value with its display form.
type Amount struct {
	Value   string `json:"value" example:"214.70"`
	Display string `json:"display" example:"$214.70"`
}

func NewAmount(m money.Money) Amount {
	return Amount{Value: m.String(), Display: money.Format(m)}
}
