package response

import (
	"techflow_billing/internal/domain/entities"
	"time"
)

type BillingPaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Amount        string    `json:"amount"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:     p.ID,
		InvoiceNumber: p.InvoiceNumber,
		Amount:        p.Amount,
		Date:          p.Date,
		Status:        string(p.Status),
		MPPayloadRaw:  string(p.MPPayloadRaw),
		MPPayload:     p.MPPayload,
	}
}

// LatestBillingPayment picks the most recent payment by date.
func LatestBillingPayment(payments []entities.BillingPayment) (entities.BillingPayment, bool) {
	if len(payments) == 0 {
		return entities.BillingPayment{}, false
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, true
}
