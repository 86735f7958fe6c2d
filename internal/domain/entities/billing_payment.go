package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment is a payment taken against a finalized invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_number-index): invoice_number
//
// MPPayloadRaw keeps the provider response body as received; MPPayload is the parsed
// form for querying and debugging.
type BillingPayment struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	Amount        string        `json:"amount"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
