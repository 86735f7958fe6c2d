package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyMPPayload = errors.New("mp_payload cannot be empty")

// BillingPaymentCreateRequest is the optional envelope for the pay-invoice route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
// A body without the envelope is treated as the payload itself.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ParseBillingPaymentBody extracts the Mercado Pago payload from a request body.
// An empty body yields "{}".
func ParseBillingPaymentBody(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return json.RawMessage(raw), nil
	}
	if _, wrapped := keys["mp_payload"]; !wrapped {
		return json.RawMessage(raw), nil
	}

	var req BillingPaymentCreateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	inner := strings.TrimSpace(string(req.MPPayload))
	if inner == "" || inner == "null" {
		return nil, ErrEmptyMPPayload
	}
	return req.MPPayload, nil
}
