package request

import (
	"encoding/json"
	"errors"
	"testing"
	"techflow_billing/internal/domain/billing"
	"time"
)

func TestInvoiceRequest_ToDraft(t *testing.T) {
	body := `{
		"date": "2026-10-16",
		"customer": {"name": "Ada", "phone": "6475728321"},
		"hourly_service": {"service_type_id": " remote ", "hours": 2, "rate": "$80.00"},
		"line_items": [
			{"description": "Cable", "quantity": "3", "unit_price": 10},
			{"description": "Adapter", "quantity": "two", "unit_price": "CA$1,250.5"}
		]
	}`
	var r InvoiceRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}

	draft, warnings, err := r.ToDraft(time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !draft.Date.Equal(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", draft.Date)
	}
	if draft.Hourly == nil || draft.Hourly.ServiceTypeID != "remote" || draft.Hourly.Hours.String() != "2" || draft.Hourly.Rate.String() != "80.00" {
		t.Fatalf("unexpected hourly %+v", draft.Hourly)
	}
	if len(draft.LineItems) != 2 || draft.LineItems[0].UnitPrice.String() != "10.00" {
		t.Fatalf("unexpected line items %+v", draft.LineItems)
	}
	if !draft.LineItems[1].Quantity.IsZero() || draft.LineItems[1].UnitPrice.String() != "1250.50" {
		t.Fatalf("unexpected second row %+v", draft.LineItems[1])
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning for the unreadable quantity, got %v", warnings)
	}
}

func TestInvoiceRequest_ToDraftBlankAndBadDate(t *testing.T) {
	draft, warnings, err := InvoiceRequest{}.ToDraft(nil)
	if err != nil || !draft.Date.IsZero() || draft.Hourly != nil || len(warnings) != 0 {
		t.Fatalf("unexpected blank draft %+v warnings=%v err=%v", draft, warnings, err)
	}

	_, _, err = InvoiceRequest{Date: "16/10/2026"}.ToDraft(time.UTC)
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestInvoiceRequest_ToDraftOutOfRangeAmounts(t *testing.T) {
	r := InvoiceRequest{
		HourlyService: &HourlyServiceRequest{Hours: "1e400000000", Rate: "80"},
		LineItems: []LineItemRequest{
			{Description: "Cable", Quantity: "1e400000000", UnitPrice: "10"},
			{Description: "Adapter", Quantity: "1", UnitPrice: "$1e400000000"},
		},
	}

	start := time.Now()
	draft, warnings, err := r.ToDraft(time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !draft.Hourly.Hours.IsZero() || !draft.LineItems[0].Quantity.IsZero() || !draft.LineItems[1].UnitPrice.IsZero() {
		t.Fatalf("expected out of range amounts to become zero, got %+v %+v", draft.Hourly, draft.LineItems)
	}
	if len(warnings) != 3 {
		t.Fatalf("expected three warnings, got %v", warnings)
	}

	totals := billing.ComputeInvoiceTotals(billing.Input{Hourly: draft.Hourly, LineItems: draft.LineItems})
	if totals.GrandTotal.String() != "0.00" {
		t.Fatalf("expected zero total, got %s", totals.GrandTotal)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("parsing and totalling took %v", elapsed)
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var a struct {
		V Amount `json:"v"`
	}
	for in, want := range map[string]Amount{`{"v":1.5}`: "1.5", `{"v":"$2"}`: "$2", `{"v":null}`: ""} {
		if err := json.Unmarshal([]byte(in), &a); err != nil || a.V != want {
			t.Fatalf("%s: expected %q, got %q err=%v", in, want, a.V, err)
		}
	}
	if err := json.Unmarshal([]byte(`{"v":true}`), &a); err == nil {
		t.Fatalf("expected error for boolean")
	}
}

func TestParseBillingPaymentBody(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		got, err := ParseBillingPaymentBody([]byte("  "))
		if err != nil || string(got) != "{}" {
			t.Fatalf("expected {}, got %s err=%v", got, err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := ParseBillingPaymentBody([]byte("{")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bare payload", func(t *testing.T) {
		got, err := ParseBillingPaymentBody([]byte(`{"payment_method_id":"pix"}`))
		if err != nil || string(got) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload %s err=%v", got, err)
		}
	})

	t.Run("wrapped payload", func(t *testing.T) {
		got, err := ParseBillingPaymentBody([]byte(`{"mp_payload":{"payment_method_id":"pix"}}`))
		if err != nil || string(got) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload %s err=%v", got, err)
		}
	})

	t.Run("wrapped null", func(t *testing.T) {
		if _, err := ParseBillingPaymentBody([]byte(`{"mp_payload":null}`)); !errors.Is(err, ErrEmptyMPPayload) {
			t.Fatalf("expected ErrEmptyMPPayload, got %v", err)
		}
	})
}

func TestSelectDateRequest_Parse(t *testing.T) {
	loc := time.FixedZone("EDT", -4*3600)
	got, err := SelectDateRequest{Date: " 2026-10-20 "}.Parse(loc)
	if err != nil || got.Day() != 20 || got.Location() != loc {
		t.Fatalf("unexpected date %v err=%v", got, err)
	}
	if _, err := (SelectDateRequest{Date: "tomorrow"}).Parse(loc); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
