package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"techflow_billing/internal/domain/billing"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/domain/money"
	mock_interfaces "techflow_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func paidInvoice(number, total string) entities.InvoiceRecord {
	return entities.InvoiceRecord{
		Number:   number,
		Customer: entities.CustomerDetails{Name: "Ada Lovelace", Phone: "6475728321"},
		Totals:   billing.InvoiceTotals{GrandTotal: money.MustFromString(total)},
	}
}

func disablePaymentMock(t *testing.T) {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
}

func TestBillingPaymentUseCase_Pay_Validations(t *testing.T) {
	disablePaymentMock(t)

	t.Run("empty invoice number", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil)
		_, err := uc.Pay(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentInvoiceNumber) {
			t.Fatalf("expected ErrInvalidPaymentInvoiceNumber, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil)
		_, err := uc.Pay(context.Background(), "TFS-2026-0001", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil)
		_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
		uc := NewBillingPaymentUseCase(nil, invoices, nil)

		_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{"payment_method_id":"visa"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("invoice lookup not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, nil, gateway)

		_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{"payment_method_id":"visa"}`))
		if err == nil || err.Error() != "invoice lookup not configured" {
			t.Fatalf("expected invoice lookup not configured error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Pay_InvoiceChecks(t *testing.T) {
	disablePaymentMock(t)

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, invoices, gateway)

		invoices.EXPECT().GetByNumber(gomock.Any(), "TFS-2026-0001").Return(entities.InvoiceRecord{}, ErrInvoiceNotFound)

		_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("invoice already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, invoices, gateway)

		invoices.EXPECT().GetByNumber(gomock.Any(), "TFS-2026-0001").Return(paidInvoice("TFS-2026-0001", "214.70"), nil)
		repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0001").Return([]entities.BillingPayment{
			{ID: "p0", Status: entities.PaymentStatusDenied},
			{ID: "p1", Status: entities.PaymentStatusApproved},
		}, nil)

		_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("expected ErrInvoiceAlreadyPaid, got %v", err)
		}
	})

	t.Run("payment listing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, invoices, gateway)

		invoices.EXPECT().GetByNumber(gomock.Any(), "TFS-2026-0001").Return(paidInvoice("TFS-2026-0001", "214.70"), nil)
		repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0001").Return(nil, errors.New("db"))

		_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{"payment_method_id":"visa"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Pay_PayloadValidation(t *testing.T) {
	disablePaymentMock(t)

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, invoices, gateway)

		invoices.EXPECT().GetByNumber(gomock.Any(), "TFS-2026-0001").Return(paidInvoice("TFS-2026-0001", "10.00"), nil)
		repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0001").Return(nil, nil)

		_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer without any fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, invoices, gateway)
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")

		invoices.EXPECT().GetByNumber(gomock.Any(), "TFS-2026-0001").Return(paidInvoice("TFS-2026-0001", "10.00"), nil)
		repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0001").Return(nil, nil)

		_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Pay_GatewayErrorMapping(t *testing.T) {
	disablePaymentMock(t)

	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, invoices, gateway)

			invoices.EXPECT().GetByNumber(gomock.Any(), "TFS-2026-0001").Return(paidInvoice("TFS-2026-0001", "10.00"), nil)
			repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0001").Return(nil, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, invoices, gateway)

		invoices.EXPECT().GetByNumber(gomock.Any(), "TFS-2026-0001").Return(paidInvoice("TFS-2026-0001", "10.00"), nil)
		repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0001").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Pay_SuccessAndStatuses(t *testing.T) {
	disablePaymentMock(t)

	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusDenied, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, invoices, gateway)
			t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
			t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
			t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")

			invoices.EXPECT().GetByNumber(gomock.Any(), "tfs-2026-0007").Return(paidInvoice("TFS-2026-0007", "214.70"), nil)
			repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0007").Return(nil, nil)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "TFS-2026-0007" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Invoice TFS-2026-0007" {
						t.Fatalf("description not set")
					}
					if body["transaction_amount"] != float64(214.7) {
						t.Fatalf("transaction_amount should come from the invoice, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer["email"])
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)

			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingPayment{})).DoAndReturn(
				func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
					if p.ID != "pay-1" || p.InvoiceNumber != "TFS-2026-0007" || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Amount != "214.70" {
						t.Fatalf("expected amount 214.70, got %s", p.Amount)
					}
					if p.Date.IsZero() {
						t.Fatalf("date must be set")
					}
					return p, nil
				},
			)

			res, err := uc.Pay(context.Background(), "tfs-2026-0007", json.RawMessage(`{"payment_method_id":"visa","payer":{"id":"123"},"transaction_amount":1}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("payer email falls back to invoice customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, invoices, gateway)
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")

		inv := paidInvoice("TFS-2026-0002", "50.00")
		inv.Customer.Email = "ada@example.com"
		invoices.EXPECT().GetByNumber(gomock.Any(), "TFS-2026-0002").Return(inv, nil)
		repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0002").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				_ = json.Unmarshal(payload, &body)
				if body["payer"].(map[string]any)["email"] != "ada@example.com" {
					t.Fatalf("expected customer email as payer")
				}
				return "pay-2", "approved", json.RawMessage(`{"id":2}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) { return p, nil },
		)

		if _, err := uc.Pay(context.Background(), "TFS-2026-0002", json.RawMessage(`{"payment_method_id":"visa"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, invoices, gateway)

		invoices.EXPECT().GetByNumber(gomock.Any(), "TFS-2026-0001").Return(paidInvoice("TFS-2026-0001", "11.00"), nil)
		repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0001").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BillingPayment{}, errors.New("db-create"))

		_, err := uc.Pay(context.Background(), "TFS-2026-0001", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Pay_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
	invoices := mock_interfaces.NewMockIInvoiceReader(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewBillingPaymentUseCase(repo, invoices, gateway)

	invoices.EXPECT().GetByNumber(gomock.Any(), "TFS-2026-0003").Return(paidInvoice("TFS-2026-0003", "99.99"), nil)
	repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0003").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			if p.Status != entities.PaymentStatusApproved {
				t.Fatalf("mock payments are approved, got %s", p.Status)
			}
			if p.MPPayload["external_reference"] != "TFS-2026-0003" {
				t.Fatalf("mock response should reference the invoice: %+v", p.MPPayload)
			}
			return p, nil
		},
	)

	if _, err := uc.Pay(context.Background(), "TFS-2026-0003", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBillingPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if err == nil || err.Error() != "invalid payment id" {
			t.Fatalf("expected invalid payment id, got %v", err)
		}
	})

	t.Run("GetByID repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "id-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByInvoiceNumber invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByInvoiceNumber(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentInvoiceNumber) {
			t.Fatalf("expected ErrInvalidPaymentInvoiceNumber, got %v", err)
		}
	})

	t.Run("ListByInvoiceNumber success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil)
		expected := []entities.BillingPayment{{ID: "p1", Date: time.Now()}}
		repo.EXPECT().ListByInvoiceNumber(gomock.Any(), "TFS-2026-0001").Return(expected, nil)

		res, err := uc.ListByInvoiceNumber(context.Background(), " TFS-2026-0001 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestBillingPaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasNonEmptyString", func(t *testing.T) {
		if hasNonEmptyString(map[string]any{}, "x") {
			t.Fatalf("expected false")
		}
		if hasNonEmptyString(map[string]any{"x": 1}, "x") {
			t.Fatalf("expected false for non-string")
		}
		if hasNonEmptyString(map[string]any{"x": "   "}, "x") {
			t.Fatalf("expected false for empty string")
		}
		if !hasNonEmptyString(map[string]any{"x": "ok"}, "x") {
			t.Fatalf("expected true")
		}
	})

	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{}) {
			t.Fatalf("expected false")
		}
		if hasPayer(map[string]any{"payer": "x"}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": nil}) {
			t.Fatalf("expected false for nil id")
		}
	})

	t.Run("ensurePayerDefaults", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		m := map[string]any{}
		ensurePayerDefaults(m, "")
		payer := m["payer"].(map[string]any)
		if payer["type"] != "customer" {
			t.Fatalf("expected type customer")
		}
		if _, ok := payer["email"]; ok {
			t.Fatalf("expected no email without any fallback")
		}

		m2 := map[string]any{"payer": map[string]any{}}
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "custom@test.com")
		ensurePayerDefaults(m2, "")
		if m2["payer"].(map[string]any)["email"] != "custom@test.com" {
			t.Fatalf("expected env email fallback")
		}

		m3 := map[string]any{"payer": map[string]any{}}
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		ensurePayerDefaults(m3, "")
		if m3["payer"].(map[string]any)["email"] != "test_user_br@testuser.com" {
			t.Fatalf("expected sandbox fallback email")
		}

		ensurePayerDefaults(map[string]any{"payer": "invalid"}, "a@b.com")
	})

	t.Run("normalizeSandboxPayerFromUserID", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "APP-123")
		m := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(m)
		if _, ok := m["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map for non TEST token")
		}

		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")
		m2 := map[string]any{"payer": map[string]any{"id": "999"}}
		normalizeSandboxPayerFromUserID(m2)
		if _, ok := m2["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map mismatched id")
		}

		m3 := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(m3)
		payer := m3["payer"].(map[string]any)
		if payer["email"] != "sandbox@test.com" {
			t.Fatalf("expected mapped email")
		}
		if _, ok := payer["id"]; ok {
			t.Fatalf("expected id removed")
		}
	})

	t.Run("paymentStatusFromProvider", func(t *testing.T) {
		if paymentStatusFromProvider(" Approved ") != entities.PaymentStatusApproved {
			t.Fatalf("expected approved")
		}
		if paymentStatusFromProvider("cancelled") != entities.PaymentStatusDenied {
			t.Fatalf("expected denied")
		}
		if paymentStatusFromProvider("") != entities.PaymentStatusPending {
			t.Fatalf("expected pending")
		}
	})

	t.Run("gateway helper classifiers", func(t *testing.T) {
		if isGatewayBadRequest(nil) || isGatewayUnauthorized(nil) || isGatewayInvalidUsers(nil) || isGatewayCustomerNotFound(nil) {
			t.Fatalf("all nil checks should be false")
		}
		if !isGatewayBadRequest(errors.New(`{"error":"bad_request"}`)) {
			t.Fatalf("expected bad request true")
		}
		if !isGatewayUnauthorized(errors.New(`{"status":401}`)) {
			t.Fatalf("expected unauthorized true")
		}
		if !isGatewayInvalidUsers(errors.New(`{"code":2034}`)) {
			t.Fatalf("expected invalid users true")
		}
		if !isGatewayCustomerNotFound(errors.New(`customer not found`)) {
			t.Fatalf("expected customer not found true")
		}
	})
}
