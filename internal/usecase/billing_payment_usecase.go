package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"techflow_billing/internal/config"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/usecase/interfaces"
	"time"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentInvoiceNumber    = errors.New("invalid invoice_number")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvoiceAlreadyPaid             = errors.New("invoice already paid")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IBillingPaymentUseCase takes payments against finalized invoices.
//
// The amount charged always comes from the archived invoice's grand total, never
// from the caller's payload.
type IBillingPaymentUseCase interface {
	Pay(ctx context.Context, invoiceNumber string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo     interfaces.IBillingPaymentRepository
	invoices interfaces.IInvoiceReader
	gateway  interfaces.IPaymentGateway
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, invoices interfaces.IInvoiceReader, gateway interfaces.IPaymentGateway) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, invoices: invoices, gateway: gateway}
}

func (u *BillingPaymentUseCase) Pay(ctx context.Context, invoiceNumber string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	log.Printf("[payment][usecase] pay start raw_invoice_number=%q payload_len=%d", invoiceNumber, len(mpPayload))
	mockMode := config.PaymentGatewayMockEnabled()
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		log.Printf("[payment][usecase] invalid invoice_number (empty)")
		return entities.BillingPayment{}, ErrInvalidPaymentInvoiceNumber
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload invoice_number=%s", invoiceNumber)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured invoice_number=%s", invoiceNumber)
		return entities.BillingPayment{}, errors.New("payment gateway not configured")
	}
	if u.invoices == nil || u.repo == nil {
		log.Printf("[payment][usecase] invoice lookup not configured invoice_number=%s", invoiceNumber)
		return entities.BillingPayment{}, errors.New("invoice lookup not configured")
	}

	inv, err := u.invoices.GetByNumber(ctx, invoiceNumber)
	if err != nil {
		log.Printf("[payment][usecase] failed loading invoice invoice_number=%s err=%v", invoiceNumber, err)
		return entities.BillingPayment{}, err
	}
	invoiceNumber = inv.Number

	existing, err := u.repo.ListByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		log.Printf("[payment][usecase] failed listing payments invoice_number=%s err=%v", invoiceNumber, err)
		return entities.BillingPayment{}, err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusApproved {
			log.Printf("[payment][usecase] invoice already paid invoice_number=%s payment_id=%s", invoiceNumber, p.ID)
			return entities.BillingPayment{}, ErrInvoiceAlreadyPaid
		}
	}

	amount := inv.Totals.GrandTotal.Decimal().InexactFloat64()
	log.Printf("[payment][usecase] invoice loaded invoice_number=%s grand_total=%s", invoiceNumber, inv.Totals.GrandTotal)

	// external_reference lets Mercado Pago events be reconciled to the invoice.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id invoice_number=%s", invoiceNumber)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap, inv.Customer.Email)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer invoice_number=%s", invoiceNumber)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}

		reqMap["external_reference"] = invoiceNumber
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Invoice %s", invoiceNumber)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.Printf("[payment][usecase] payload is not an object invoice_number=%s err=%v", invoiceNumber, err)
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway invoice_number=%s", invoiceNumber)
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(mpPayload, invoiceNumber, amount)
		if err != nil {
			return entities.BillingPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed invoice_number=%s err=%v", invoiceNumber, err)
			return entities.BillingPayment{}, classifyGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway success invoice_number=%s provider_payment_id=%s provider_status=%s", invoiceNumber, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed invoice_number=%s err=%v", invoiceNumber, err)
	}

	p := entities.BillingPayment{
		ID:            providerPaymentID,
		InvoiceNumber: invoiceNumber,
		Amount:        inv.Totals.GrandTotal.String(),
		Date:          time.Now().UTC(),
		Status:        paymentStatusFromProvider(providerStatus),
		MPPayloadRaw:  providerResp,
		MPPayload:     parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed invoice_number=%s payment_id=%s err=%v", invoiceNumber, p.ID, err)
		return entities.BillingPayment{}, err
	}
	log.Printf("[payment][usecase] pay success invoice_number=%s payment_id=%s status=%s", invoiceNumber, created.ID, created.Status)
	return created, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func mockProviderResponse(payload json.RawMessage, invoiceNumber string, amount float64) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	if resp == nil {
		resp = map[string]any{}
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	resp["external_reference"] = invoiceNumber
	resp["transaction_amount"] = amount
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any, customerEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Either payer.id or payer.email identifies the payer. Fill email only when
	// both are missing, preferring the invoice's customer.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(customerEmail); email != "" {
			payer["email"] = email
		} else if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Mercado Pago sandbox test buyer.
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.BillingPayment, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return nil, ErrInvalidPaymentInvoiceNumber
	}
	return u.repo.ListByInvoiceNumber(ctx, invoiceNumber)
}
