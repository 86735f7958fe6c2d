package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"techflow_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges invoices through the Mercado Pago payments API.
// Mock mode is handled by the payment use case, so this type always talks to
// the provider.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] sdk config failed err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] mercado pago client ready")
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] create failed external_reference=%s err=%v", req.ExternalReference, err)
		return "", "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := strconv.Itoa(resp.ID)
	log.Printf("[payment][gateway] created provider_payment_id=%s provider_status=%s external_reference=%s", id, resp.Status, req.ExternalReference)
	return id, resp.Status, raw, nil
}
