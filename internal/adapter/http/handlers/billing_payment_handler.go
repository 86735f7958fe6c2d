package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	request "techflow_billing/internal/adapter/http/dto/request"
	response "techflow_billing/internal/adapter/http/dto/response"
	"techflow_billing/internal/config"
	"techflow_billing/internal/usecase"
	"techflow_billing/pkg"

	"github.com/gin-gonic/gin"
)

// BillingPaymentHandler handles HTTP requests for invoice payments.
type BillingPaymentHandler struct {
	usecase usecase.IBillingPaymentUseCase
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc}
}

// PayInvoice godoc
// @Summary      Pay a finalized invoice through Mercado Pago
// @Description  The amount charged is the invoice grand total. The body may be the Mercado Pago payload or {"mp_payload": {...}}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        invoice_number  path      string                               true   "Invoice number"
// @Param        body            body      request.BillingPaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200             {object}  response.BillingPaymentResponse
// @Failure      400             {object}  pkg.HTTPError
// @Failure      404             {object}  pkg.HTTPError
// @Failure      409             {object}  pkg.HTTPError
// @Router       /payments/{invoice_number} [post]
func (h *BillingPaymentHandler) PayInvoice(c *gin.Context) {
	invoiceNumber := c.Param("invoice_number")
	log.Printf("[payment][handler] pay start invoice_number=%s", invoiceNumber)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if config.PaymentGatewayMockEnabled() {
			log.Printf("[payment][handler] payload invalid in mock mode; using empty payload invoice_number=%s err=%v", invoiceNumber, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload invoice_number=%s err=%v", invoiceNumber, err)
			writeError(c, errInvalidRequest)
			return
		}
	}

	created, err := h.usecase.Pay(c.Request.Context(), invoiceNumber, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] pay failed invoice_number=%s err=%v", invoiceNumber, err)
		writeError(c, mapBillingPaymentError(err))
		return
	}
	log.Printf("[payment][handler] pay success invoice_number=%s payment_id=%s status=%s", invoiceNumber, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetLatestPayment godoc
// @Summary      Latest payment for an invoice
// @Tags         payments
// @Produce      json
// @Param        invoice_number  path      string  true  "Invoice number"
// @Success      200             {object}  response.BillingPaymentResponse
// @Failure      404             {object}  pkg.HTTPError
// @Router       /payments/{invoice_number} [get]
func (h *BillingPaymentHandler) GetLatestPayment(c *gin.Context) {
	invoiceNumber := c.Param("invoice_number")

	payments, err := h.usecase.ListByInvoiceNumber(c.Request.Context(), invoiceNumber)
	if err != nil {
		log.Printf("[payment][handler] list failed invoice_number=%s err=%v", invoiceNumber, err)
		writeError(c, mapBillingPaymentError(err))
		return
	}

	latest, ok := response.LatestBillingPayment(payments)
	if !ok {
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ParseBillingPaymentBody(raw)
}

func mapBillingPaymentError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInvoiceNumber), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
