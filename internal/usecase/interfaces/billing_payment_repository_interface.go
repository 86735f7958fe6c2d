package interfaces

import (
	"context"
	"techflow_billing/internal/domain/entities"
)

// IBillingPaymentRepository abstracts persistence for invoice payments.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.BillingPayment, error)
}
