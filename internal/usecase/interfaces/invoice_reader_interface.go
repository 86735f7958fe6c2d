package interfaces

import (
	"context"
	"techflow_billing/internal/domain/entities"
)

// IInvoiceReader looks up a finalized invoice by its number.
type IInvoiceReader interface {
	GetByNumber(ctx context.Context, number string) (entities.InvoiceRecord, error)
}
