package routes

import (
	"techflow_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathPayments = "/payments"
)

func addBillingRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.BillingPaymentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("/calculate", invoiceHandler.Calculate)
		invoices.POST("/preview", invoiceHandler.Preview)
		invoices.POST("", invoiceHandler.Finalize)
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/stats", invoiceHandler.Stats)
		invoices.GET("/next-number", invoiceHandler.NextNumber)
		invoices.GET("/:number", invoiceHandler.GetByNumber)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:invoice_number", paymentHandler.PayInvoice)
		payments.GET("/:invoice_number", paymentHandler.GetLatestPayment)
	}
}
