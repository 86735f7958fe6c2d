package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	request "techflow_billing/internal/adapter/http/dto/request"
	response "techflow_billing/internal/adapter/http/dto/response"
	"techflow_billing/internal/usecase"
	"techflow_billing/pkg"
	"time"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles the invoice calculator, printing and history.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	loc     *time.Location
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, loc *time.Location) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, loc: loc}
}

// Calculate godoc
// @Summary      Recompute invoice totals
// @Description  Always returns totals; problems are listed in errors and do not fail the request.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.InvoiceRequest  true  "Invoice form"
// @Success      200   {object}  response.InvoiceComputationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /invoices/calculate [post]
func (h *InvoiceHandler) Calculate(c *gin.Context) {
	draft, warnings, ok := h.bindDraft(c)
	if !ok {
		return
	}
	comp := h.usecase.Calculate(c.Request.Context(), draft)
	c.JSON(http.StatusOK, response.FromInvoiceComputation(comp, warnings))
}

// Preview godoc
// @Summary      Print preview with the next invoice number
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.InvoiceRequest  true  "Invoice form"
// @Success      200   {object}  response.InvoiceComputationResponse
// @Failure      422   {object}  pkg.HTTPError
// @Router       /invoices/preview [post]
func (h *InvoiceHandler) Preview(c *gin.Context) {
	draft, warnings, ok := h.bindDraft(c)
	if !ok {
		return
	}
	comp, err := h.usecase.Preview(c.Request.Context(), draft)
	if err != nil {
		log.Printf("[invoice][handler] preview refused err=%v", err)
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceComputation(comp, warnings))
}

// Finalize godoc
// @Summary      Number, stamp and archive an invoice
// @Description  Storage problems do not fail the request; they are returned as warnings.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body      request.InvoiceRequest  true  "Invoice form"
// @Success      201   {object}  response.FinalizedInvoiceResponse
// @Failure      422   {object}  pkg.HTTPError
// @Router       /invoices [post]
func (h *InvoiceHandler) Finalize(c *gin.Context) {
	draft, warnings, ok := h.bindDraft(c)
	if !ok {
		return
	}
	fin, err := h.usecase.Finalize(c.Request.Context(), draft)
	if err != nil {
		log.Printf("[invoice][handler] finalize refused err=%v", err)
		writeError(c, mapInvoiceError(err))
		return
	}
	log.Printf("[invoice][handler] finalize success number=%s warnings=%d", fin.Invoice.Number, len(fin.Warnings))
	c.JSON(http.StatusCreated, response.FromFinalizedInvoice(fin, warnings))
}

// List godoc
// @Summary      Recent invoices, or a search when q is set
// @Tags         invoices
// @Produce      json
// @Param        q      query     string  false  "Number, customer name, company or phone"
// @Param        limit  query     int     false  "Page size for recent invoices (default 10)"
// @Success      200    {array}   response.InvoiceResponse
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if q, ok := c.GetQuery("q"); ok {
		items, err := h.usecase.Search(ctx, q)
		if err != nil {
			writeError(c, mapInvoiceError(err))
			return
		}
		c.JSON(http.StatusOK, response.FromInvoiceRecords(items))
		return
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(c, pkg.NewDomainErrorSimple("INVALID_LIMIT", "limit must be a positive integer", http.StatusBadRequest))
			return
		}
		limit = n
	}
	items, err := h.usecase.Recent(ctx, limit)
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceRecords(items))
}

// Stats godoc
// @Summary      Invoice counts and revenue
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  response.InvoiceStatsResponse
// @Router       /invoices/stats [get]
func (h *InvoiceHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceStats(stats))
}

// NextNumber godoc
// @Summary      Number the next finalized invoice will get
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  response.NextNumberResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /invoices/next-number [get]
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	number, err := h.usecase.NextNumber(c.Request.Context())
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.NextNumberResponse{Number: number})
}

// GetByNumber godoc
// @Summary      Archived invoice
// @Tags         invoices
// @Produce      json
// @Param        number  path      string  true  "Invoice number"
// @Success      200     {object}  response.InvoiceResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /invoices/{number} [get]
func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
	inv, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoiceRecord(inv))
}

func (h *InvoiceHandler) bindDraft(c *gin.Context) (usecase.InvoiceDraft, []string, bool) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[invoice][handler] invalid payload err=%v", err)
		writeError(c, errInvalidRequest)
		return usecase.InvoiceDraft{}, nil, false
	}
	draft, warnings, err := payload.ToDraft(h.loc)
	if err != nil {
		writeError(c, errInvalidDate)
		return usecase.InvoiceDraft{}, nil, false
	}
	return draft, warnings, true
}

func mapInvoiceError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceNumber):
		return pkg.NewDomainErrorSimple("INVALID_INVOICE_NUMBER", "Invalid invoice number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptySearchQuery):
		return pkg.NewDomainErrorSimple("EMPTY_SEARCH_QUERY", "Search query cannot be empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
