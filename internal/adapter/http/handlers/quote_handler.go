package handlers

import (
	"errors"
	"log"
	"net/http"
	request "techflow_billing/internal/adapter/http/dto/request"
	response "techflow_billing/internal/adapter/http/dto/response"
	"techflow_billing/internal/usecase"
	"techflow_billing/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves the service catalog and the quote widget.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListServices godoc
// @Summary      List bookable services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  response.ServiceResponse
// @Router       /catalog/services [get]
func (h *QuoteHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalogEntries(h.usecase.Services(c.Request.Context())))
}

// ListHourlyRates godoc
// @Summary      Hourly rates and common invoice descriptions
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.HourlyRatesResponse
// @Router       /catalog/hourly-rates [get]
func (h *QuoteHandler) ListHourlyRates(c *gin.Context) {
	rates, suggestions := h.usecase.HourlyRates(c.Request.Context())
	c.JSON(http.StatusOK, response.FromHourlyRates(rates, suggestions))
}

// CreateQuote godoc
// @Summary      Price a service for an urgency tier
// @Description  Unknown services and tiers are priced with defaults and listed in fallbacks.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.QuoteRequest  true  "Quote input"
// @Success      200   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	est, err := h.usecase.Estimate(c.Request.Context(), payload.ServiceID, payload.Urgency)
	if err != nil {
		log.Printf("[quote][handler] estimate failed service_id=%s err=%v", payload.ServiceID, err)
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(est))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceRequired):
		return pkg.NewDomainErrorSimple("SERVICE_REQUIRED", "service_id is required", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
