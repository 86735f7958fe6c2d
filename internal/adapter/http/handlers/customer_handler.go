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

// CustomerHandler manages saved customers.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// SaveCustomer godoc
// @Summary      Create a customer, or update the one with the same phone
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      request.CustomerRequest  true  "Customer"
// @Success      200   {object}  response.CustomerResponse
// @Failure      422   {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) SaveCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	saved, err := h.usecase.Save(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[customer][handler] save failed err=%v", err)
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(saved))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(items))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	cust, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(cust))
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCustomerError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER_ID", "Invalid customer id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
