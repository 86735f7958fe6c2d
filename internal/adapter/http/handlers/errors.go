package handlers

import (
	"errors"
	"net/http"
	"techflow_billing/internal/domain/validation"
	"techflow_billing/internal/usecase"
	"techflow_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidDate    = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must be formatted as YYYY-MM-DD", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the errors every resource can return: field validation
// and an unreachable storage backend.
func mapCommonError(err error) (*pkg.AppError, bool) {
	if errs, ok := validation.AsErrors(err); ok {
		return pkg.NewDomainError("VALIDATION_FAILED", "Some fields need attention", err, http.StatusUnprocessableEntity).WithDetails(errs), true
	}
	if errors.Is(err, usecase.ErrStorageUnavailable) {
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage is temporarily unavailable", err, http.StatusServiceUnavailable), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
