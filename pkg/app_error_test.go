package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		if e.Error() != "INVALID_REQUEST: Invalid request" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "INVALID_REQUEST" || body.Details != nil {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
	})

	t.Run("details do not leak into the original", func(t *testing.T) {
		base := NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusUnprocessableEntity)
		withDetails := base.WithDetails([]string{"x"})
		if base.Details != nil {
			t.Fatalf("expected base untouched")
		}
		if withDetails.ToHTTPError().Details == nil {
			t.Fatalf("expected details on copy")
		}
	})
}
