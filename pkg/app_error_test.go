package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	inner := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", inner, http.StatusInternalServerError)

	if !errors.Is(e, inner) {
		t.Fatalf("expected wrapped error to be reachable")
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Fields != nil {
		t.Fatalf("expected no fields, got %+v", body.Fields)
	}
}

func TestNewValidationError(t *testing.T) {
	e := NewValidationError(map[string]string{"rate": "must be a number"}, http.StatusBadRequest)
	if e.HTTPStatus != http.StatusBadRequest || e.Code != "VALIDATION_FAILED" {
		t.Fatalf("unexpected error: %+v", e)
	}
	if e.ToHTTPError().Fields["rate"] != "must be a number" {
		t.Fatalf("expected field message, got %+v", e.ToHTTPError())
	}
	if e.Error() != "VALIDATION_FAILED: One or more fields are invalid" {
		t.Fatalf("unexpected message %q", e.Error())
	}
}
