package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/interfaces"
	"fieldservice/internal/usecase/validation"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidID, http.StatusBadRequest, "INVALID_REQUEST"},
		{&validation.Error{Fields: map[string]string{"name": "is required"}}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{fmt.Errorf("wrapped: %w", usecase.ErrVendorNotFound), http.StatusNotFound, "VENDOR_NOT_FOUND"},
		{usecase.ErrInvalidEstimateTransition, http.StatusConflict, "INVALID_STATUS_TRANSITION"},
		{usecase.ErrPaymentExceedsBalance, http.StatusConflict, "PAYMENT_EXCEEDS_BALANCE"},
		{interfaces.ErrDuplicateKey, http.StatusConflict, "ALREADY_EXISTS"},
		{context.DeadlineExceeded, http.StatusGatewayTimeout, "TIMEOUT"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		got := mapError(tc.err)
		if got.HTTPStatus != tc.status || got.Code != tc.code {
			t.Fatalf("%v: expected %d %s, got %d %s", tc.err, tc.status, tc.code, got.HTTPStatus, got.Code)
		}
	}
}
