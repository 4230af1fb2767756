package handlers

import (
	"context"
	"errors"
	"net/http"

	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/flows"
	"fieldservice/internal/usecase/interfaces"
	"fieldservice/internal/usecase/validation"
	"fieldservice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameters", http.StatusBadRequest)
)

// bindJSON decodes the body into dst and answers 400 on malformed JSON.
// Field rules are enforced by the use cases.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return false
	}
	return true
}

// respondError writes the mapped error body. Server-side failures are also
// attached to the gin context so the request logger records the cause.
func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapError(err error) *pkg.AppError {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return pkg.NewValidationError(verr.Fields, http.StatusBadRequest)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChangeOrderNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_FOUND", "Change order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPurchaseOrderNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_ORDER_NOT_FOUND", "Purchase order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInventoryItemNotFound):
		return pkg.NewDomainErrorSimple("INVENTORY_ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVendorNotFound):
		return pkg.NewDomainErrorSimple("VENDOR_NOT_FOUND", "Vendor not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTaxZoneNotFound):
		return pkg.NewDomainErrorSimple("TAX_ZONE_NOT_FOUND", "Tax zone not found", http.StatusNotFound)
	case errors.Is(err, flows.ErrUnknownFlow):
		return pkg.NewDomainErrorSimple("FLOW_NOT_FOUND", "AI flow not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrInvalidJobTransition),
		errors.Is(err, usecase.ErrInvalidEstimateTransition),
		errors.Is(err, usecase.ErrInvalidChangeOrderTransition),
		errors.Is(err, usecase.ErrInvalidInvoiceTransition),
		errors.Is(err, usecase.ErrInvalidPurchaseOrderTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Operation not allowed in the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentExceedsBalance):
		return pkg.NewDomainErrorSimple("PAYMENT_EXCEEDS_BALANCE", "Payment exceeds the balance due", http.StatusConflict)
	case errors.Is(err, usecase.ErrRefundExceedsPaid):
		return pkg.NewDomainErrorSimple("REFUND_EXCEEDS_PAID", "Refund exceeds the amount paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice has no balance due", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough stock on hand", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositAlreadyApplied):
		return pkg.NewDomainErrorSimple("DEPOSIT_ALREADY_APPLIED", "Deposit was already applied", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositCustomerMismatch):
		return pkg.NewDomainErrorSimple("DEPOSIT_CUSTOMER_MISMATCH", "Deposit and invoice belong to different customers", http.StatusConflict)
	case errors.Is(err, interfaces.ErrDuplicateKey):
		return pkg.NewDomainErrorSimple("ALREADY_EXISTS", "Record already exists", http.StatusConflict)

	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusServiceUnavailable)

	case errors.Is(err, flows.ErrSchemaMismatch):
		return pkg.NewDomainError("AI_SCHEMA_MISMATCH", "AI response did not match the expected format", err, http.StatusUnprocessableEntity)
	case errors.Is(err, flows.ErrGenerationFailed):
		return pkg.NewDomainError("AI_PROVIDER_ERROR", "AI provider request failed", err, http.StatusBadGateway)

	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "The request timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// nonNil keeps empty lists encoding as [] instead of null.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
