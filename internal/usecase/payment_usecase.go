package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrInvoiceAlreadyPaid             = errors.New("invoice has no balance due")
	ErrPaymentNotApproved             = errors.New("payment not approved by provider")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase charges an invoice's balance through the payment provider.
type IPaymentUseCase interface {
	CollectPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error)
}

type PaymentUseCase struct {
	invoices          interfaces.IInvoiceRepository
	gateway           interfaces.IPaymentGateway
	defaultPayerEmail string
	log               *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires the invoice repository and gateway. defaultPayerEmail
// fills payer.email for sandbox charges that carry no payer.
func NewPaymentUseCase(invoices interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, defaultPayerEmail string, log *zap.Logger) *PaymentUseCase {
	return &PaymentUseCase{
		invoices:          invoices,
		gateway:           gateway,
		defaultPayerEmail: strings.TrimSpace(defaultPayerEmail),
		log:               log.With(zap.String("component", "payment")),
	}
}

// CollectPayment sends the provider payload with the invoice balance as the
// amount and records the payment once the provider approves it.
func (u *PaymentUseCase) CollectPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error) {
	log := u.log.With(zap.String("op", "collect"), zap.String("invoice_id", strings.TrimSpace(invoiceID)))
	log.Debug("start", zap.Int("payload_len", len(payload)))

	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Warn("invalid payload", zap.Error(err))
		return entities.Invoice{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.Invoice{}, ErrPaymentGatewayNotConfigured
	}

	inv, err := findByID(ctx, u.invoices, invoiceID, invoiceIDOf, ErrInvoiceNotFound)
	if err != nil {
		return entities.Invoice{}, err
	}
	due := inv.BalanceDue()
	if !due.IsPositive() || inv.Status == entities.InvoiceStatusRefunded {
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}

	ensurePayerDefaults(reqMap, u.defaultPayerEmail)
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.Number)
	}
	// The invoice is the source of truth for the amount.
	reqMap["transaction_amount"] = due.InexactFloat64()

	body, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Invoice{}, err
	}

	receipt, err := u.gateway.Charge(ctx, body)
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		return entities.Invoice{}, classifyGatewayError(err)
	}
	providerPaymentID := receipt.ProviderPaymentID
	log.Info("payment gateway answered", zap.String("provider_payment_id", providerPaymentID), zap.String("provider_status", receipt.Status))
	if !receipt.Approved() {
		return entities.Invoice{}, fmt.Errorf("%w: status %s (%s)", ErrPaymentNotApproved, receipt.Status, receipt.StatusDetail)
	}

	if err := applyPayment(&inv, entities.InvoicePayment{
		ID:                providerPaymentID,
		Amount:            due.InexactFloat64(),
		Method:            "mercadopago",
		ProviderPaymentID: providerPaymentID,
	}); err != nil {
		return entities.Invoice{}, err
	}
	saved, err := saveExisting(ctx, u.invoices, inv, invoiceIDOf, ErrInvoiceNotFound)
	if err != nil {
		log.Error("payment approved but invoice update failed", zap.String("provider_payment_id", providerPaymentID), zap.Error(err))
		return entities.Invoice{}, err
	}
	log.Info("success", zap.String("status", string(saved.Status)))
	return saved, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

func ensurePayerDefaults(m map[string]any, defaultEmail string) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	// Either payer.id or payer.email identifies the payer; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && defaultEmail != "" {
		payer["email"] = defaultEmail
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}
