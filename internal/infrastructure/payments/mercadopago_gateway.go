package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fieldservice/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges invoice balances through Mercado Pago.
// In mock mode no request leaves the process and every payment is approved.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mockMode bool, log *zap.Logger) (*MercadoPagoGateway, error) {
	log = log.With(zap.String("component", "payment_gateway"))
	if mockMode {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if accessToken == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

// Charge sends payload as a Mercado Pago payment request.
func (g *MercadoPagoGateway) Charge(ctx context.Context, payload json.RawMessage) (interfaces.PaymentReceipt, error) {
	if g != nil && g.mockMode {
		return g.mockCharge(payload)
	}
	if g == nil || g.client == nil {
		return interfaces.PaymentReceipt{}, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return interfaces.PaymentReceipt{}, fmt.Errorf("decode payment request: %w", err)
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("charge failed", zap.String("external_reference", req.ExternalReference), zap.Error(err))
		return interfaces.PaymentReceipt{}, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentReceipt{}, err
	}

	receipt := interfaces.PaymentReceipt{
		ProviderPaymentID: strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		Raw:               raw,
	}
	g.log.Info("charge answered",
		zap.String("external_reference", req.ExternalReference),
		zap.String("provider_payment_id", receipt.ProviderPaymentID),
		zap.String("provider_status", receipt.Status),
		zap.String("status_detail", receipt.StatusDetail),
	)
	return receipt, nil
}

// mockCharge approves every request and echoes it back as the provider body.
func (g *MercadoPagoGateway) mockCharge(payload json.RawMessage) (interfaces.PaymentReceipt, error) {
	body := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &body); err != nil || body == nil {
			body = map[string]any{"request_payload_raw": string(payload)}
		}
	}

	now := time.Now().UTC()
	id := "mock-" + strconv.FormatInt(now.UnixNano(), 10)
	body["id"] = id
	body["status"] = "approved"
	body["status_detail"] = "accredited"
	body["date_approved"] = now.Format(time.RFC3339Nano)

	raw, err := json.Marshal(body)
	if err != nil {
		return interfaces.PaymentReceipt{}, err
	}
	g.log.Info("mock charge approved", zap.String("provider_payment_id", id))
	return interfaces.PaymentReceipt{ProviderPaymentID: id, Status: "approved", StatusDetail: "accredited", Raw: raw}, nil
}
