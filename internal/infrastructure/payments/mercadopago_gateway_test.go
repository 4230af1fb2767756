package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false, zap.NewNop())
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	receipt, err := g.Charge(context.Background(), json.RawMessage(`{"transaction_amount":10,"external_reference":"inv-1"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(receipt.ProviderPaymentID, "mock-") || !receipt.Approved() || receipt.StatusDetail != "accredited" {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}

	var body map[string]any
	if err := json.Unmarshal(receipt.Raw, &body); err != nil {
		t.Fatalf("invalid provider response: %v", err)
	}
	if body["external_reference"] != "inv-1" || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected mock response: %v", body)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, err := g.Charge(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
