package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentReceipt is the provider's answer to a charge. Raw keeps the full
// provider response for traceability.
type PaymentReceipt struct {
	ProviderPaymentID string
	Status            string
	StatusDetail      string
	Raw               json.RawMessage
}

func (r PaymentReceipt) Approved() bool {
	return r.Status == "approved"
}

// IPaymentGateway charges an invoice balance through an external provider.
// The payload is the provider request body, already carrying the amount.
type IPaymentGateway interface {
	Charge(ctx context.Context, payload json.RawMessage) (PaymentReceipt, error)
}
