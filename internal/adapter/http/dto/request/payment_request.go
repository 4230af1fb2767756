package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrInvalidPaymentBody = errors.New("request body is not valid json")
	ErrEmptyMPPayload     = errors.New("mp_payload cannot be empty")
)

// PaymentCollectRequest is the payload for collecting an invoice balance
// through Mercado Pago.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas. A body without the envelope is treated as the payload itself.
type PaymentCollectRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ResolveMPPayload extracts the provider payload from a raw request body.
// An empty body yields an empty object.
func ResolveMPPayload(raw []byte) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidPaymentBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			wrapped = bytes.TrimSpace(wrapped)
			if len(wrapped) == 0 || string(wrapped) == "null" {
				return nil, ErrEmptyMPPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
