package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func openInvoice() entities.Invoice {
	return entities.Invoice{
		ID: "inv-1", Number: "INV-1001", CustomerID: "cust-1",
		Total: 200, AmountPaid: 50, Status: entities.InvoiceStatusPartiallyPaid,
	}
}

func TestPaymentUseCase_CollectPayment_Validations(t *testing.T) {
	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, "", zap.NewNop())
		_, err := uc.CollectPayment(context.Background(), "inv-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("non-object payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, "", zap.NewNop())
		_, err := uc.CollectPayment(context.Background(), "inv-1", json.RawMessage(`[1,2]`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, "", zap.NewNop())
		_, err := uc.CollectPayment(context.Background(), "inv-1", nil)
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Invoice](ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, "", zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.CollectPayment(context.Background(), " inv-1 ", nil)
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Invoice](ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, "", zap.NewNop())

		inv := openInvoice()
		inv.AmountPaid = 200
		inv.Status = entities.InvoiceStatusPaid
		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)

		_, err := uc.CollectPayment(context.Background(), "inv-1", nil)
		if !errors.Is(err, ErrInvoiceAlreadyPaid) {
			t.Fatalf("expected ErrInvoiceAlreadyPaid, got %v", err)
		}
	})
}

func TestPaymentUseCase_CollectPayment_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
		{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
		{"invalid users", errors.New(`{"message":"Invalid users involved","code":2034}`), ErrPaymentGatewayInvalidUsers},
		{"customer not found", errors.New(`{"message":"Customer not found","code":2002}`), ErrPaymentGatewayCustomerNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIRepository[entities.Invoice](ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPaymentUseCase(repo, gateway, "", zap.NewNop())

			repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(openInvoice(), nil)
			gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(interfaces.PaymentReceipt{}, tc.err)

			_, err := uc.CollectPayment(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRepository[entities.Invoice](ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, gateway, "", zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(openInvoice(), nil)
		gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(interfaces.PaymentReceipt{}, errors.New("timeout"))

		_, err := uc.CollectPayment(context.Background(), "inv-1", nil)
		if err == nil || err.Error() != "timeout" {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})
}

func TestPaymentUseCase_CollectPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRepository[entities.Invoice](ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(repo, gateway, "buyer@test.com", zap.NewNop())

	repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(openInvoice(), nil)
	gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (interfaces.PaymentReceipt, error) {
			var m map[string]any
			if err := json.Unmarshal(payload, &m); err != nil {
				t.Fatalf("invalid payload: %v", err)
			}
			if m["transaction_amount"] != 150.0 {
				t.Fatalf("expected balance due as amount, got %v", m["transaction_amount"])
			}
			if m["external_reference"] != "inv-1" || m["description"] != "Invoice INV-1001" {
				t.Fatalf("expected invoice linkage, got %v", m)
			}
			payer, _ := m["payer"].(map[string]any)
			if payer["email"] != "buyer@test.com" || payer["type"] != "customer" {
				t.Fatalf("expected payer defaults, got %v", payer)
			}
			return interfaces.PaymentReceipt{ProviderPaymentID: "mp-77", Status: "approved", Raw: json.RawMessage(`{"id":77}`)}, nil
		},
	)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil },
	)

	res, err := uc.CollectPayment(context.Background(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.InvoiceStatusPaid || res.AmountPaid != 200 {
		t.Fatalf("unexpected invoice: %+v", res)
	}
	if len(res.Payments) != 1 || res.Payments[0].ProviderPaymentID != "mp-77" {
		t.Fatalf("expected provider payment recorded, got %+v", res.Payments)
	}
}

func TestPaymentUseCase_CollectPayment_NotApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRepository[entities.Invoice](ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPaymentUseCase(repo, gateway, "", zap.NewNop())

	repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(openInvoice(), nil)
	gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(interfaces.PaymentReceipt{ProviderPaymentID: "mp-1", Status: "rejected", StatusDetail: "cc_rejected_insufficient_amount"}, nil)

	_, err := uc.CollectPayment(context.Background(), "inv-1", nil)
	if !errors.Is(err, ErrPaymentNotApproved) {
		t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
	}
}

func TestPaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasNonEmptyString", func(t *testing.T) {
		m := map[string]any{"a": " x ", "b": " ", "c": 1}
		if !hasNonEmptyString(m, "a") || hasNonEmptyString(m, "b") || hasNonEmptyString(m, "c") || hasNonEmptyString(m, "d") {
			t.Fatalf("unexpected hasNonEmptyString results")
		}
	})

	t.Run("ensurePayerDefaults keeps payer id", func(t *testing.T) {
		m := map[string]any{"payer": map[string]any{"id": 123}}
		ensurePayerDefaults(m, "fallback@test.com")
		payer := m["payer"].(map[string]any)
		if _, ok := payer["email"]; ok {
			t.Fatalf("email must not be filled when payer.id is set")
		}
		if payer["type"] != "customer" {
			t.Fatalf("expected default type")
		}
	})

	t.Run("ensurePayerDefaults without fallback", func(t *testing.T) {
		m := map[string]any{}
		ensurePayerDefaults(m, "")
		payer := m["payer"].(map[string]any)
		if _, ok := payer["email"]; ok {
			t.Fatalf("unexpected email %v", payer["email"])
		}
	})
}
