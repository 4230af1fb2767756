package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
)

func createTestInvoice(t *testing.T, uc *InvoiceUseCase) entities.Invoice {
	t.Helper()
	inv, err := uc.Create(context.Background(), CreateInvoiceCommand{
		CustomerID: "cust-1",
		TaxZoneID:  "tz-1",
		LineItems: []LineItemInput{
			{Description: "Condenser fan motor", Quantity: 1, UnitPrice: 300},
			{Description: "Labor", Quantity: 2, UnitPrice: 100},
		},
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	return inv
}

func TestInvoiceUseCase_CreateAppliesTax(t *testing.T) {
	st := newTestStore(t)
	uc := NewInvoiceUseCase(st.Invoices, st.Customers, st.Jobs, st.TaxZones)

	inv := createTestInvoice(t, uc)
	if inv.Subtotal != 500 || inv.TaxRate != 8.25 || inv.Tax != 41.25 || inv.Total != 541.25 {
		t.Fatalf("unexpected amounts: %+v", inv)
	}
	if inv.Status != entities.InvoiceStatusDraft || inv.Number != "INV-1001" {
		t.Fatalf("unexpected status/number: %s %s", inv.Status, inv.Number)
	}

	_, err := uc.Create(context.Background(), CreateInvoiceCommand{
		CustomerID: "cust-1",
		TaxZoneID:  "tz-missing",
		LineItems:  []LineItemInput{{Description: "x", Quantity: 1, UnitPrice: 1}},
	})
	if !errors.Is(err, ErrTaxZoneNotFound) {
		t.Fatalf("expected ErrTaxZoneNotFound, got %v", err)
	}
}

func TestInvoiceUseCase_PaymentsAndRefunds(t *testing.T) {
	st := newTestStore(t)
	uc := NewInvoiceUseCase(st.Invoices, st.Customers, st.Jobs, st.TaxZones)
	ctx := context.Background()
	inv := createTestInvoice(t, uc)

	inv, err := uc.Send(ctx, inv.ID)
	if err != nil || inv.Status != entities.InvoiceStatusSent {
		t.Fatalf("send: %+v err=%v", inv, err)
	}
	if _, err := uc.Send(ctx, inv.ID); !errors.Is(err, ErrInvalidInvoiceTransition) {
		t.Fatalf("expected ErrInvalidInvoiceTransition, got %v", err)
	}

	if _, err := uc.RecordPayment(ctx, inv.ID, RecordPaymentCommand{Amount: 600}); !errors.Is(err, ErrPaymentExceedsBalance) {
		t.Fatalf("expected ErrPaymentExceedsBalance, got %v", err)
	}

	inv, err = uc.RecordPayment(ctx, inv.ID, RecordPaymentCommand{Amount: 200, Method: "card"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPartiallyPaid || inv.AmountPaid != 200 {
		t.Fatalf("unexpected invoice after payment: %+v", inv)
	}

	t.Run("refund above paid is rejected and nothing changes", func(t *testing.T) {
		_, err := uc.Refund(ctx, inv.ID, RefundCommand{Amount: 200.01})
		if !errors.Is(err, ErrRefundExceedsPaid) {
			t.Fatalf("expected ErrRefundExceedsPaid, got %v", err)
		}
		stored, _ := uc.GetByID(ctx, inv.ID)
		if stored.AmountRefunded != 0 || len(stored.Refunds) != 0 || stored.Status != entities.InvoiceStatusPartiallyPaid {
			t.Fatalf("invoice changed after rejected refund: %+v", stored)
		}
	})

	inv, err = uc.Refund(ctx, inv.ID, RefundCommand{Amount: 50, Reason: "goodwill"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.AmountRefunded != 50 || inv.Refundable().InexactFloat64() != 150 {
		t.Fatalf("unexpected refund state: %+v", inv)
	}

	if _, err := uc.Refund(ctx, inv.ID, RefundCommand{Amount: 150.01}); !errors.Is(err, ErrRefundExceedsPaid) {
		t.Fatalf("expected ErrRefundExceedsPaid for the remaining amount, got %v", err)
	}
	inv, err = uc.Refund(ctx, inv.ID, RefundCommand{Amount: 150})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPartiallyPaid || !inv.Open() || inv.BalanceDue().InexactFloat64() != 341.25 {
		t.Fatalf("refunding a partial payment must leave the invoice open, got %+v", inv)
	}

	inv, err = uc.RecordPayment(ctx, inv.ID, RecordPaymentCommand{Amount: 10})
	if err != nil {
		t.Fatalf("payment after refund must be accepted: %v", err)
	}
	if inv.AmountPaid != 210 || inv.BalanceDue().InexactFloat64() != 331.25 {
		t.Fatalf("unexpected invoice after payment: %+v", inv)
	}
}

func TestInvoiceUseCase_RefundPaidInvoice(t *testing.T) {
	st := newTestStore(t)
	uc := NewInvoiceUseCase(st.Invoices, st.Customers, st.Jobs, st.TaxZones)
	ctx := context.Background()
	inv := createTestInvoice(t, uc)

	if _, err := uc.RecordPayment(ctx, inv.ID, RecordPaymentCommand{Amount: 541.25}); err != nil {
		t.Fatalf("pay: %v", err)
	}
	inv, err := uc.Refund(ctx, inv.ID, RefundCommand{Amount: 541.25, Reason: "job cancelled"})
	if err != nil || inv.Status != entities.InvoiceStatusRefunded || inv.Open() {
		t.Fatalf("expected refunded and closed invoice, got %+v err=%v", inv, err)
	}
	if _, err := uc.RecordPayment(ctx, inv.ID, RecordPaymentCommand{Amount: 1}); !errors.Is(err, ErrPaymentExceedsBalance) {
		t.Fatalf("expected ErrPaymentExceedsBalance on a settled invoice, got %v", err)
	}

	list, err := uc.List(ctx, entities.InvoiceStatusRefunded)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected 1 refunded invoice, got %d err=%v", len(list), err)
	}
}

func TestInvoiceUseCase_PayInFull(t *testing.T) {
	st := newTestStore(t)
	uc := NewInvoiceUseCase(st.Invoices, st.Customers, st.Jobs, st.TaxZones)
	inv := createTestInvoice(t, uc)

	inv, err := uc.RecordPayment(context.Background(), inv.ID, RecordPaymentCommand{Amount: 541.25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Status != entities.InvoiceStatusPaid || !inv.BalanceDue().IsZero() || inv.Open() {
		t.Fatalf("expected paid invoice, got %+v", inv)
	}
}
