package entities

import "testing"

func TestInvoice_RecalculateAndStatus(t *testing.T) {
	inv := Invoice{
		LineItems: []LineItem{{Description: "service call", Quantity: 1, UnitPrice: 100}},
		TaxRate:   8.25,
		Status:    InvoiceStatusSent,
	}
	inv.Recalculate()
	if inv.Subtotal != 100 || inv.Tax != 8.25 || inv.Total != 108.25 {
		t.Fatalf("unexpected totals: %+v", inv)
	}

	inv.AmountPaid = 50
	inv.RefreshStatus()
	if inv.Status != InvoiceStatusPartiallyPaid {
		t.Fatalf("expected partially_paid, got %s", inv.Status)
	}
	if !inv.BalanceDue().Equal(Cents(58.25)) {
		t.Fatalf("unexpected balance %s", inv.BalanceDue())
	}

	inv.AmountPaid = 108.25
	inv.RefreshStatus()
	if inv.Status != InvoiceStatusPaid || inv.Open() {
		t.Fatalf("expected paid and closed, got %s", inv.Status)
	}

	inv.AmountRefunded = 108.25
	inv.RefreshStatus()
	if inv.Status != InvoiceStatusRefunded {
		t.Fatalf("expected refunded, got %s", inv.Status)
	}
	if !inv.Refundable().IsZero() {
		t.Fatalf("expected nothing refundable, got %s", inv.Refundable())
	}
}

func TestInvoice_RefundOfPartialPaymentKeepsInvoiceOpen(t *testing.T) {
	inv := Invoice{Total: 541.25, AmountPaid: 100, AmountRefunded: 100, Status: InvoiceStatusPartiallyPaid}
	inv.RefreshStatus()
	if inv.Status != InvoiceStatusPartiallyPaid {
		t.Fatalf("expected partially_paid while money is owed, got %s", inv.Status)
	}
	if !inv.Open() || !inv.BalanceDue().Equal(Cents(441.25)) {
		t.Fatalf("expected open invoice with 441.25 due, got open=%v due=%s", inv.Open(), inv.BalanceDue())
	}
}

func TestInvoice_RefreshStatusKeepsDraft(t *testing.T) {
	inv := Invoice{Status: InvoiceStatusDraft, Total: 10}
	inv.RefreshStatus()
	if inv.Status != InvoiceStatusDraft {
		t.Fatalf("expected draft, got %s", inv.Status)
	}
}
