package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
)

func TestDepositUseCase_ApplyToInvoice(t *testing.T) {
	st := newTestStore(t)
	invoices := NewInvoiceUseCase(st.Invoices, st.Customers, st.Jobs, st.TaxZones)
	uc := NewDepositUseCase(st.Deposits, st.Customers, st.Invoices)
	ctx := context.Background()

	inv := createTestInvoice(t, invoices)
	d, err := uc.Create(ctx, CreateDepositCommand{CustomerID: "cust-1", Amount: 100, Method: "check"})
	if err != nil || d.Status != entities.DepositStatusReceived {
		t.Fatalf("create deposit: %+v err=%v", d, err)
	}

	d, inv, err = uc.ApplyToInvoice(ctx, d.ID, inv.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Status != entities.DepositStatusApplied || d.InvoiceID != inv.ID || d.AppliedAt == nil {
		t.Fatalf("unexpected deposit: %+v", d)
	}
	if inv.AmountPaid != 100 || inv.Payments[0].DepositID != d.ID || inv.Status != entities.InvoiceStatusPartiallyPaid {
		t.Fatalf("unexpected invoice: %+v", inv)
	}

	if _, _, err := uc.ApplyToInvoice(ctx, d.ID, inv.ID); !errors.Is(err, ErrDepositAlreadyApplied) {
		t.Fatalf("expected ErrDepositAlreadyApplied, got %v", err)
	}
}

func TestDepositUseCase_ApplyRejections(t *testing.T) {
	st := newTestStore(t)
	mustSeed(t, st.Customers.Seed(entities.Customer{ID: "cust-2", FirstName: "B", LastName: "C", Phone: "1"}))
	invoices := NewInvoiceUseCase(st.Invoices, st.Customers, st.Jobs, st.TaxZones)
	uc := NewDepositUseCase(st.Deposits, st.Customers, st.Invoices)
	ctx := context.Background()
	inv := createTestInvoice(t, invoices)

	other, _ := uc.Create(ctx, CreateDepositCommand{CustomerID: "cust-2", Amount: 10})
	if _, _, err := uc.ApplyToInvoice(ctx, other.ID, inv.ID); !errors.Is(err, ErrDepositCustomerMismatch) {
		t.Fatalf("expected ErrDepositCustomerMismatch, got %v", err)
	}

	big, _ := uc.Create(ctx, CreateDepositCommand{CustomerID: "cust-1", Amount: 1000})
	if _, _, err := uc.ApplyToInvoice(ctx, big.ID, inv.ID); !errors.Is(err, ErrPaymentExceedsBalance) {
		t.Fatalf("expected ErrPaymentExceedsBalance, got %v", err)
	}
	stored, _ := uc.GetByID(ctx, big.ID)
	if stored.Status != entities.DepositStatusReceived {
		t.Fatalf("rejected deposit must stay received, got %s", stored.Status)
	}

	list, _ := uc.List(ctx, "cust-1")
	if len(list) != 1 {
		t.Fatalf("expected 1 deposit for cust-1, got %d", len(list))
	}
}

func TestDepositUseCase_ApplyResumesInterruptedApply(t *testing.T) {
	st := newTestStore(t)
	invoices := NewInvoiceUseCase(st.Invoices, st.Customers, st.Jobs, st.TaxZones)
	uc := NewDepositUseCase(st.Deposits, st.Customers, st.Invoices)
	ctx := context.Background()
	inv := createTestInvoice(t, invoices)

	d, _ := uc.Create(ctx, CreateDepositCommand{CustomerID: "cust-1", Amount: 50})
	if _, _, err := uc.ApplyToInvoice(ctx, d.ID, inv.ID); err != nil {
		t.Fatalf("apply: %v", err)
	}
	// invoice written, deposit write lost
	if _, err := st.Deposits.Update(ctx, d); err != nil {
		t.Fatalf("reset deposit: %v", err)
	}

	d, inv, err := uc.ApplyToInvoice(ctx, d.ID, inv.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Status != entities.DepositStatusApplied {
		t.Fatalf("expected deposit applied, got %s", d.Status)
	}
	if inv.AmountPaid != 50 || len(inv.Payments) != 1 {
		t.Fatalf("deposit counted twice: %+v", inv)
	}
}
