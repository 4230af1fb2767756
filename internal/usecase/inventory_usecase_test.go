package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestInventoryUseCase_CreateAndLowStock(t *testing.T) {
	st := newTestStore(t)
	uc := NewInventoryUseCase(st.Inventory, st.Vendors, st.Technicians)
	ctx := context.Background()

	item, err := uc.Create(ctx, CreateInventoryItemCommand{
		SKU: " fil-16x25 ", Name: "Filter 16x25", UnitCost: 4.2, Price: 15, QuantityOnHand: 40, ReorderThreshold: 10, VendorID: "vend-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.SKU != "FIL-16X25" || item.LowStock() {
		t.Fatalf("unexpected item: %+v", item)
	}

	low, err := uc.ListLowStock(ctx)
	if err != nil || len(low) != 1 || low[0].ID != "item-1" {
		t.Fatalf("expected only item-1 low, got %+v err=%v", low, err)
	}

	if _, err := uc.Create(ctx, CreateInventoryItemCommand{SKU: "X", Name: "X", VendorID: "vend-404"}); !errors.Is(err, ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestInventoryUseCase_Adjust(t *testing.T) {
	st := newTestStore(t)
	uc := NewInventoryUseCase(st.Inventory, st.Vendors, st.Technicians)
	ctx := context.Background()

	item, err := uc.Adjust(ctx, "item-1", AdjustInventoryCommand{Delta: 5})
	if err != nil || item.QuantityOnHand != 7 {
		t.Fatalf("expected 7, got %+v err=%v", item, err)
	}
	if _, err := uc.Adjust(ctx, "item-1", AdjustInventoryCommand{Delta: -8}); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	stored, _ := uc.GetByID(ctx, "item-1")
	if stored.QuantityOnHand != 7 {
		t.Fatalf("rejected adjust must not change stock, got %d", stored.QuantityOnHand)
	}
}

func TestInventoryUseCase_AllocateToTruck(t *testing.T) {
	st := newTestStore(t)
	uc := NewInventoryUseCase(st.Inventory, st.Vendors, st.Technicians)
	ctx := context.Background()

	item, err := uc.AllocateToTruck(ctx, "item-1", AllocateToTruckCommand{TechnicianID: "tech-1", Quantity: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.QuantityOnHand != 0 || item.TruckQuantity("tech-1") != 2 || item.TotalQuantity() != 2 {
		t.Fatalf("unexpected allocation: %+v", item)
	}

	if _, err := uc.AllocateToTruck(ctx, "item-1", AllocateToTruckCommand{TechnicianID: "tech-1", Quantity: 1}); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if _, err := uc.AllocateToTruck(ctx, "item-1", AllocateToTruckCommand{TechnicianID: "tech-9", Quantity: 1}); !errors.Is(err, ErrTechnicianNotFound) {
		t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
	}
}
