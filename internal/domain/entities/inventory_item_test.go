package entities

import "testing"

func TestInventoryItem_Trucks(t *testing.T) {
	item := InventoryItem{QuantityOnHand: 5, ReorderThreshold: 5}
	if !item.LowStock() {
		t.Fatalf("expected low stock at threshold")
	}

	item.AddToTruck("tech-1", 2)
	item.AddToTruck("tech-1", 3)
	item.AddToTruck("tech-2", 1)

	if got := item.TruckQuantity("tech-1"); got != 5 {
		t.Fatalf("expected 5 on tech-1 truck, got %d", got)
	}
	if got := item.TruckQuantity("tech-3"); got != 0 {
		t.Fatalf("expected 0 for unknown truck, got %d", got)
	}
	if got := item.TotalQuantity(); got != 11 {
		t.Fatalf("expected 11 total, got %d", got)
	}
	if len(item.TruckAllocations) != 2 {
		t.Fatalf("expected 2 allocations, got %+v", item.TruckAllocations)
	}
}
