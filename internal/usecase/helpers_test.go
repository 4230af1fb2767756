package usecase

import (
	"testing"
	"time"

	"fieldservice/internal/adapter/persistence/memory"
	"fieldservice/internal/domain/entities"
)

// newTestStore returns an in-memory store with one customer, technician,
// vendor, tax zone and inventory item.
func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	st := memory.NewStore(0)
	now := time.Now().UTC()

	mustSeed(t, st.Customers.Seed(entities.Customer{ID: "cust-1", FirstName: "Ada", LastName: "Lovelace", Phone: "555-0100", CreatedAt: now}))
	mustSeed(t, st.Technicians.Seed(entities.Technician{ID: "tech-1", Name: "Tom", Trade: "hvac", Active: true}))
	mustSeed(t, st.Vendors.Seed(entities.Vendor{ID: "vend-1", Name: "Cool Supply", Trades: []string{"hvac"}}))
	mustSeed(t, st.TaxZones.Seed(entities.TaxZone{ID: "tz-1", Name: "Austin", Rate: 8.25}))
	mustSeed(t, st.Inventory.Seed(entities.InventoryItem{
		ID: "item-1", SKU: "CAP-45", Name: "Capacitor", UnitCost: 12.5, Price: 45,
		QuantityOnHand: 2, ReorderThreshold: 3,
	}))
	return st
}

func mustSeed(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}
