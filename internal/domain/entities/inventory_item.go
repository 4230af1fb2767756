package entities

import (
	"slices"
	"time"
)

// TruckAllocation is stock carried on a technician's truck.
type TruckAllocation struct {
	TechnicianID string `json:"technician_id"`
	Quantity     int    `json:"quantity"`
}

// InventoryItem is a stocked part. QuantityOnHand is warehouse stock only;
// truck stock lives in TruckAllocations.
type InventoryItem struct {
	ID               string            `json:"id"`
	SKU              string            `json:"sku"`
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	UnitCost         float64           `json:"unit_cost"`
	Price            float64           `json:"price"`
	QuantityOnHand   int               `json:"quantity_on_hand"`
	ReorderThreshold int               `json:"reorder_threshold"`
	TruckAllocations []TruckAllocation `json:"truck_allocations,omitempty"`
	VendorID         string            `json:"vendor_id,omitempty"`
	ReceivedOrders   []string          `json:"received_orders,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (i InventoryItem) LowStock() bool {
	return i.QuantityOnHand <= i.ReorderThreshold
}

func (i InventoryItem) TruckQuantity(technicianID string) int {
	for _, a := range i.TruckAllocations {
		if a.TechnicianID == technicianID {
			return a.Quantity
		}
	}
	return 0
}

// AddToTruck adds qty to the technician's allocation, creating it when missing.
func (i *InventoryItem) AddToTruck(technicianID string, qty int) {
	for idx := range i.TruckAllocations {
		if i.TruckAllocations[idx].TechnicianID == technicianID {
			i.TruckAllocations[idx].Quantity += qty
			return
		}
	}
	i.TruckAllocations = append(i.TruckAllocations, TruckAllocation{TechnicianID: technicianID, Quantity: qty})
}

// ReceivedFrom reports whether stock from the purchase order was already booked.
func (i InventoryItem) ReceivedFrom(purchaseOrderID string) bool {
	return slices.Contains(i.ReceivedOrders, purchaseOrderID)
}

func (i InventoryItem) TotalQuantity() int {
	total := i.QuantityOnHand
	for _, a := range i.TruckAllocations {
		total += a.Quantity
	}
	return total
}
