package entities

import "time"

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusOrdered   PurchaseOrderStatus = "ordered"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

type DestinationType string

const (
	DestinationWarehouse DestinationType = "warehouse"
	DestinationTruck     DestinationType = "truck"
)

// Destination says where received stock lands. TechnicianID is set for trucks.
type Destination struct {
	Type         DestinationType `json:"type"`
	TechnicianID string          `json:"technician_id,omitempty"`
}

type PurchaseOrderItem struct {
	InventoryItemID string  `json:"inventory_item_id"`
	Description     string  `json:"description,omitempty"`
	Quantity        int     `json:"quantity"`
	UnitCost        float64 `json:"unit_cost"`
}

type PurchaseOrder struct {
	ID          string              `json:"id"`
	Number      string              `json:"number"`
	VendorID    string              `json:"vendor_id"`
	Items       []PurchaseOrderItem `json:"items"`
	Total       float64             `json:"total"`
	Destination Destination         `json:"destination"`
	Status      PurchaseOrderStatus `json:"status"`
	OrderedAt   time.Time           `json:"ordered_at"`
	ReceivedAt  *time.Time          `json:"received_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
