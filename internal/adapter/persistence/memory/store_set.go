package memory

import (
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

// Store groups one Collection per record type.
type Store struct {
	Customers      *Collection[entities.Customer]
	Technicians    *Collection[entities.Technician]
	Jobs           *Collection[entities.Job]
	Estimates      *Collection[entities.Estimate]
	ChangeOrders   *Collection[entities.ChangeOrder]
	Invoices       *Collection[entities.Invoice]
	Deposits       *Collection[entities.Deposit]
	PurchaseOrders *Collection[entities.PurchaseOrder]
	Inventory      *Collection[entities.InventoryItem]
	Vendors        *Collection[entities.Vendor]
	TaxZones       *Collection[entities.TaxZone]
}

var (
	_ interfaces.ICustomerRepository      = (*Collection[entities.Customer])(nil)
	_ interfaces.IInvoiceRepository       = (*Collection[entities.Invoice])(nil)
	_ interfaces.IPurchaseOrderRepository = (*Collection[entities.PurchaseOrder])(nil)
)

func NewStore(latency time.Duration) *Store {
	return &Store{
		Customers:      NewCollection("customers", func(e entities.Customer) string { return e.ID }, latency),
		Technicians:    NewCollection("technicians", func(e entities.Technician) string { return e.ID }, latency),
		Jobs:           NewCollection("jobs", func(e entities.Job) string { return e.ID }, latency),
		Estimates:      NewCollection("estimates", func(e entities.Estimate) string { return e.ID }, latency),
		ChangeOrders:   NewCollection("change_orders", func(e entities.ChangeOrder) string { return e.ID }, latency),
		Invoices:       NewCollection("invoices", func(e entities.Invoice) string { return e.ID }, latency),
		Deposits:       NewCollection("deposits", func(e entities.Deposit) string { return e.ID }, latency),
		PurchaseOrders: NewCollection("purchase_orders", func(e entities.PurchaseOrder) string { return e.ID }, latency),
		Inventory:      NewCollection("inventory", func(e entities.InventoryItem) string { return e.ID }, latency),
		Vendors:        NewCollection("vendors", func(e entities.Vendor) string { return e.ID }, latency),
		TaxZones:       NewCollection("tax_zones", func(e entities.TaxZone) string { return e.ID }, latency),
	}
}
