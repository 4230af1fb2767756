package repository

import (
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

// Tables are named "<prefix><collection>", collections match the memory store.
func newTable[T any](ddb DynamoDBAPI, prefix, collection string, key func(T) string) *DocumentDynamoRepository[T] {
	return NewDocumentDynamoRepository(ddb, prefix+collection, key)
}

// Repositories bundles every repository the use cases need.
type Repositories struct {
	Customers      interfaces.ICustomerRepository
	Technicians    interfaces.ITechnicianRepository
	Jobs           interfaces.IJobRepository
	Estimates      interfaces.IEstimateRepository
	ChangeOrders   interfaces.IChangeOrderRepository
	Invoices       interfaces.IInvoiceRepository
	Deposits       interfaces.IDepositRepository
	PurchaseOrders interfaces.IPurchaseOrderRepository
	Inventory      interfaces.IInventoryRepository
	Vendors        interfaces.IVendorRepository
	TaxZones       interfaces.ITaxZoneRepository
}

func NewDynamoRepositories(ddb DynamoDBAPI, prefix string) Repositories {
	return Repositories{
		Customers:      newTable(ddb, prefix, "customers", func(e entities.Customer) string { return e.ID }),
		Technicians:    newTable(ddb, prefix, "technicians", func(e entities.Technician) string { return e.ID }),
		Jobs:           newTable(ddb, prefix, "jobs", func(e entities.Job) string { return e.ID }),
		Estimates:      newTable(ddb, prefix, "estimates", func(e entities.Estimate) string { return e.ID }),
		ChangeOrders:   newTable(ddb, prefix, "change_orders", func(e entities.ChangeOrder) string { return e.ID }),
		Invoices:       newTable(ddb, prefix, "invoices", func(e entities.Invoice) string { return e.ID }),
		Deposits:       newTable(ddb, prefix, "deposits", func(e entities.Deposit) string { return e.ID }),
		PurchaseOrders: newTable(ddb, prefix, "purchase_orders", func(e entities.PurchaseOrder) string { return e.ID }),
		Inventory:      newTable(ddb, prefix, "inventory", func(e entities.InventoryItem) string { return e.ID }),
		Vendors:        newTable(ddb, prefix, "vendors", func(e entities.Vendor) string { return e.ID }),
		TaxZones:       newTable(ddb, prefix, "tax_zones", func(e entities.TaxZone) string { return e.ID }),
	}
}
