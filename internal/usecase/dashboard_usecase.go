package usecase

import (
	"context"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

type DashboardSummary struct {
	Customers             int                        `json:"customers"`
	JobsByStatus          map[entities.JobStatus]int `json:"jobs_by_status"`
	OpenInvoices          int                        `json:"open_invoices"`
	OutstandingBalance    float64                    `json:"outstanding_balance"`
	LowStockItems         int                        `json:"low_stock_items"`
	OnOrderPurchaseOrders int                        `json:"on_order_purchase_orders"`
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	customers      interfaces.ICustomerRepository
	jobs           interfaces.IJobRepository
	invoices       interfaces.IInvoiceRepository
	inventory      interfaces.IInventoryRepository
	purchaseOrders interfaces.IPurchaseOrderRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(customers interfaces.ICustomerRepository, jobs interfaces.IJobRepository, invoices interfaces.IInvoiceRepository, inventory interfaces.IInventoryRepository, purchaseOrders interfaces.IPurchaseOrderRepository) *DashboardUseCase {
	return &DashboardUseCase{customers: customers, jobs: jobs, invoices: invoices, inventory: inventory, purchaseOrders: purchaseOrders}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	customers, err := u.customers.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	invoices, err := u.invoices.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	items, err := u.inventory.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	pos, err := u.purchaseOrders.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	s := DashboardSummary{
		Customers: len(customers),
		JobsByStatus: map[entities.JobStatus]int{
			entities.JobStatusUnscheduled: 0,
			entities.JobStatusScheduled:   0,
			entities.JobStatusInProgress:  0,
			entities.JobStatusComplete:    0,
		},
		OutstandingBalance: outstanding(invoices).InexactFloat64(),
	}
	for _, j := range jobs {
		s.JobsByStatus[j.Status]++
	}
	for _, inv := range invoices {
		if inv.Open() {
			s.OpenInvoices++
		}
	}
	for _, it := range items {
		if it.LowStock() {
			s.LowStockItems++
		}
	}
	for _, po := range pos {
		if po.Status == entities.PurchaseOrderStatusOrdered {
			s.OnOrderPurchaseOrders++
		}
	}
	return s, nil
}
