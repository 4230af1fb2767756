package response

import "fieldservice/internal/usecase"

type DashboardResponse struct {
	Customers             int            `json:"customers"`
	JobsByStatus          map[string]int `json:"jobs_by_status"`
	OpenInvoices          int            `json:"open_invoices"`
	OutstandingBalance    float64        `json:"outstanding_balance"`
	LowStockItems         int            `json:"low_stock_items"`
	OnOrderPurchaseOrders int            `json:"on_order_purchase_orders"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	jobs := make(map[string]int, len(s.JobsByStatus))
	for status, n := range s.JobsByStatus {
		jobs[string(status)] = n
	}
	return DashboardResponse{
		Customers:             s.Customers,
		JobsByStatus:          jobs,
		OpenInvoices:          s.OpenInvoices,
		OutstandingBalance:    s.OutstandingBalance,
		LowStockItems:         s.LowStockItems,
		OnOrderPurchaseOrders: s.OnOrderPurchaseOrders,
	}
}
