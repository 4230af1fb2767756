package request

// Query-string filters for list endpoints, bound with ShouldBindQuery.

type CustomerListQuery struct {
	Search string `form:"search"`
}

type VendorListQuery struct {
	Trade string `form:"trade"`
}

type JobListQuery struct {
	Status       string `form:"status"`
	TechnicianID string `form:"technician_id"`
	CustomerID   string `form:"customer_id"`
}

type EstimateListQuery struct {
	JobID string `form:"job_id"`
}

type InvoiceListQuery struct {
	Status string `form:"status"`
}

type DepositListQuery struct {
	CustomerID string `form:"customer_id"`
}

type InventoryListQuery struct {
	LowStock bool `form:"low_stock"`
}

type PurchaseOrderListQuery struct {
	OnOrder bool `form:"on_order"`
}
