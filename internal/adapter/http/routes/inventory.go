package routes

import "github.com/gin-gonic/gin"

const (
	PathInventory      = "/inventory"
	PathPurchaseOrders = "/purchase-orders"
	PathDashboard      = "/dashboard"
)

func addInventoryRoutes(rg *gin.RouterGroup, h Handlers) {
	inventory := rg.Group(PathInventory)
	{
		inventory.POST("", h.Inventory.CreateItem)
		inventory.GET("", h.Inventory.ListItems)
		inventory.GET("/:id", h.Inventory.GetItem)
		inventory.POST("/:id/adjust", h.Inventory.AdjustItem)
		inventory.POST("/:id/allocate", h.Inventory.AllocateToTruck)
	}

	pos := rg.Group(PathPurchaseOrders)
	{
		pos.POST("", h.PurchaseOrder.CreatePurchaseOrder)
		pos.GET("", h.PurchaseOrder.ListPurchaseOrders)
		pos.GET("/:id", h.PurchaseOrder.GetPurchaseOrder)
		pos.POST("/:id/receive", h.PurchaseOrder.ReceivePurchaseOrder)
		pos.POST("/:id/cancel", h.PurchaseOrder.CancelPurchaseOrder)
	}

	rg.GET(PathDashboard, h.Dashboard.GetDashboard)
}
