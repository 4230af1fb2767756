package response

import "fieldservice/internal/domain/entities"

type InventoryItemResponse struct {
	entities.InventoryItem
	TotalQuantity int  `json:"total_quantity"`
	LowStock      bool `json:"low_stock"`
}

func FromInventoryItem(i entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		InventoryItem: i,
		TotalQuantity: i.TotalQuantity(),
		LowStock:      i.LowStock(),
	}
}
