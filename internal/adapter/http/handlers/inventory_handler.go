package handlers

import (
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InventoryHandler handles warehouse stock and truck allocations.
type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var cmd usecase.CreateInventoryItemCommand
	if !bindJSON(c, &cmd) {
		return
	}
	item, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInventoryItem(item))
}

// ListItems godoc
// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Param low_stock query bool false "Only items at or below their reorder threshold"
// @Success 200 {array} response.InventoryItemResponse
// @Router /inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	var q request.InventoryListQuery
	if !bindQuery(c, &q) {
		return
	}
	var (
		list []entities.InventoryItem
		err  error
	)
	if q.LowStock {
		list, err = h.usecase.ListLowStock(c.Request.Context())
	} else {
		list, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromList(list, response.FromInventoryItem))
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

func (h *InventoryHandler) AdjustItem(c *gin.Context) {
	var cmd usecase.AdjustInventoryCommand
	if !bindJSON(c, &cmd) {
		return
	}
	item, err := h.usecase.Adjust(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

func (h *InventoryHandler) AllocateToTruck(c *gin.Context) {
	var cmd usecase.AllocateToTruckCommand
	if !bindJSON(c, &cmd) {
		return
	}
	item, err := h.usecase.AllocateToTruck(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}
