package handlers

import (
	"context"
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PurchaseOrderHandler struct {
	usecase usecase.IPurchaseOrderUseCase
}

func NewPurchaseOrderHandler(uc usecase.IPurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{usecase: uc}
}

// CreatePurchaseOrder godoc
// @Summary Order parts from a vendor
// @Description Destination defaults to the warehouse; truck destinations need a technician_id.
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param order body usecase.CreatePurchaseOrderCommand true "Purchase order"
// @Success 201 {object} entities.PurchaseOrder
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /purchase-orders [post]
func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var cmd usecase.CreatePurchaseOrderCommand
	if !bindJSON(c, &cmd) {
		return
	}
	po, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}

func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	var q request.PurchaseOrderListQuery
	if !bindQuery(c, &q) {
		return
	}
	var (
		list []entities.PurchaseOrder
		err  error
	)
	if q.OnOrder {
		list, err = h.usecase.ListOnOrder(c.Request.Context())
	} else {
		list, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	h.withPurchaseOrder(c, h.usecase.GetByID)
}

// ReceivePurchaseOrder godoc
// @Summary Receive an ordered purchase order
// @Description Adds the quantities to warehouse stock or to the technician's truck.
// @Tags purchase-orders
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} entities.PurchaseOrder
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /purchase-orders/{id}/receive [post]
func (h *PurchaseOrderHandler) ReceivePurchaseOrder(c *gin.Context) {
	h.withPurchaseOrder(c, h.usecase.Receive)
}

func (h *PurchaseOrderHandler) CancelPurchaseOrder(c *gin.Context) {
	h.withPurchaseOrder(c, h.usecase.Cancel)
}

func (h *PurchaseOrderHandler) withPurchaseOrder(c *gin.Context, fn func(ctx context.Context, id string) (entities.PurchaseOrder, error)) {
	po, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}
