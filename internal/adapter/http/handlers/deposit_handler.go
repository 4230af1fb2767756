package handlers

import (
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DepositHandler struct {
	usecase usecase.IDepositUseCase
}

func NewDepositHandler(uc usecase.IDepositUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	var cmd usecase.CreateDepositCommand
	if !bindJSON(c, &cmd) {
		return
	}
	d, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DepositHandler) ListDeposits(c *gin.Context) {
	var q request.DepositListQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), q.CustomerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *DepositHandler) GetDeposit(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// ApplyDeposit credits a received deposit to one of the customer's invoices.
func (h *DepositHandler) ApplyDeposit(c *gin.Context) {
	var payload request.ApplyDepositRequest
	if !bindJSON(c, &payload) {
		return
	}
	d, inv, err := h.usecase.ApplyToInvoice(c.Request.Context(), c.Param("id"), payload.InvoiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAppliedDeposit(d, inv))
}
