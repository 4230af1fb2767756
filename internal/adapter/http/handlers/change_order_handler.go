package handlers

import (
	"net/http"

	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ChangeOrderHandler struct {
	usecase usecase.IChangeOrderUseCase
}

func NewChangeOrderHandler(uc usecase.IChangeOrderUseCase) *ChangeOrderHandler {
	return &ChangeOrderHandler{usecase: uc}
}

func (h *ChangeOrderHandler) CreateChangeOrder(c *gin.Context) {
	var cmd usecase.CreateChangeOrderCommand
	if !bindJSON(c, &cmd) {
		return
	}
	co, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, co)
}

func (h *ChangeOrderHandler) ApproveChangeOrder(c *gin.Context) {
	co, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, co)
}

func (h *ChangeOrderHandler) RejectChangeOrder(c *gin.Context) {
	co, err := h.usecase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, co)
}
