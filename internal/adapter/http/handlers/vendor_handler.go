package handlers

import (
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	usecase usecase.IVendorUseCase
}

func NewVendorHandler(uc usecase.IVendorUseCase) *VendorHandler {
	return &VendorHandler{usecase: uc}
}

func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var cmd usecase.VendorCommand
	if !bindJSON(c, &cmd) {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListVendors accepts ?trade= to keep only vendors serving that trade.
func (h *VendorHandler) ListVendors(c *gin.Context) {
	var q request.VendorListQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), q.Trade)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *VendorHandler) GetVendor(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	var cmd usecase.VendorCommand
	if !bindJSON(c, &cmd) {
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
