package handlers

import (
	"net/http"

	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TechnicianHandler struct {
	usecase usecase.ITechnicianUseCase
}

func NewTechnicianHandler(uc usecase.ITechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{usecase: uc}
}

func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var cmd usecase.TechnicianCommand
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

func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *TechnicianHandler) GetTechnician(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	var cmd usecase.TechnicianCommand
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
