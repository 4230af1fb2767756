package handlers

import (
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TaxZoneHandler serves the tax zone settings.
type TaxZoneHandler struct {
	usecase usecase.ITaxZoneUseCase
}

func NewTaxZoneHandler(uc usecase.ITaxZoneUseCase) *TaxZoneHandler {
	return &TaxZoneHandler{usecase: uc}
}

// CreateTaxZone godoc
// @Summary Create a tax zone
// @Description Rate is a percentage, given as a number or a string such as "8.25%".
// @Tags settings
// @Accept json
// @Produce json
// @Param zone body request.TaxZoneRequest true "Tax zone"
// @Success 201 {object} entities.TaxZone
// @Failure 400 {object} pkg.HTTPError
// @Router /settings/tax-zones [post]
func (h *TaxZoneHandler) CreateTaxZone(c *gin.Context) {
	var payload request.TaxZoneRequest
	if !bindJSON(c, &payload) {
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), toTaxZoneCommand(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TaxZoneHandler) ListTaxZones(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *TaxZoneHandler) GetTaxZone(c *gin.Context) {
	z, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, z)
}

func (h *TaxZoneHandler) UpdateTaxZone(c *gin.Context) {
	var payload request.TaxZoneRequest
	if !bindJSON(c, &payload) {
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), toTaxZoneCommand(payload))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func toTaxZoneCommand(r request.TaxZoneRequest) usecase.TaxZoneCommand {
	return usecase.TaxZoneCommand{Name: r.Name, Rate: string(r.Rate)}
}
