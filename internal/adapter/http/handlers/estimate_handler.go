package handlers

import (
	"context"
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler handles HTTP requests for customer estimates.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary Create a draft estimate
// @Tags estimates
// @Accept json
// @Produce json
// @Param estimate body usecase.CreateEstimateCommand true "Estimate"
// @Success 201 {object} entities.Estimate
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var cmd usecase.CreateEstimateCommand
	if !bindJSON(c, &cmd) {
		return
	}
	estimate, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, estimate)
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	var q request.EstimateListQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), q.JobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.GetByID)
}

func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Send)
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Approve)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.Reject)
}

func (h *EstimateHandler) patchEstimateStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Estimate, error),
) {
	estimate, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, estimate)
}
