package handlers

import (
	"context"
	"net/http"
	"strings"

	request "fieldservice/internal/adapter/http/dto/request"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/validation"

	"github.com/gin-gonic/gin"
)

// JobHandler handles scheduling and the job status lifecycle.
type JobHandler struct {
	usecase      usecase.IJobUseCase
	changeOrders usecase.IChangeOrderUseCase
}

func NewJobHandler(uc usecase.IJobUseCase, changeOrders usecase.IChangeOrderUseCase) *JobHandler {
	return &JobHandler{usecase: uc, changeOrders: changeOrders}
}

// CreateJob godoc
// @Summary Create a job
// @Description The job starts scheduled when a technician and a full window are given.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body usecase.CreateJobCommand true "Job"
// @Success 201 {object} entities.Job
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var cmd usecase.CreateJobCommand
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

// ListJobs godoc
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Param status query string false "unscheduled, scheduled, in_progress or complete"
// @Param technician_id query string false "Technician ID"
// @Param customer_id query string false "Customer ID"
// @Success 200 {array} entities.Job
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var q request.JobListQuery
	if !bindQuery(c, &q) {
		return
	}
	status := entities.JobStatus(strings.TrimSpace(q.Status))
	if status != "" && !status.Valid() {
		respondError(c, validation.Field("status", "must be one of: unscheduled, scheduled, in_progress, complete"))
		return
	}
	list, err := h.usecase.List(c.Request.Context(), usecase.JobFilter{
		Status:       status,
		TechnicianID: strings.TrimSpace(q.TechnicianID),
		CustomerID:   strings.TrimSpace(q.CustomerID),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	j, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *JobHandler) ScheduleJob(c *gin.Context) {
	var cmd usecase.ScheduleJobCommand
	if !bindJSON(c, &cmd) {
		return
	}
	j, err := h.usecase.Schedule(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *JobHandler) StartJob(c *gin.Context) {
	h.transition(c, h.usecase.Start)
}

func (h *JobHandler) CompleteJob(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

func (h *JobHandler) ListChangeOrders(c *gin.Context) {
	list, err := h.changeOrders.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *JobHandler) transition(c *gin.Context, fn func(ctx context.Context, id string) (entities.Job, error)) {
	j, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}
