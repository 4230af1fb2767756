package handlers

import (
	"net/http"
	"testing"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newJobRouter(uc usecase.IJobUseCase, cos usecase.IChangeOrderUseCase) *gin.Engine {
	h := NewJobHandler(uc, cos)
	r := gin.New()
	r.GET("/v1/jobs", h.ListJobs)
	r.POST("/v1/jobs/:id/start", h.StartJob)
	r.PATCH("/v1/jobs/:id/schedule", h.ScheduleJob)
	r.GET("/v1/jobs/:id/change-orders", h.ListChangeOrders)
	return r
}

func TestJobHandler_ListJobs(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := performRequest(newJobRouter(mocks.NewMockIJobUseCase(ctrl), nil), http.MethodGet, "/v1/jobs?status=done", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w).Fields["status"] == "" {
			t.Fatalf("expected status field error, got %s", w.Body.String())
		}
	})

	t.Run("filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), usecase.JobFilter{Status: entities.JobStatusScheduled, TechnicianID: "tech-1"}).
			Return([]entities.Job{{ID: "job-1"}}, nil)

		w := performRequest(newJobRouter(uc, nil), http.MethodGet, "/v1/jobs?status=scheduled&technician_id=tech-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_Transitions(t *testing.T) {
	t.Run("invalid transition is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		uc.EXPECT().Start(gomock.Any(), "job-1").Return(entities.Job{}, usecase.ErrInvalidJobTransition)

		w := performRequest(newJobRouter(uc, nil), http.MethodPost, "/v1/jobs/job-1/start", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("schedule with bad time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := performRequest(newJobRouter(mocks.NewMockIJobUseCase(ctrl), nil), http.MethodPatch, "/v1/jobs/job-1/schedule", `{"scheduled_start":"tomorrow"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("change orders of a job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cos := mocks.NewMockIChangeOrderUseCase(ctrl)
		cos.EXPECT().ListByJob(gomock.Any(), "job-9").Return(nil, usecase.ErrJobNotFound)

		w := performRequest(newJobRouter(mocks.NewMockIJobUseCase(ctrl), cos), http.MethodGet, "/v1/jobs/job-9/change-orders", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
