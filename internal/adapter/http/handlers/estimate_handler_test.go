package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEstimateRouter(uc usecase.IEstimateUseCase, co usecase.IChangeOrderUseCase) *gin.Engine {
	h := NewEstimateHandler(uc)
	coh := NewChangeOrderHandler(co)
	r := gin.New()
	r.POST("/v1/estimates", h.CreateEstimate)
	r.GET("/v1/estimates", h.ListEstimates)
	r.GET("/v1/estimates/:id", h.GetEstimate)
	r.POST("/v1/estimates/:id/send", h.SendEstimate)
	r.PATCH("/v1/estimates/:id/approve", h.ApproveEstimate)
	r.PATCH("/v1/estimates/:id/reject", h.RejectEstimate)
	r.POST("/v1/change-orders", coh.CreateChangeOrder)
	r.PATCH("/v1/change-orders/:id/approve", coh.ApproveChangeOrder)
	r.PATCH("/v1/change-orders/:id/reject", coh.RejectChangeOrder)
	return r
}

func TestEstimateHandler_CreateAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := newEstimateRouter(uc, mocks.NewMockIChangeOrderUseCase(ctrl))

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd usecase.CreateEstimateCommand) (entities.Estimate, error) {
			if cmd.CustomerID != "cust-1" {
				t.Fatalf("unexpected command %+v", cmd)
			}
			return entities.Estimate{ID: "est-1", CustomerID: "cust-1", Status: entities.EstimateStatusDraft}, nil
		})
	w := performRequest(r, http.MethodPost, "/v1/estimates", `{"customer_id":"cust-1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().List(gomock.Any(), "job-1").Return(nil, nil)
	w = performRequest(r, http.MethodGet, "/v1/estimates?job_id=job-1", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
	}
}

func TestEstimateHandler_StatusChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	r := newEstimateRouter(uc, mocks.NewMockIChangeOrderUseCase(ctrl))

	uc.EXPECT().Send(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusSent}, nil)
	w := performRequest(r, http.MethodPost, "/v1/estimates/est-1/send", "")
	var got entities.Estimate
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if w.Code != http.StatusOK || got.Status != entities.EstimateStatusSent {
		t.Fatalf("unexpected send response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Approve(gomock.Any(), "est-1").Return(entities.Estimate{}, usecase.ErrInvalidEstimateTransition)
	w = performRequest(r, http.MethodPatch, "/v1/estimates/est-1/approve", "")
	if w.Code != http.StatusConflict || decodeError(t, w).Code != "INVALID_STATUS_TRANSITION" {
		t.Fatalf("expected 409 transition error, got %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Reject(gomock.Any(), "est-9").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)
	w = performRequest(r, http.MethodPatch, "/v1/estimates/est-9/reject", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Estimate{ID: "est-1"}, nil)
	w = performRequest(r, http.MethodGet, "/v1/estimates/est-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestChangeOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	co := mocks.NewMockIChangeOrderUseCase(ctrl)
	r := newEstimateRouter(mocks.NewMockIEstimateUseCase(ctrl), co)

	t.Run("create", func(t *testing.T) {
		co.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.ChangeOrder{ID: "co-1", Status: entities.ChangeOrderStatusPending}, nil)
		w := performRequest(r, http.MethodPost, "/v1/change-orders", `{"job_id":"job-1","description":"Extra valve","amount":120}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing job", func(t *testing.T) {
		co.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ChangeOrder{}, usecase.ErrJobNotFound)
		w := performRequest(r, http.MethodPost, "/v1/change-orders", `{"job_id":"job-9","description":"x","amount":1}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("approve and reject", func(t *testing.T) {
		co.EXPECT().Approve(gomock.Any(), "co-1").Return(entities.ChangeOrder{ID: "co-1", Status: entities.ChangeOrderStatusApproved}, nil)
		if w := performRequest(r, http.MethodPatch, "/v1/change-orders/co-1/approve", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		co.EXPECT().Reject(gomock.Any(), "co-1").Return(entities.ChangeOrder{}, usecase.ErrInvalidChangeOrderTransition)
		if w := performRequest(r, http.MethodPatch, "/v1/change-orders/co-1/reject", ""); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
