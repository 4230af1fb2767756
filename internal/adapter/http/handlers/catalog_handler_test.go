package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTechnicianHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITechnicianUseCase(ctrl)
	h := NewTechnicianHandler(uc)
	r := gin.New()
	r.POST("/v1/technicians", h.CreateTechnician)
	r.GET("/v1/technicians", h.ListTechnicians)
	r.GET("/v1/technicians/:id", h.GetTechnician)
	r.PUT("/v1/technicians/:id", h.UpdateTechnician)

	uc.EXPECT().Create(gomock.Any(), usecase.TechnicianCommand{Name: "Rita", Trade: "plumbing"}).
		Return(entities.Technician{ID: "tech-2", Name: "Rita", Trade: "plumbing", Active: true}, nil)
	if w := performRequest(r, http.MethodPost, "/v1/technicians", `{"name":"Rita","trade":"plumbing"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().List(gomock.Any()).Return([]entities.Technician{{ID: "tech-1"}}, nil)
	if w := performRequest(r, http.MethodGet, "/v1/technicians", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "tech-9").Return(entities.Technician{}, usecase.ErrTechnicianNotFound)
	w := performRequest(r, http.MethodGet, "/v1/technicians/tech-9", "")
	if w.Code != http.StatusNotFound || decodeError(t, w).Code != "TECHNICIAN_NOT_FOUND" {
		t.Fatalf("expected TECHNICIAN_NOT_FOUND, got %d %s", w.Code, w.Body.String())
	}

	if w := performRequest(r, http.MethodPut, "/v1/technicians/tech-1", "{"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestVendorHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVendorUseCase(ctrl)
	h := NewVendorHandler(uc)
	r := gin.New()
	r.POST("/v1/vendors", h.CreateVendor)
	r.GET("/v1/vendors", h.ListVendors)
	r.GET("/v1/vendors/:id", h.GetVendor)
	r.PUT("/v1/vendors/:id", h.UpdateVendor)

	uc.EXPECT().List(gomock.Any(), "hvac").Return([]entities.Vendor{{ID: "vend-1", Trades: []string{"hvac"}}}, nil)
	w := performRequest(r, http.MethodGet, "/v1/vendors?trade=hvac", "")
	var got []entities.Vendor
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if w.Code != http.StatusOK || len(got) != 1 {
		t.Fatalf("unexpected list response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().Update(gomock.Any(), "vend-1", gomock.Any()).Return(entities.Vendor{ID: "vend-1", Name: "Renamed"}, nil)
	if w := performRequest(r, http.MethodPut, "/v1/vendors/vend-1", `{"name":"Renamed"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "vend-9").Return(entities.Vendor{}, usecase.ErrVendorNotFound)
	if w := performRequest(r, http.MethodGet, "/v1/vendors/vend-9", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Vendor{ID: "vend-2"}, nil)
	if w := performRequest(r, http.MethodPost, "/v1/vendors", `{"name":"New"}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDashboardUseCase(ctrl)
	r := gin.New()
	r.GET("/v1/dashboard", NewDashboardHandler(uc).GetDashboard)

	uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{
		Customers:          3,
		JobsByStatus:       map[entities.JobStatus]int{entities.JobStatusScheduled: 2},
		OutstandingBalance: 120.5,
	}, nil)

	w := performRequest(r, http.MethodGet, "/v1/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	jobs, _ := got["jobs_by_status"].(map[string]any)
	if got["customers"] != float64(3) || jobs["scheduled"] != float64(2) {
		t.Fatalf("unexpected dashboard %v", got)
	}
}
