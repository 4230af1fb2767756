package handlers

import (
	"net/http"
	"testing"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTaxZoneHandler_CreateTaxZone(t *testing.T) {
	newRouter := func(uc usecase.ITaxZoneUseCase) *gin.Engine {
		h := NewTaxZoneHandler(uc)
		r := gin.New()
		r.POST("/v1/settings/tax-zones", h.CreateTaxZone)
		r.PUT("/v1/settings/tax-zones/:id", h.UpdateTaxZone)
		return r
	}

	t.Run("numeric rate is forwarded as text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITaxZoneUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), usecase.TaxZoneCommand{Name: "Travis", Rate: "8.25"}).
			Return(entities.TaxZone{ID: "tz-1", Name: "Travis", Rate: 8.25}, nil)

		w := performRequest(newRouter(uc), http.MethodPost, "/v1/settings/tax-zones", `{"name":"Travis","rate":8.25}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("non numeric rate becomes a field error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITaxZoneUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), "tz-1", usecase.TaxZoneCommand{Name: "Travis", Rate: "eight"}).
			Return(entities.TaxZone{}, validation.Field("rate", "must be a number"))

		w := performRequest(newRouter(uc), http.MethodPut, "/v1/settings/tax-zones/tz-1", `{"name":"Travis","rate":"eight"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w).Fields["rate"] != "must be a number" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
