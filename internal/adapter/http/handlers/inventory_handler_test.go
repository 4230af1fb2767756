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

func TestInventoryHandler(t *testing.T) {
	newRouter := func(uc usecase.IInventoryUseCase) *gin.Engine {
		h := NewInventoryHandler(uc)
		r := gin.New()
		r.GET("/v1/inventory", h.ListItems)
		r.POST("/v1/inventory/:id/adjust", h.AdjustItem)
		return r
	}

	t.Run("low stock filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		uc.EXPECT().ListLowStock(gomock.Any()).Return([]entities.InventoryItem{{ID: "item-1", QuantityOnHand: 1, ReorderThreshold: 3}}, nil)

		w := performRequest(newRouter(uc), http.MethodGet, "/v1/inventory?low_stock=true", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if len(got) != 1 || got[0]["low_stock"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("bad query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := performRequest(newRouter(mocks.NewMockIInventoryUseCase(ctrl)), http.MethodGet, "/v1/inventory?low_stock=maybe", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInventoryUseCase(ctrl)
		uc.EXPECT().Adjust(gomock.Any(), "item-1", usecase.AdjustInventoryCommand{Delta: -10}).
			Return(entities.InventoryItem{}, usecase.ErrInsufficientStock)

		w := performRequest(newRouter(uc), http.MethodPost, "/v1/inventory/item-1/adjust", `{"delta":-10}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPurchaseOrderHandler(t *testing.T) {
	newRouter := func(uc usecase.IPurchaseOrderUseCase) *gin.Engine {
		h := NewPurchaseOrderHandler(uc)
		r := gin.New()
		r.GET("/v1/purchase-orders", h.ListPurchaseOrders)
		r.POST("/v1/purchase-orders/:id/receive", h.ReceivePurchaseOrder)
		return r
	}

	t.Run("on order filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		uc.EXPECT().ListOnOrder(gomock.Any()).Return(nil, nil)

		w := performRequest(newRouter(uc), http.MethodGet, "/v1/purchase-orders?on_order=true", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("receive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		uc.EXPECT().Receive(gomock.Any(), "po-1").Return(entities.PurchaseOrder{ID: "po-1", Status: entities.PurchaseOrderStatusReceived}, nil)

		w := performRequest(newRouter(uc), http.MethodPost, "/v1/purchase-orders/po-1/receive", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("receive twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
		uc.EXPECT().Receive(gomock.Any(), "po-1").Return(entities.PurchaseOrder{}, usecase.ErrInvalidPurchaseOrderTransition)

		w := performRequest(newRouter(uc), http.MethodPost, "/v1/purchase-orders/po-1/receive", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestDepositHandler_ApplyDeposit(t *testing.T) {
	newRouter := func(uc usecase.IDepositUseCase) *gin.Engine {
		h := NewDepositHandler(uc)
		r := gin.New()
		r.POST("/v1/deposits/:id/apply", h.ApplyDeposit)
		return r
	}

	t.Run("missing invoice id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		w := performRequest(newRouter(mocks.NewMockIDepositUseCase(ctrl)), http.MethodPost, "/v1/deposits/dep-1/apply", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().ApplyToInvoice(gomock.Any(), "dep-1", "inv-1").Return(
			entities.Deposit{ID: "dep-1", Status: entities.DepositStatusApplied},
			entities.Invoice{ID: "inv-1", Total: 100, AmountPaid: 30},
			nil,
		)

		w := performRequest(newRouter(uc), http.MethodPost, "/v1/deposits/dep-1/apply", `{"invoice_id":"inv-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got struct {
			Deposit entities.Deposit `json:"deposit"`
			Invoice struct {
				BalanceDue float64 `json:"balance_due"`
			} `json:"invoice"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got.Deposit.Status != entities.DepositStatusApplied || got.Invoice.BalanceDue != 70 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("customer mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().ApplyToInvoice(gomock.Any(), "dep-1", "inv-1").Return(entities.Deposit{}, entities.Invoice{}, usecase.ErrDepositCustomerMismatch)

		w := performRequest(newRouter(uc), http.MethodPost, "/v1/deposits/dep-1/apply", `{"invoice_id":"inv-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
