package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bistro_core/internal/adapter/http/handlers/mocks"
	"bistro_core/internal/domain/entities"
	"bistro_core/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func kitchenRouter(h *KitchenHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/kitchen/status", h.GetKitchenStatus)
	r.POST("/v1/kitchen/reconcile", h.Reconcile)
	return r
}

func TestKitchenHandler_GetKitchenStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		status := mocks.NewMockIKitchenStatusUseCase(ctrl)
		h := NewKitchenHandler(status, mocks.NewMockIReconcileUseCase(ctrl))

		next := entities.TimeSlot{Date: "2026-10-05", TimeBucket: "19:15", SlotType: entities.SlotTypePeak, MaxOrders: 6, IsAvailable: true}
		status.EXPECT().Status(gomock.Any()).Return(usecase.KitchenStatus{
			Load: entities.KitchenLoad{
				ActiveOrders:       13,
				QueuedOrders:       2,
				CurrentLoadPercent: 86.7,
				IsOverloaded:       true,
				AvgWaitMinutes:     3,
				UpdatedAt:          time.Date(2026, 10, 5, 18, 0, 0, 0, time.UTC),
			},
			NextAvailableSlot: &next,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/kitchen/status", nil)
		w := httptest.NewRecorder()
		kitchenRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			ActiveOrders      int  `json:"active_orders"`
			IsOverloaded      bool `json:"is_overloaded"`
			NextAvailableSlot *struct {
				TimeBucket string `json:"time_bucket"`
			} `json:"next_available_slot"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.ActiveOrders != 13 || !resp.IsOverloaded {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
		if resp.NextAvailableSlot == nil || resp.NextAvailableSlot.TimeBucket != "19:15" {
			t.Fatalf("next slot missing: %s", w.Body.String())
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		status := mocks.NewMockIKitchenStatusUseCase(ctrl)
		h := NewKitchenHandler(status, mocks.NewMockIReconcileUseCase(ctrl))

		status.EXPECT().Status(gomock.Any()).Return(usecase.KitchenStatus{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/kitchen/status", nil)
		w := httptest.NewRecorder()
		kitchenRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestKitchenHandler_Reconcile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconcile := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewKitchenHandler(mocks.NewMockIKitchenStatusUseCase(ctrl), reconcile)

		reconcile.EXPECT().Rebuild(gomock.Any()).Return(usecase.ReconcileReport{
			ActiveOrders: 3, QueuedOrders: 5, SlotsCorrected: 2,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/kitchen/reconcile", nil)
		w := httptest.NewRecorder()
		kitchenRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp struct {
			SlotsCorrected int `json:"slots_corrected"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.SlotsCorrected != 2 {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reconcile := mocks.NewMockIReconcileUseCase(ctrl)
		h := NewKitchenHandler(mocks.NewMockIKitchenStatusUseCase(ctrl), reconcile)

		reconcile.EXPECT().Rebuild(gomock.Any()).Return(usecase.ReconcileReport{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/kitchen/reconcile", nil)
		w := httptest.NewRecorder()
		kitchenRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
