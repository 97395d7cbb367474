package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro_core/internal/adapter/http/handlers/mocks"
	"bistro_core/internal/domain/entities"
	"bistro_core/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func orderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/orders", h.CreateOrder)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.PATCH("/v1/orders/:id/status", h.UpdateOrderStatus)
	r.DELETE("/v1/orders/:id", h.CancelOrder)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validOrderBody = `{
	"order_type": "immediate",
	"items": [{"name": "Ribeye", "category": "grill", "unit_price": 30, "quantity": 1}],
	"total_amount": 30
}`

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIAdmissionUseCase(ctrl), mocks.NewMockILifecycleUseCase(ctrl))

		w := postJSON(t, orderRouter(h), "/v1/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("scheduled order without schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIAdmissionUseCase(ctrl), mocks.NewMockILifecycleUseCase(ctrl))

		body := `{
			"order_type": "scheduled",
			"items": [{"name": "Ribeye", "unit_price": 30, "quantity": 1}],
			"total_amount": 30
		}`
		w := postJSON(t, orderRouter(h), "/v1/orders", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CreateOrderAdmitted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	admission := mocks.NewMockIAdmissionUseCase(ctrl)
	h := NewOrderHandler(admission, mocks.NewMockILifecycleUseCase(ctrl))

	admission.EXPECT().Admit(gomock.Any(), gomock.Any()).Return(usecase.AdmissionResult{
		Order: entities.Order{ID: "o-1", Status: entities.OrderStatusPending, TotalAmount: 30},
	}, nil)

	w := postJSON(t, orderRouter(h), "/v1/orders", validOrderBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Admitted bool `json:"admitted"`
		Order    struct {
			ID string `json:"id"`
		} `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !resp.Admitted || resp.Order.ID != "o-1" {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestOrderHandler_CreateOrderDeclined(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("overloaded returns the offered slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admission := mocks.NewMockIAdmissionUseCase(ctrl)
		h := NewOrderHandler(admission, mocks.NewMockILifecycleUseCase(ctrl))

		offered := entities.TimeSlot{Date: "2026-10-05", TimeBucket: "19:15", SlotType: entities.SlotTypePeak, MaxOrders: 6, IsAvailable: true}
		admission.EXPECT().Admit(gomock.Any(), gomock.Any()).
			Return(usecase.AdmissionResult{OfferedSlot: &offered}, usecase.ErrKitchenOverloaded)

		w := postJSON(t, orderRouter(h), "/v1/orders", validOrderBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp struct {
			Admitted    bool   `json:"admitted"`
			Reason      string `json:"reason"`
			OfferedSlot *struct {
				TimeBucket string `json:"time_bucket"`
			} `json:"offered_slot"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Admitted || resp.Reason != "KITCHEN_OVERLOADED" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
		if resp.OfferedSlot == nil || resp.OfferedSlot.TimeBucket != "19:15" {
			t.Fatalf("offered slot missing: %s", w.Body.String())
		}
	})

	t.Run("full slot returns the suggestion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admission := mocks.NewMockIAdmissionUseCase(ctrl)
		h := NewOrderHandler(admission, mocks.NewMockILifecycleUseCase(ctrl))

		suggested := entities.TimeSlot{Date: "2026-10-05", TimeBucket: "19:15", SlotType: entities.SlotTypePeak, MaxOrders: 6, IsAvailable: true}
		admission.EXPECT().Admit(gomock.Any(), gomock.Any()).
			Return(usecase.AdmissionResult{SuggestedSlot: &suggested}, usecase.ErrSlotFull)

		w := postJSON(t, orderRouter(h), "/v1/orders", validOrderBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp struct {
			Reason        string `json:"reason"`
			SuggestedSlot *struct {
				TimeBucket string `json:"time_bucket"`
			} `json:"suggested_slot"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Reason != "SLOT_FULL" || resp.SuggestedSlot == nil || resp.SuggestedSlot.TimeBucket != "19:15" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("invalid order maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admission := mocks.NewMockIAdmissionUseCase(ctrl)
		h := NewOrderHandler(admission, mocks.NewMockILifecycleUseCase(ctrl))

		admission.EXPECT().Admit(gomock.Any(), gomock.Any()).
			Return(usecase.AdmissionResult{}, usecase.ErrInvalidOrder)

		w := postJSON(t, orderRouter(h), "/v1/orders", validOrderBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admission := mocks.NewMockIAdmissionUseCase(ctrl)
		h := NewOrderHandler(admission, mocks.NewMockILifecycleUseCase(ctrl))

		admission.EXPECT().Admit(gomock.Any(), gomock.Any()).
			Return(usecase.AdmissionResult{}, errors.New("dynamo down"))

		w := postJSON(t, orderRouter(h), "/v1/orders", validOrderBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admission := mocks.NewMockIAdmissionUseCase(ctrl)
		h := NewOrderHandler(admission, mocks.NewMockILifecycleUseCase(ctrl))

		admission.EXPECT().GetOrder(gomock.Any(), "o-404").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-404", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		admission := mocks.NewMockIAdmissionUseCase(ctrl)
		h := NewOrderHandler(admission, mocks.NewMockILifecycleUseCase(ctrl))

		admission.EXPECT().GetOrder(gomock.Any(), "o-1").
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusPreparing}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1", nil)
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Status != "preparing" {
			t.Fatalf("unexpected status: %s", resp.Status)
		}
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewOrderHandler(mocks.NewMockIAdmissionUseCase(ctrl), mocks.NewMockILifecycleUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status", bytes.NewBufferString(`{"status":"vanished"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIAdmissionUseCase(ctrl), lifecycle)

		lifecycle.EXPECT().Transition(gomock.Any(), "o-1", entities.OrderStatusReady).
			Return(entities.Order{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status", bytes.NewBufferString(`{"status":"ready"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewOrderHandler(mocks.NewMockIAdmissionUseCase(ctrl), lifecycle)

		lifecycle.EXPECT().Transition(gomock.Any(), "o-1", entities.OrderStatusConfirmed).
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusConfirmed}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/o-1/status", bytes.NewBufferString(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		orderRouter(h).ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lifecycle := mocks.NewMockILifecycleUseCase(ctrl)
	h := NewOrderHandler(mocks.NewMockIAdmissionUseCase(ctrl), lifecycle)

	lifecycle.EXPECT().Cancel(gomock.Any(), "o-1").
		Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCancelled}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/orders/o-1", nil)
	w := httptest.NewRecorder()
	orderRouter(h).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Status != "cancelled" {
		t.Fatalf("unexpected status: %s", resp.Status)
	}
}
