package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro_core/internal/adapter/http/handlers/mocks"
	"bistro_core/internal/domain/entities"
	"bistro_core/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSlotHandler_ListSlots(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		slots := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(slots)

		slots.EXPECT().ListByDate(gomock.Any(), "someday").Return(nil, usecase.ErrInvalidSlot)

		r := gin.New()
		r.GET("/v1/slots/:date", h.ListSlots)
		req := httptest.NewRequest(http.MethodGet, "/v1/slots/someday", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns the grid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		slots := mocks.NewMockISlotUseCase(ctrl)
		h := NewSlotHandler(slots)

		slots.EXPECT().ListByDate(gomock.Any(), "2026-10-05").Return([]entities.TimeSlot{
			{Date: "2026-10-05", TimeBucket: "11:00", SlotType: entities.SlotTypeOffPeak, MaxOrders: 2, IsAvailable: true},
			{Date: "2026-10-05", TimeBucket: "12:00", SlotType: entities.SlotTypePeak, MaxOrders: 6, CurrentOrders: 6, IsAvailable: true},
		}, nil)

		r := gin.New()
		r.GET("/v1/slots/:date", h.ListSlots)
		req := httptest.NewRequest(http.MethodGet, "/v1/slots/2026-10-05", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp []struct {
			TimeBucket    string `json:"time_bucket"`
			CurrentOrders int    `json:"current_orders"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if len(resp) != 2 || resp[1].CurrentOrders != 6 {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}
