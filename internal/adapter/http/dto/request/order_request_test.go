package request

import (
	"errors"
	"testing"
)

func TestCreateOrderRequest_ValidateShape(t *testing.T) {
	items := []OrderItemRequest{{Name: "Ribeye", UnitPrice: 30, Quantity: 1}}

	t.Run("immediate without schedule", func(t *testing.T) {
		r := CreateOrderRequest{OrderType: "immediate", Items: items, TotalAmount: 30}
		if err := r.ValidateShape(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("immediate with stray schedule", func(t *testing.T) {
		r := CreateOrderRequest{OrderType: "immediate", Items: items, TotalAmount: 30, ScheduledDate: "2026-10-05"}
		if err := r.ValidateShape(); !errors.Is(err, ErrStraySchedule) {
			t.Fatalf("expected ErrStraySchedule, got %v", err)
		}
	})

	t.Run("scheduled with full schedule", func(t *testing.T) {
		r := CreateOrderRequest{
			OrderType: "scheduled", Items: items, TotalAmount: 30,
			ScheduledDate: "2026-10-05", ScheduledTime: "19:00",
		}
		if err := r.ValidateShape(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("scheduled missing time", func(t *testing.T) {
		r := CreateOrderRequest{OrderType: "scheduled", Items: items, TotalAmount: 30, ScheduledDate: "2026-10-05"}
		if err := r.ValidateShape(); !errors.Is(err, ErrMissingSchedule) {
			t.Fatalf("expected ErrMissingSchedule, got %v", err)
		}
	})

	t.Run("scheduled with blank-padded schedule", func(t *testing.T) {
		r := CreateOrderRequest{OrderType: "scheduled", Items: items, TotalAmount: 30, ScheduledDate: "  ", ScheduledTime: " "}
		if err := r.ValidateShape(); !errors.Is(err, ErrMissingSchedule) {
			t.Fatalf("expected ErrMissingSchedule, got %v", err)
		}
	})
}
