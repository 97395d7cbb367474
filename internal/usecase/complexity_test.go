package usecase

import (
	"testing"

	"bistro_core/internal/domain/entities"
)

func testCapacityConfig() CapacityConfig {
	return CapacityConfig{
		MaxCapacity:      15,
		HighWaterPercent: 85,
		LowWaterPercent:  70,
		LoadPenaltySlope: 0.5,
		LookaheadDays:    14,
		OpenHour:         11,
		CloseHour:        22,
		DefaultRegular:   4,
		DefaultPeak:      6,
		DefaultOffPeak:   2,
	}
}

func TestComplexityScore(t *testing.T) {
	t.Run("empty order scores minimum", func(t *testing.T) {
		if got := ComplexityScore(nil); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("single drink scores minimum", func(t *testing.T) {
		items := []entities.OrderItem{{Name: "Cola", Category: "drink", Quantity: 1}}
		if got := ComplexityScore(items); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("unknown category gets middle weight", func(t *testing.T) {
		items := []entities.OrderItem{{Name: "Mystery", Category: "experimental", Quantity: 2}}
		if got := ComplexityScore(items); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("quantity-weighted mean", func(t *testing.T) {
		// (5*1 + 1*3) / 4 = 2 exactly.
		items := []entities.OrderItem{
			{Name: "Feast Platter", Category: "multi_component", Quantity: 1},
			{Name: "Lemonade", Category: "drink", Quantity: 3},
		}
		if got := ComplexityScore(items); got != 2 {
			t.Fatalf("expected 2, got %d", got)
		}
	})

	t.Run("all heavy items clamp at five", func(t *testing.T) {
		items := []entities.OrderItem{
			{Name: "Banquet", Category: "multi_component", Quantity: 4},
		}
		if got := ComplexityScore(items); got != 5 {
			t.Fatalf("expected 5, got %d", got)
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		items := []entities.OrderItem{
			{Name: "Ribeye", Category: "grill", Quantity: 2},
			{Name: "Fries", Category: "side", Quantity: 2},
			{Name: "Sundae", Category: "dessert", Quantity: 1},
		}
		first := ComplexityScore(items)
		for i := 0; i < 100; i++ {
			if got := ComplexityScore(items); got != first {
				t.Fatalf("score changed between runs: %d then %d", first, got)
			}
		}
	})

	t.Run("zero quantity treated as one", func(t *testing.T) {
		items := []entities.OrderItem{{Name: "Steak", Category: "grill", Quantity: 0}}
		if got := ComplexityScore(items); got != 4 {
			t.Fatalf("expected 4, got %d", got)
		}
	})
}

func TestEstimatePrepMinutes(t *testing.T) {
	cfg := testCapacityConfig()

	t.Run("base time below high water", func(t *testing.T) {
		if got := EstimatePrepMinutes(3, 50, cfg); got != 25 {
			t.Fatalf("expected 25, got %d", got)
		}
	})

	t.Run("no penalty at exactly high water", func(t *testing.T) {
		if got := EstimatePrepMinutes(3, 85, cfg); got != 25 {
			t.Fatalf("expected 25, got %d", got)
		}
	})

	t.Run("penalty above high water", func(t *testing.T) {
		// 10 points over at slope 0.5 adds 5 minutes.
		if got := EstimatePrepMinutes(3, 95, cfg); got != 30 {
			t.Fatalf("expected 30, got %d", got)
		}
	})

	t.Run("unknown score falls back to middle base", func(t *testing.T) {
		if got := EstimatePrepMinutes(9, 0, cfg); got != 25 {
			t.Fatalf("expected 25, got %d", got)
		}
	})

	t.Run("score bounds", func(t *testing.T) {
		if got := EstimatePrepMinutes(1, 0, cfg); got != 10 {
			t.Fatalf("expected 10, got %d", got)
		}
		if got := EstimatePrepMinutes(5, 0, cfg); got != 50 {
			t.Fatalf("expected 50, got %d", got)
		}
	})
}
