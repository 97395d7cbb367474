package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"bistro_core/internal/domain/entities"
	mock_interfaces "bistro_core/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReconcileUseCase_Rebuild(t *testing.T) {
	cfg := testCapacityConfig()
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	t.Run("rebuilds counters and slot holds from the order store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		repo := newFakeSlotRepo()

		// Slot with a drifted counter (2 recorded, 1 actually held) and a
		// stale slot nothing references anymore.
		repo.slots["2026-10-05#19:00"] = entities.TimeSlot{
			Date: "2026-10-05", TimeBucket: "19:00", SlotType: entities.SlotTypePeak,
			MaxOrders: 6, CurrentOrders: 2, IsAvailable: true,
		}
		repo.slots["2026-10-06#12:00"] = entities.TimeSlot{
			Date: "2026-10-06", TimeBucket: "12:00", SlotType: entities.SlotTypePeak,
			MaxOrders: 6, CurrentOrders: 3, IsAvailable: true,
		}

		monitor := NewKitchenLoadMonitor(cfg, nil)
		monitor.Rebuild(9, 9) // drifted snapshot

		orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusPending).
			Return([]entities.Order{{ID: "o-1", Status: entities.OrderStatusPending}}, nil)
		orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusConfirmed).
			Return([]entities.Order{
				{ID: "o-2", Status: entities.OrderStatusConfirmed, SlotKey: "2026-10-05#19:00"},
			}, nil)
		orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusPreparing).
			Return([]entities.Order{{ID: "o-3", Status: entities.OrderStatusPreparing}}, nil)
		orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusReady).
			Return([]entities.Order{{ID: "o-4", Status: entities.OrderStatusReady}}, nil)

		uc := NewReconcileUseCase(orders, repo, monitor, cfg)
		uc.clock = fixedClock(now)

		report, err := uc.Rebuild(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.ActiveOrders != 2 || report.QueuedOrders != 2 {
			t.Fatalf("unexpected report: %+v", report)
		}
		if report.SlotsCorrected != 2 {
			t.Fatalf("expected 2 slot corrections, got %d", report.SlotsCorrected)
		}

		snap := monitor.Snapshot()
		if snap.ActiveOrders != 2 || snap.QueuedOrders != 2 {
			t.Fatalf("monitor not rebuilt: %+v", snap)
		}

		held, _ := repo.Get(context.Background(), "2026-10-05#19:00")
		if held.CurrentOrders != 1 {
			t.Fatalf("expected held slot corrected to 1, got %d", held.CurrentOrders)
		}
		stale, _ := repo.Get(context.Background(), "2026-10-06#12:00")
		if stale.CurrentOrders != 0 {
			t.Fatalf("expected stale slot zeroed, got %d", stale.CurrentOrders)
		}
	})

	t.Run("store error aborts the pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		monitor := NewKitchenLoadMonitor(cfg, nil)

		orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusPending).
			Return(nil, errors.New("dynamo down"))

		uc := NewReconcileUseCase(orders, newFakeSlotRepo(), monitor, cfg)
		uc.clock = fixedClock(now)

		if _, err := uc.Rebuild(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestKitchenStatusUseCase_Status(t *testing.T) {
	cfg := testCapacityConfig()

	t.Run("combines snapshot with next slot", func(t *testing.T) {
		monitor := NewKitchenLoadMonitor(cfg, nil)
		monitor.Rebuild(3, 2)
		slots := NewSlotUseCase(newFakeSlotRepo(), cfg)
		uc := NewKitchenStatusUseCase(monitor, slots)
		uc.clock = fixedClock(time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC))

		status, err := uc.Status(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.Load.ActiveOrders != 3 || status.Load.QueuedOrders != 2 {
			t.Fatalf("unexpected load: %+v", status.Load)
		}
		if status.NextAvailableSlot == nil || status.NextAvailableSlot.TimeBucket != "11:00" {
			t.Fatalf("unexpected next slot: %+v", status.NextAvailableSlot)
		}
	})

	t.Run("tolerates an exhausted window", func(t *testing.T) {
		shortCfg := cfg
		shortCfg.LookaheadDays = 0
		shortCfg.OpenHour = 11
		shortCfg.CloseHour = 12
		monitor := NewKitchenLoadMonitor(shortCfg, nil)

		repo := newFakeSlotRepo()
		date := time.Date(2026, 10, 5, 13, 0, 0, 0, time.UTC).Format(slotDateFormat)
		for _, bucket := range []string{"11:00", "11:15", "11:30", "11:45"} {
			repo.slots[date+"#"+bucket] = entities.TimeSlot{
				Date: date, TimeBucket: bucket, SlotType: entities.SlotTypeOffPeak,
				MaxOrders: 1, CurrentOrders: 1, IsAvailable: true,
			}
		}
		slots := NewSlotUseCase(repo, shortCfg)
		uc := NewKitchenStatusUseCase(monitor, slots)
		uc.clock = fixedClock(time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC))

		status, err := uc.Status(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.NextAvailableSlot != nil {
			t.Fatalf("expected no slot, got %+v", status.NextAvailableSlot)
		}
	})
}
