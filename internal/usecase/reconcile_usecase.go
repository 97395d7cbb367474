package usecase

import (
	"context"
	"log"
	"time"

	"bistro_core/internal/domain/entities"
	"bistro_core/internal/usecase/interfaces"
)

// ReconcileReport summarizes a rebuild pass.
type ReconcileReport struct {
	ActiveOrders   int `json:"active_orders"`
	QueuedOrders   int `json:"queued_orders"`
	SlotsCorrected int `json:"slots_corrected"`
}

// IReconcileUseCase rebuilds the derived capacity caches from the order store.

type IReconcileUseCase interface {
	Rebuild(ctx context.Context) (ReconcileReport, error)
}

// ReconcileUseCase recomputes the kitchen load snapshot and slot counters
// from scratch. The non-terminal orders are the system of record; the
// snapshot and the ledger counters are caches that may drift after a partial
// failure.
type ReconcileUseCase struct {
	orders  interfaces.IOrderRepository
	slots   interfaces.ISlotRepository
	monitor *KitchenLoadMonitor
	cfg     CapacityConfig

	clock func() time.Time
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	orders interfaces.IOrderRepository,
	slots interfaces.ISlotRepository,
	monitor *KitchenLoadMonitor,
	cfg CapacityConfig,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		orders:  orders,
		slots:   slots,
		monitor: monitor,
		cfg:     cfg,
		clock:   func() time.Time { return time.Now().UTC() },
	}
}

func (u *ReconcileUseCase) Rebuild(ctx context.Context) (ReconcileReport, error) {
	queued := 0
	active := 0
	holds := map[string]int{}

	for _, status := range []entities.OrderStatus{
		entities.OrderStatusPending,
		entities.OrderStatusConfirmed,
		entities.OrderStatusPreparing,
		entities.OrderStatusReady,
	} {
		orders, err := u.orders.ListByStatus(ctx, status)
		if err != nil {
			return ReconcileReport{}, err
		}
		switch status {
		case entities.OrderStatusPending, entities.OrderStatusConfirmed:
			queued += len(orders)
		default:
			active += len(orders)
		}
		for _, o := range orders {
			if o.SlotKey != "" {
				holds[o.SlotKey]++
			}
		}
	}

	u.monitor.Rebuild(active, queued)

	corrected := 0

	// Rewrite the counters of every slot still referenced by a live order.
	for key, n := range holds {
		if err := u.slots.SetCurrentOrders(ctx, key, n); err != nil {
			return ReconcileReport{}, err
		}
		corrected++
	}

	// Zero out provisioned slots in the look-ahead window that no live order
	// references anymore (a failed release leaves these behind).
	now := u.clock()
	for day := 0; day <= u.cfg.LookaheadDays; day++ {
		date := now.AddDate(0, 0, day).Format(slotDateFormat)
		listed, err := u.slots.ListByDate(ctx, date)
		if err != nil {
			return ReconcileReport{}, err
		}
		for _, s := range listed {
			if holds[s.Key()] > 0 || s.CurrentOrders == 0 {
				continue
			}
			if err := u.slots.SetCurrentOrders(ctx, s.Key(), 0); err != nil {
				return ReconcileReport{}, err
			}
			corrected++
		}
	}

	log.Printf("[reconcile][usecase] rebuild done active=%d queued=%d slots_corrected=%d", active, queued, corrected)
	return ReconcileReport{ActiveOrders: active, QueuedOrders: queued, SlotsCorrected: corrected}, nil
}
