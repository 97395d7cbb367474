package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"bistro_core/internal/domain/entities"
	"bistro_core/internal/usecase/interfaces"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrReconciliationRequired marks a committed status whose capacity
	// release failed. It is logged and handed to operators, never returned to
	// the customer-facing caller.
	ErrReconciliationRequired = errors.New("reconciliation required")
)

// legalTransitions is the authoritative lifecycle definition:
// pending -> confirmed -> preparing -> ready -> completed, with cancelled
// reachable from pending, confirmed or preparing.
var legalTransitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.OrderStatusPending:   {entities.OrderStatusConfirmed, entities.OrderStatusCancelled},
	entities.OrderStatusConfirmed: {entities.OrderStatusPreparing, entities.OrderStatusCancelled},
	entities.OrderStatusPreparing: {entities.OrderStatusReady, entities.OrderStatusCancelled},
	entities.OrderStatusReady:     {entities.OrderStatusCompleted},
}

func transitionAllowed(from, to entities.OrderStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ILifecycleUseCase drives orders through their lifecycle.

type ILifecycleUseCase interface {
	Transition(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error)
	Cancel(ctx context.Context, orderID string) (entities.Order, error)
}

// LifecycleUseCase enforces legal transitions and keeps the load monitor and
// slot ledger in step with committed status changes.
//
// The status write is a conditional update keyed on the prior status; a lost
// race surfaces as ErrInvalidTransition with the order unchanged. Capacity
// side effects run after the commit, so a failed release can only leave the
// caches behind the source of truth, which the reconciliation pass repairs.
type LifecycleUseCase struct {
	orders    interfaces.IOrderRepository
	slots     *SlotUseCase
	monitor   *KitchenLoadMonitor
	publisher interfaces.IStatusPublisher

	clock func() time.Time

	// onReconciliationRequired, when set, is invoked for every failed release
	// after a status commit. Wiring uses it to raise an operator-facing metric.
	onReconciliationRequired func(orderID, slotKey string)
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(
	orders interfaces.IOrderRepository,
	slots *SlotUseCase,
	monitor *KitchenLoadMonitor,
	publisher interfaces.IStatusPublisher,
	onReconciliationRequired func(orderID, slotKey string),
) *LifecycleUseCase {
	return &LifecycleUseCase{
		orders:                   orders,
		slots:                    slots,
		monitor:                  monitor,
		publisher:                publisher,
		clock:                    func() time.Time { return time.Now().UTC() },
		onReconciliationRequired: onReconciliationRequired,
	}
}

func (u *LifecycleUseCase) Transition(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !transitionAllowed(order.Status, target) {
		return entities.Order{}, ErrInvalidTransition
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, order.Status, target, u.clock())
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		// Another writer moved the order first.
		return entities.Order{}, ErrInvalidTransition
	}

	u.applyCapacityEffects(ctx, order.Status, updated)
	u.publishTransition(ctx, order.Status, updated)
	log.Printf("[lifecycle][usecase] transition committed order_id=%s from=%s to=%s", updated.ID, order.Status, updated.Status)
	return updated, nil
}

func (u *LifecycleUseCase) Cancel(ctx context.Context, orderID string) (entities.Order, error) {
	return u.Transition(ctx, orderID, entities.OrderStatusCancelled)
}

// applyCapacityEffects updates the load monitor and releases slot capacity
// for the transition that just committed.
func (u *LifecycleUseCase) applyCapacityEffects(ctx context.Context, from entities.OrderStatus, order entities.Order) {
	switch order.Status {
	case entities.OrderStatusPreparing:
		u.monitor.RecordCookingStart()
	case entities.OrderStatusCompleted:
		u.monitor.RecordCompletionOrCancellation(true)
	case entities.OrderStatusCancelled:
		u.monitor.RecordCompletionOrCancellation(from == entities.OrderStatusPreparing)
	}

	// Exactly one release per reservation: only the single terminal
	// transition that the conditional update let through reaches this point.
	if order.Status.IsTerminal() && order.SlotKey != "" {
		if err := u.slots.Release(ctx, order.SlotKey); err != nil {
			log.Printf("[lifecycle][usecase] %v order_id=%s slot_key=%s err=%v",
				ErrReconciliationRequired, order.ID, order.SlotKey, err)
			if u.onReconciliationRequired != nil {
				u.onReconciliationRequired(order.ID, order.SlotKey)
			}
		}
	}
}

func (u *LifecycleUseCase) publishTransition(ctx context.Context, from entities.OrderStatus, order entities.Order) {
	if u.publisher == nil {
		return
	}
	evt := entities.OrderStatusEvent{
		OrderID:   order.ID,
		OldStatus: string(from),
		NewStatus: string(order.Status),
		ChangedAt: u.clock(),
		SlotKey:   order.SlotKey,
	}
	if err := u.publisher.PublishStatusChange(ctx, evt); err != nil {
		log.Printf("[lifecycle][usecase] status publish failed order_id=%s err=%v", order.ID, err)
	}
}
