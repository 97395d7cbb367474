package interfaces

import (
	"context"

	"bistro_core/internal/domain/entities"
)

// ISlotRepository abstracts DynamoDB persistence for TimeSlot.
//
// TryReserve and Release are the only writers of current_orders during normal
// operation; both are single conditional updates so concurrent reservations
// for the same slot serialize at the store. SetCurrentOrders exists solely
// for the reconciliation pass.

type ISlotRepository interface {
	Get(ctx context.Context, key string) (entities.TimeSlot, error)
	ListByDate(ctx context.Context, date string) ([]entities.TimeSlot, error)

	// Provision creates the slot if absent; returns false when it already exists.
	Provision(ctx context.Context, slot entities.TimeSlot) (bool, error)

	// TryReserve increments current_orders iff the slot exists, is available,
	// and current_orders < max_orders. A failed condition returns the zero value.
	TryReserve(ctx context.Context, key string) (entities.TimeSlot, error)

	// Release decrements current_orders, floored at zero. Releasing an absent
	// or empty slot is a no-op returning the zero value.
	Release(ctx context.Context, key string) (entities.TimeSlot, error)

	SetCurrentOrders(ctx context.Context, key string, n int) error
}
