package interfaces

import (
	"context"
	"time"

	"bistro_core/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The admission core must be able to:
//   - create an order record once admission succeeds
//   - apply a status transition conditioned on the prior status, so that
//     concurrent staff actions serialize and each lifecycle timestamp is
//     written exactly once
//   - enumerate orders by status for the reconciliation pass
//
// Convention (shared with all repositories here): "not found" and a failed
// conditional check both return the zero value with a nil error.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, at time.Time) (entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
}
