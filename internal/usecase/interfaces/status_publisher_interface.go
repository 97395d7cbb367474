package interfaces

import (
	"context"

	"bistro_core/internal/domain/entities"
)

// IStatusPublisher emits order status events to the notification fanout.
//
// Publishing is best-effort: callers log failures and never let them block a
// customer-facing response.

type IStatusPublisher interface {
	PublishStatusChange(ctx context.Context, evt entities.OrderStatusEvent) error
}
