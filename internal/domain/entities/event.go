package entities

import "time"

// OrderStatusEvent is published to the notification fanout whenever an order
// is admitted or moves through its lifecycle. Formatting and delivery are the
// dispatcher's concern; the core only emits the facts.
type OrderStatusEvent struct {
	OrderID          string     `json:"order_id"`
	OldStatus        string     `json:"old_status,omitempty"`
	NewStatus        string     `json:"new_status"`
	ChangedAt        time.Time  `json:"changed_at"`
	EstimatedReadyAt *time.Time `json:"estimated_ready_at,omitempty"`
	SlotKey          string     `json:"slot_key,omitempty"`
}
