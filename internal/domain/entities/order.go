package entities

import "time"

// OrderStatus represents the kitchen lifecycle of an order.
//
// Domain notes:
//   - The admission core is the source of truth for order state.
//   - Transitions are enforced by the lifecycle use case; repositories only
//     apply conditional writes keyed on the prior status.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether the status ends the lifecycle.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// OrderType distinguishes walk-in style immediate orders from orders placed
// against a reserved time slot.

type OrderType string

const (
	OrderTypeImmediate OrderType = "immediate"
	OrderTypeScheduled OrderType = "scheduled"
)

// Priority affects queue position; urgent is operator-escalated and bypasses
// the overload fallback on admission.

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// OrderItem is a single menu line on an order.
type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
}

// Order is the customer purchase persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Scheduling:
//   - SlotKey is set only while the order holds a slot reservation; it is the
//     reference released exactly once on a terminal transition.
//   - Lifecycle timestamps are each written exactly once, by the conditional
//     status update that performs the corresponding transition.

type Order struct {
	ID          string      `json:"id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`

	Type          OrderType `json:"order_type"`
	ScheduledDate string    `json:"scheduled_date,omitempty"`
	ScheduledTime string    `json:"scheduled_time,omitempty"`
	Priority      Priority  `json:"priority"`
	SlotKey       string    `json:"slot_key,omitempty"`

	ComplexityScore      int `json:"complexity_score"`
	EstimatedPrepMinutes int `json:"estimated_prep_minutes"`

	Status           OrderStatus `json:"status"`
	ConfirmedAt      *time.Time  `json:"confirmed_at,omitempty"`
	StartedCookingAt *time.Time  `json:"started_cooking_at,omitempty"`
	ReadyAt          *time.Time  `json:"ready_at,omitempty"`
	CompletedAt      *time.Time  `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemsTotal returns the sum of unit price times quantity over all lines.
func (o Order) ItemsTotal() float64 {
	total := 0.0
	for _, it := range o.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}
