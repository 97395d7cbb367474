package entities

import "time"

// KitchenLoad is the live kitchen status snapshot.
//
// It is a derived view, not a source of truth: the set of non-terminal orders
// is authoritative, and the reconciliation use case can rebuild this record
// from it at any time.

type KitchenLoad struct {
	ActiveOrders       int       `json:"active_orders"`
	QueuedOrders       int       `json:"queued_orders"`
	CurrentLoadPercent float64   `json:"current_load_percent"`
	IsOverloaded       bool      `json:"is_overloaded"`
	AvgWaitMinutes     int       `json:"avg_wait_minutes"`
	UpdatedAt          time.Time `json:"updated_at"`
}
