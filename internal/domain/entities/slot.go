package entities

import "strings"

// SlotType affects the default capacity a slot is provisioned with.

type SlotType string

const (
	SlotTypeRegular SlotType = "regular"
	SlotTypePeak    SlotType = "peak"
	SlotTypeOffPeak SlotType = "off_peak"
)

// TimeSlot is a (date, time-bucket) capacity bucket persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: slot_key ("2006-01-02#15:04")
//   - GSI1 (date-index): date
//
// CurrentOrders only moves through paired conditional reserve/release writes;
// it never exceeds MaxOrders and never goes negative.

type TimeSlot struct {
	Date          string   `json:"date"`
	TimeBucket    string   `json:"time_bucket"`
	SlotType      SlotType `json:"slot_type"`
	MaxOrders     int      `json:"max_orders"`
	CurrentOrders int      `json:"current_orders"`
	IsAvailable   bool     `json:"is_available"`
}

// Key returns the storage key for the slot.
func (s TimeSlot) Key() string {
	return MakeSlotKey(s.Date, s.TimeBucket)
}

// IsFull returns true if the slot has no remaining capacity.
func (s TimeSlot) IsFull() bool {
	return s.CurrentOrders >= s.MaxOrders
}

// OccupancyRate returns the reserved share as a percentage (0-100).
func (s TimeSlot) OccupancyRate() float64 {
	if s.MaxOrders == 0 {
		return 0
	}
	return float64(s.CurrentOrders) / float64(s.MaxOrders) * 100
}

// MakeSlotKey builds the composite PK for a (date, bucket) pair.
func MakeSlotKey(date, timeBucket string) string {
	return date + "#" + timeBucket
}

// SplitSlotKey is the inverse of MakeSlotKey. Returns empty strings for a
// malformed key.
func SplitSlotKey(key string) (date, timeBucket string) {
	parts := strings.SplitN(key, "#", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}
