package usecase

import (
	"os"
	"strconv"

	"bistro_core/internal/domain/entities"
)

// CapacityConfig carries the operational tuning parameters for admission and
// capacity tracking. All values come from the environment; nothing in the
// core hard-codes them.
type CapacityConfig struct {
	// MaxCapacity is the number of orders the kitchen can prepare at once.
	MaxCapacity int
	// HighWaterPercent flips the overload flag on; LowWaterPercent flips it
	// back off. Keeping them apart prevents flapping near the boundary.
	HighWaterPercent float64
	LowWaterPercent  float64
	// LoadPenaltySlope is the extra prep minutes per load point above the
	// high-water threshold.
	LoadPenaltySlope float64

	// LookaheadDays bounds the findNextAvailable scan.
	LookaheadDays int
	// OpenHour/CloseHour bound the schedulable day (24h clock, close exclusive).
	OpenHour  int
	CloseHour int

	// Default slot capacities by type.
	DefaultRegular int
	DefaultPeak    int
	DefaultOffPeak int
}

// CapacityConfigFromEnv reads the tuning parameters with local-friendly
// defaults.
func CapacityConfigFromEnv() CapacityConfig {
	return CapacityConfig{
		MaxCapacity:      envInt("KITCHEN_MAX_CAPACITY", 15),
		HighWaterPercent: envFloat("OVERLOAD_HIGH_WATER_PERCENT", 85),
		LowWaterPercent:  envFloat("OVERLOAD_LOW_WATER_PERCENT", 70),
		LoadPenaltySlope: envFloat("LOAD_PENALTY_SLOPE", 0.5),
		LookaheadDays:    envInt("SLOT_LOOKAHEAD_DAYS", 14),
		OpenHour:         envInt("SLOT_OPEN_HOUR", 11),
		CloseHour:        envInt("SLOT_CLOSE_HOUR", 22),
		DefaultRegular:   envInt("SLOT_DEFAULT_REGULAR", 4),
		DefaultPeak:      envInt("SLOT_DEFAULT_PEAK", 6),
		DefaultOffPeak:   envInt("SLOT_DEFAULT_OFF_PEAK", 2),
	}
}

// DefaultMaxOrders returns the configured ceiling for a slot type.
func (c CapacityConfig) DefaultMaxOrders(t entities.SlotType) int {
	switch t {
	case entities.SlotTypePeak:
		return c.DefaultPeak
	case entities.SlotTypeOffPeak:
		return c.DefaultOffPeak
	default:
		return c.DefaultRegular
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
