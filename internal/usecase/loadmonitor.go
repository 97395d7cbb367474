package usecase

import (
	"math"
	"sync"
	"time"

	"bistro_core/internal/domain/entities"
)

// KitchenLoadMonitor owns the single live kitchen-load snapshot.
//
// All mutation goes through its methods under one short-held mutex; nothing
// else writes the snapshot. The monitor is a derived cache over the set of
// non-terminal orders, and Rebuild lets the reconciliation pass overwrite it
// from that source of truth.
//
// Counter semantics: queued covers pending/confirmed orders, active covers
// orders the kitchen is working or holding (preparing/ready).
type KitchenLoadMonitor struct {
	mu     sync.Mutex
	cfg    CapacityConfig
	active int
	queued int

	overloaded bool
	updatedAt  time.Time

	// onUpdate, when set, receives every recomputed snapshot. Wiring uses it
	// to export the snapshot as Prometheus gauges.
	onUpdate func(entities.KitchenLoad)
}

func NewKitchenLoadMonitor(cfg CapacityConfig, onUpdate func(entities.KitchenLoad)) *KitchenLoadMonitor {
	return &KitchenLoadMonitor{
		cfg:       cfg,
		updatedAt: time.Now().UTC(),
		onUpdate:  onUpdate,
	}
}

// RecordAdmission counts a newly admitted order as queued.
func (m *KitchenLoadMonitor) RecordAdmission() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queued++
	m.recompute()
}

// RecordCookingStart moves one order from queued to active.
func (m *KitchenLoadMonitor) RecordCookingStart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.queued > 0 {
		m.queued--
	}
	m.active++
	m.recompute()
}

// RecordCompletionOrCancellation removes the order from whichever counter
// holds it.
func (m *KitchenLoadMonitor) RecordCompletionOrCancellation(fromActive bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if fromActive {
		if m.active > 0 {
			m.active--
		}
	} else if m.queued > 0 {
		m.queued--
	}
	m.recompute()
}

// Rebuild overwrites the counters from authoritative order counts.
func (m *KitchenLoadMonitor) Rebuild(active, queued int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = active
	m.queued = queued
	m.recompute()
}

// Snapshot returns a read-only copy of the live status.
func (m *KitchenLoadMonitor) Snapshot() entities.KitchenLoad {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// recompute refreshes the derived fields. Caller must hold mu.
func (m *KitchenLoadMonitor) recompute() {
	pct := m.loadPercentLocked()

	// Hysteresis: on at the high-water mark, off strictly below the low-water
	// mark.
	if !m.overloaded && pct >= m.cfg.HighWaterPercent {
		m.overloaded = true
	} else if m.overloaded && pct < m.cfg.LowWaterPercent {
		m.overloaded = false
	}

	m.updatedAt = time.Now().UTC()
	if m.onUpdate != nil {
		m.onUpdate(m.snapshotLocked())
	}
}

func (m *KitchenLoadMonitor) loadPercentLocked() float64 {
	if m.cfg.MaxCapacity <= 0 {
		return 0
	}
	return float64(m.active) / float64(m.cfg.MaxCapacity) * 100
}

func (m *KitchenLoadMonitor) snapshotLocked() entities.KitchenLoad {
	return entities.KitchenLoad{
		ActiveOrders:       m.active,
		QueuedOrders:       m.queued,
		CurrentLoadPercent: m.loadPercentLocked(),
		IsOverloaded:       m.overloaded,
		AvgWaitMinutes:     m.avgWaitLocked(),
		UpdatedAt:          m.updatedAt,
	}
}

// avgWaitLocked is a coarse heuristic: each queued order waits for a share of
// the kitchen's throughput at the middle base prep time.
func (m *KitchenLoadMonitor) avgWaitLocked() int {
	if m.cfg.MaxCapacity <= 0 {
		return 0
	}
	wait := float64(m.queued) * float64(basePrepMinutes[3]) / float64(m.cfg.MaxCapacity)
	return int(math.Round(wait))
}
