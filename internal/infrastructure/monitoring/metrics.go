package monitoring

import (
	"bistro_core/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	admissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admissions_total",
		Help: "Order admission decisions by outcome.",
	}, []string{"outcome"})

	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_transitions_total",
		Help: "Committed order lifecycle transitions by target status.",
	}, []string{"to"})

	reconciliationRequiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconciliation_required_total",
		Help: "Slot releases that failed after a status commit.",
	})

	kitchenLoadPercent = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kitchen_load_percent",
		Help: "Current kitchen load as a percentage of configured capacity.",
	})

	kitchenOverloaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kitchen_overloaded",
		Help: "1 while the overload flag is set, 0 otherwise.",
	})

	kitchenActiveOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kitchen_active_orders",
		Help: "Orders the kitchen is working or holding.",
	})

	kitchenQueuedOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kitchen_queued_orders",
		Help: "Admitted orders not yet started.",
	})
)

// ObserveAdmission records one admission decision.
func ObserveAdmission(outcome string) {
	admissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveTransition records one committed lifecycle transition.
func ObserveTransition(to entities.OrderStatus) {
	transitionsTotal.WithLabelValues(string(to)).Inc()
}

// ObserveReconciliationRequired records a failed post-commit release.
func ObserveReconciliationRequired() {
	reconciliationRequiredTotal.Inc()
}

// SetKitchenLoad exports the live snapshot. Wired as the load monitor's
// update hook.
func SetKitchenLoad(load entities.KitchenLoad) {
	kitchenLoadPercent.Set(load.CurrentLoadPercent)
	if load.IsOverloaded {
		kitchenOverloaded.Set(1)
	} else {
		kitchenOverloaded.Set(0)
	}
	kitchenActiveOrders.Set(float64(load.ActiveOrders))
	kitchenQueuedOrders.Set(float64(load.QueuedOrders))
}
