package v1

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/split-star/backend/internal/split"
)

// Metrics are the Prometheus collectors for split events. They are
// registered by the router.
var Metrics = []prometheus.Collector{
	splitsCreated,
	paymentsTotal,
	splitTransitions,
}

var splitsCreated = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "splits_created_total",
		Help: "How many splits were created, partitioned by split method.",
	},
	[]string{"method"},
)

var paymentsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "split_payments_total",
		Help: "How many payments were recorded, partitioned by the resulting payment status of the member.",
	},
	[]string{"payment_status"},
)

var splitTransitions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "split_transitions_total",
		Help: "How many splits entered a status after creation, partitioned by the new status.",
	},
	[]string{"status"},
)

// observeTransition counts the status change between two versions of a split.
func observeTransition(before, after split.Split) {
	if before.Status != after.Status {
		splitTransitions.WithLabelValues(string(after.Status)).Inc()
	}
}
