package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sakila API metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sakila",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sakila",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Entity operations by outcome (ok, not_found, error)
	EntityOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sakila",
			Subsystem: "api",
			Name:      "entity_operations_total",
			Help:      "Total entity service operations",
		},
		[]string{"entity", "operation", "outcome"},
	)
)

const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// RecordOperation counts one service operation on entity.
func RecordOperation(entity, operation, outcome string) {
	EntityOperations.WithLabelValues(entity, operation, outcome).Inc()
}
