package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationDuration tracks the latency of the gateway operations
	// (create_campaign, pledge, list_campaigns, list_donations) labelled
	// by outcome. Network-bound operations dominate, so the buckets lean
	// towards the slow end.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crowdfund_operation_duration_seconds",
			Help:    "Duration of crowdfunding gateway operations in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		},
		[]string{"operation", "status"},
	)

	// PinnedBytes counts the total image payload handed to the content
	// pinner, successful pins only.
	PinnedBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crowdfund_pinned_bytes_total",
			Help: "Total bytes of image content pinned to the storage network",
		},
	)
)

// ObserveOperation records one finished operation with its outcome.
func ObserveOperation(operation, status string, elapsed time.Duration) {
	OperationDuration.WithLabelValues(operation, status).Observe(elapsed.Seconds())
}
