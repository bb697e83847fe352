// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/walletsync7000/internal/model"
)

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsync7000",
		Subsystem: "explorer_client",
		Name:      "operations_total",
		Help:      "Count of explorer HTTP operations.",
	}, []string{"operation", "network", "status"})
	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletsync7000",
		Subsystem: "explorer_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of explorer HTTP operations, retries included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ExplorerClient tracks metrics for calls to the block explorer.
type ExplorerClient struct {
	network model.Network
}

// NewExplorerClient constructs a metrics collector for explorer calls.
func NewExplorerClient(network model.Network) *ExplorerClient {
	if network == "" {
		network = "unknown"
	}
	return &ExplorerClient{network: network}
}

// Observe records a single explorer call outcome and duration.
func (m ExplorerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	explorerRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	explorerRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
