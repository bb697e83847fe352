package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/walletsync7000/internal/model"
)

var (
	scannerBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletsync7000",
		Subsystem: "scanner",
		Name:      "batches_total",
		Help:      "Count of scanned address batches.",
	}, []string{"branch", "network", "status"})

	scannerBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletsync7000",
		Subsystem: "scanner",
		Name:      "batch_duration_seconds",
		Help:      "Duration of scanning one address batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"branch", "network", "status"})

	scannerBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletsync7000",
		Subsystem: "scanner",
		Name:      "batch_size",
		Help:      "Number of addresses fetched per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"branch", "network"})

	scannerBranchAddresses = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "walletsync7000",
		Subsystem: "scanner",
		Name:      "branch_addresses_scanned",
		Help:      "Addresses scanned during the last completed branch sync.",
	}, []string{"branch", "network"})
)

// Scanner tracks metrics for the gap-limited address scanner.
type Scanner struct {
	network model.Network
}

// NewScanner constructs a metrics collector for the scanner.
func NewScanner(network model.Network) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

// ObserveBatch records one scanned address batch.
func (m Scanner) ObserveBatch(branch model.Branch, err error, addresses int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	scannerBatchesTotal.WithLabelValues(branch.String(), string(m.network), status).Inc()
	scannerBatchDuration.WithLabelValues(branch.String(), string(m.network), status).
		Observe(time.Since(started).Seconds())
	scannerBatchSize.WithLabelValues(branch.String(), string(m.network)).Observe(float64(addresses))
}

// ObserveBranchDone records completion of a full branch sync.
func (m Scanner) ObserveBranchDone(branch model.Branch, scanned uint32) {
	scannerBranchAddresses.WithLabelValues(branch.String(), string(m.network)).Set(float64(scanned))
}
