package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search management API metrics.
var (
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchprov",
			Name:      "api_requests_total",
			Help:      "Total number of search management API requests",
		},
		[]string{"op", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchprov",
			Name:      "api_request_duration_seconds",
			Help:      "Search management API request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"op"},
	)

	IndexerRunsThrottledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchprov",
			Name:      "indexer_runs_throttled_total",
			Help:      "Indexer run triggers rejected with 429",
		},
		[]string{"indexer"},
	)

	IndexerResetsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchprov",
			Name:      "indexer_resets_total",
			Help:      "Existing indexers reset before re-provisioning",
		},
		[]string{"indexer"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers the metrics with the default registry. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(IndexerRunsThrottledTotal)
	prometheus.MustRegister(IndexerResetsTotal)
	searchMetricsRegistered = true
}

// ObserveAPICall records one management API call. status is 0 for transport failures.
func ObserveAPICall(op string, status int, took time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	APIRequestsTotal.WithLabelValues(op, label).Inc()
	APIRequestDuration.WithLabelValues(op).Observe(took.Seconds())
}

// WriteTextfile dumps the default registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
