// Package metrics provides Prometheus metrics for digest.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "digest"

// Summary outcomes.
const (
	StatusOK       = "ok"
	StatusInvalid  = "invalid"
	StatusEmpty    = "empty"
	StatusUpstream = "upstream"
	StatusError    = "error"
)

// Document outcomes.
const (
	DocumentArchived = "archived"
	DocumentFailed   = "failed"
)

var (
	// SummariesTotal counts summaries served over HTTP.
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summaries_total",
			Help:      "Total number of summarize requests",
		},
		[]string{"target", "status"},
	)

	// SummaryDuration measures summarize requests end to end.
	SummaryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "summary_duration_seconds",
			Help:      "Duration of summarize requests in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"target"},
	)

	// DocumentsTotal counts inbox documents by outcome.
	DocumentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Total number of inbox documents processed",
		},
		[]string{"status"},
	)

	// InFlight is the number of summaries currently running.
	InFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "summaries_in_flight",
			Help:      "Summaries currently running",
		},
	)
)

// RecordSummary records one summarize request.
func RecordSummary(target, status string, seconds float64) {
	SummariesTotal.WithLabelValues(target, status).Inc()
	SummaryDuration.WithLabelValues(target).Observe(seconds)
}

// RecordDocument records one inbox document.
func RecordDocument(status string) {
	DocumentsTotal.WithLabelValues(status).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
