// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formfillout_http_requests_total",
			Help: "HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "formfillout_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// UpstreamRequestsTotal counts submissions API calls by HTTP status, or by
	// failure kind when no status was received.
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formfillout_upstream_requests_total",
			Help: "Upstream requests",
		},
		[]string{"upstream", "status"},
	)

	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "formfillout_upstream_latency_seconds",
			Help:    "Upstream latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"upstream"},
	)

	UpstreamBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "formfillout_upstream_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"upstream"},
	)

	// FilterOutcomesTotal counts how each filteredResponses call was served.
	FilterOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formfillout_filter_outcomes_total",
			Help: "Filter outcomes",
		},
		[]string{"outcome"},
	)

	FilterSurvivors = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "formfillout_filter_survivors",
			Help:    "Responses left after filtering",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 150},
		},
	)
)

const (
	OutcomeFiltered    = "filtered"
	OutcomePassthrough = "passthrough"
	OutcomeDegraded    = "degraded"
	OutcomeRejected    = "rejected"
	OutcomeFailed      = "failed"
)

const (
	UpstreamStatusError       = "error"
	UpstreamStatusCircuitOpen = "circuit_open"
	UpstreamStatusThrottled   = "throttled"
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		UpstreamRequestsTotal,
		UpstreamLatency,
		UpstreamBreakerState,
		FilterOutcomesTotal,
		FilterSurvivors,
	)
}
