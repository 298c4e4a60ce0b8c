package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks request latency per route and status
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "questboard_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)

	// CatalogSearchDuration tracks the latency of the catalog query pipeline
	CatalogSearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "questboard_catalog_search_duration_seconds",
			Help: "Duration of catalog search requests in seconds",
			Buckets: []float64{
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
			},
		},
	)

	// VotesSubmitted counts vote submissions by outcome
	VotesSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "questboard_votes_submitted_total",
			Help: "Vote submissions by outcome",
		},
		[]string{"outcome"}, // accepted, duplicate, not_found, malformed, error
	)
)

// RecordHTTPRequest records one served request
func RecordHTTPRequest(route, status string, duration float64) {
	HTTPRequestDuration.WithLabelValues(route, status).Observe(duration)
}

// RecordSearch records the duration of a catalog search
func RecordSearch(duration float64) {
	CatalogSearchDuration.Observe(duration)
}

// RecordVote records the outcome of a vote submission
func RecordVote(outcome string) {
	VotesSubmitted.WithLabelValues(outcome).Inc()
}
