// Package metrics exposes Prometheus instrumentation for the recommendation engine and API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationRequests counts engine calls by outcome ("ok", "empty").
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviefy_recommendation_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	// ScoringDuration observes end-to-end scoring and explanation latency.
	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviefy_scoring_duration_seconds",
			Help:    "Duration of recommendation scoring in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// IndexBuilds counts index builds by outcome ("ok", "empty", "error").
	IndexBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviefy_index_builds_total",
			Help: "Total number of TF-IDF index builds by outcome",
		},
		[]string{"outcome"},
	)

	// IndexItems is the number of catalog items in the live index.
	IndexItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviefy_index_items",
			Help: "Number of catalog items in the live index",
		},
	)

	// IndexFeatures is the vocabulary size of the live index.
	IndexFeatures = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviefy_index_features",
			Help: "Vocabulary size of the live TF-IDF index",
		},
	)

	// HTTPRequestDuration observes API latency by route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviefy_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
