// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchSubmissions counts controller submissions by how they settled:
	// results, server_error, transport_error, validation_error.
	SearchSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_submissions_total",
			Help: "Total number of keyword submissions handled by the search controller",
		},
		[]string{"outcome"},
	)

	SearchStaleResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_stale_responses_total",
			Help: "Responses discarded because a newer search had started",
		},
	)

	SearchRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_request_duration_seconds",
			Help:    "Round trip time of search requests issued by the controller",
			Buckets: prometheus.DefBuckets,
		},
	)

	EndpointSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "endpoint_searches_total",
			Help: "Searches served by POST /search",
		},
		[]string{"data_source", "outcome"},
	)

	DetailCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_detail_cache_lookups_total",
			Help: "Store detail cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)
)
