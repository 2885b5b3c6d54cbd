package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FeedRequests counts feed lookups by context and cache outcome (hit|miss|flush).
	FeedRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefeed_feed_requests_total",
			Help: "Total number of feed requests",
		},
		[]string{"context", "result"},
	)

	// FeedRenderDuration measures how long a full feed render takes.
	FeedRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefeed_feed_render_seconds",
			Help:    "Feed render duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"context"},
	)

	// CacheEntriesPurged counts expired cache entries removed by maintenance jobs.
	CacheEntriesPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefeed_cache_entries_purged_total",
			Help: "Expired cache entries removed by the maintenance cleaner",
		},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefeed_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
