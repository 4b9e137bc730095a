package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsServed counts requests by resolution outcome: "file" for a
	// directly resolved file, "fallback" for the SPA fallback, "delegated"
	// for requests handed to the default file server and "not_found" for
	// 404 responses.
	RequestsServed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spa_pages_requests_total",
		Help: "The total number of HTTP requests served, by resolution outcome",
	},
		[]string{"outcome"},
	)

	// IncludesExpanded counts include directives replaced with file contents
	IncludesExpanded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spa_pages_includes_expanded_total",
		Help: "The total number of include directives expanded successfully",
	})

	// IncludeFailures counts include directives replaced with inline error
	// comments, by reason ("missing" or "read_error")
	IncludeFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spa_pages_include_failures_total",
		Help: "The total number of include directives that could not be expanded",
	},
		[]string{"reason"},
	)

	// ServedFileSize is a histogram of sizes of files served from disk
	ServedFileSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "spa_pages_served_file_size_bytes",
		Help:    "The size in bytes of files served from disk",
		Buckets: prometheus.ExponentialBuckets(100, 8, 7),
	})

	// LimiterCachedEntries is the number of entries currently held by the
	// rate limiter LRU cache
	LimiterCachedEntries = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "spa_pages_rate_limit_cached_entries",
		Help: "The number of entries in the rate limiter LRU cache",
	},
		[]string{"op"},
	)

	// LimiterCacheRequests counts rate limiter LRU lookups by result
	LimiterCacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "spa_pages_rate_limit_cache_requests",
		Help: "The number of rate limiter LRU cache requests, by hit or miss",
	},
		[]string{"op", "cache"},
	)

	// RateLimitBlockedCount counts requests rejected by the source IP rate
	// limiter
	RateLimitBlockedCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spa_pages_rate_limit_blocked_total",
		Help: "The number of requests that exceeded the source IP rate limit",
	})
)

// MustRegister registers all application metrics with the default
// registerer. It must be called exactly once during process startup.
func MustRegister() {
	prometheus.MustRegister(
		RequestsServed,
		IncludesExpanded,
		IncludeFailures,
		ServedFileSize,
		LimiterCachedEntries,
		LimiterCacheRequests,
		RateLimitBlockedCount,
	)
}
