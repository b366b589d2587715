package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHits tracks lookups served from the store.
	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gstats_cache_hits_total",
			Help: "Total number of cache hits",
		},
	)

	// cacheMisses tracks lookups that fell through to compute.
	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gstats_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// cacheErrors tracks store operation failures.
	cacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gstats_cache_errors_total",
			Help: "Total number of cache store errors",
		},
		[]string{"operation"}, // "get", "set", "delete", "clear"
	)
)
