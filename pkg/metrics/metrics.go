// Package metrics provides the centralized Prometheus metrics registry for
// the stats client. All metrics are defined in their respective packages
// (client, cache) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the stats client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - gstats_cache_hits_total (Counter): Cache hits
//   - gstats_cache_misses_total (Counter): Cache misses
//   - gstats_cache_errors_total{operation} (Counter): Cache operation errors
//
// Request Metrics (pkg/client):
//   - gstats_requests_total{family, status} (Counter): Total requests by endpoint family and HTTP status
//   - gstats_request_duration_seconds{family} (Histogram): Request duration by endpoint family
//   - gstats_errors_total{class} (Counter): Errors by class (api, client, transport)
//
// Retry Metrics (pkg/client):
//   - gstats_retries_total (Counter): Retry attempts
//   - gstats_retry_backoff_seconds (Histogram): Backoff duration before each retry
//   - gstats_retry_exhausted_total (Counter): Requests that exhausted max retries
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(gstats_cache_hits_total[5m])) /
//   (sum(rate(gstats_cache_hits_total[5m])) + sum(rate(gstats_cache_misses_total[5m])))
//
//   # Request Error Rate
//   rate(gstats_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(gstats_request_duration_seconds_bucket[5m]))
//
//   # Share of requests answered by retcode errors
//   rate(gstats_errors_total{class="api"}[5m]) / rate(gstats_requests_total[5m])
