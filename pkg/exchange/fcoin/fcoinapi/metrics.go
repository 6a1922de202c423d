package fcoinapi

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyMetrics = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "fcoin_api_latency_ms",
		Help:    "The histogram of latency returned by the fcoin API",
		Buckets: prometheus.ExponentialBuckets(20, 2, 9), // 20ms to 5120ms
	},
	[]string{"method", "path", "status_code"},
)

var requestCounterMetrics = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fcoin_api_requests_total",
		Help: "The number of requests sent to the fcoin API",
	},
	[]string{"method", "path", "status_code"},
)

// recordRequestMetrics uses status code "0" for requests that never got a response.
func recordRequestMetrics(method, path string, statusCode int, latency time.Duration) {
	labels := prometheus.Labels{
		"method":      method,
		"path":        path,
		"status_code": strconv.Itoa(statusCode),
	}

	latencyMetrics.With(labels).Observe(float64(latency.Milliseconds()))
	requestCounterMetrics.With(labels).Inc()
}
