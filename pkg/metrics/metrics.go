package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors for the service.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	cacheHitsTotal   *prometheus.CounterVec
	cacheMissesTotal *prometheus.CounterVec

	integrationRequestsTotal *prometheus.CounterVec
}

// New registers and returns the collectors. serviceName is attached as a
// constant label so several instances can share one Prometheus.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency in seconds.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		cacheHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_hits_total",
			Help:        "Cache lookups that returned a fresh entry.",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		cacheMissesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_misses_total",
			Help:        "Cache lookups that missed or hit an expired entry.",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		integrationRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "integration_requests_total",
			Help:        "Outbound requests to upstream services by outcome.",
			ConstLabels: constLabels,
		}, []string{"target", "outcome"}),
	}
}

// ObserveHTTPRequest records one handled request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// IncCacheHit records a cache hit for the given key kind.
func (m *Metrics) IncCacheHit(kind string) {
	m.cacheHitsTotal.WithLabelValues(kind).Inc()
}

// IncCacheMiss records a cache miss for the given key kind.
func (m *Metrics) IncCacheMiss(kind string) {
	m.cacheMissesTotal.WithLabelValues(kind).Inc()
}

// IncIntegrationRequest records an outbound call. outcome is "success" or "error".
func (m *Metrics) IncIntegrationRequest(target, outcome string) {
	m.integrationRequestsTotal.WithLabelValues(target, outcome).Inc()
}
