package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Allocation results
const (
	ResultSuccess   = "success"
	ResultExhausted = "exhausted"
	ResultError     = "error"
)

// Metrics owns a private registry so several instances can coexist in tests.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry      *prometheus.Registry
	allocations   *prometheus.CounterVec
	collisions    prometheus.Counter
	cacheLookups  *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		allocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shortener_allocations_total",
			Help: "Short code allocations by result",
		}, []string{"result"}),
		collisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shortener_collisions_total",
			Help: "Candidate short codes rejected by the uniqueness constraint",
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shortener_cache_lookups_total",
			Help: "Lookup cache hits and misses",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "path", "code"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	m.registry.MustRegister(
		m.allocations,
		m.collisions,
		m.cacheLookups,
		m.httpRequests,
		m.httpDurations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// IncAllocation counts a finished Allocate call
func (m *Metrics) IncAllocation(result string) {
	if m == nil {
		return
	}
	m.allocations.WithLabelValues(result).Inc()
}

func (m *Metrics) IncCollision() {
	if m == nil {
		return
	}
	m.collisions.Inc()
}

func (m *Metrics) IncCacheLookup(hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.cacheLookups.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, path, code string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, code).Inc()
	m.httpDurations.WithLabelValues(method, path).Observe(seconds)
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
