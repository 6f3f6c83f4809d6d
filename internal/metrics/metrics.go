package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ai_service"

// Metrics bundles the service collectors with the registry they are bound to.
// A dedicated registry keeps routers built in tests independent of each other.
type Metrics struct {
	registry *prometheus.Registry

	// RequestCounter tracks HTTP requests by method, route and status
	RequestCounter *prometheus.CounterVec
	// ResponseTime measures HTTP latency by method, route and status
	ResponseTime *prometheus.HistogramVec
	// PanicCounter counts recovered handler panics
	PanicCounter prometheus.Counter
	// FilterCounter counts extracted filters by kind (bedrooms, max_price, keyword)
	FilterCounter *prometheus.CounterVec
	// EstimateCounter counts price estimates by city tier
	EstimateCounter *prometheus.CounterVec
}

// New creates and registers all collectors on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests.",
		}, []string{"method", "path", "status"}),
		ResponseTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_response_time_seconds",
			Help:      "HTTP response time in seconds.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "path", "status"}),
		PanicCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "panics_recovered_total",
			Help:      "Handler panics recovered by middleware.",
		}),
		FilterCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_filters_extracted_total",
			Help:      "Filters extracted from natural-language queries.",
		}, []string{"filter"}),
		EstimateCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_estimates_total",
			Help:      "Price estimates served, by city.",
		}, []string{"city"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestCounter,
		m.ResponseTime,
		m.PanicCounter,
		m.FilterCounter,
		m.EstimateCounter,
	)

	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(method, path, status string, seconds float64) {
	m.RequestCounter.WithLabelValues(method, path, status).Inc()
	m.ResponseTime.WithLabelValues(method, path, status).Observe(seconds)
}

// RecordFilter records an extracted filter of the given kind
func (m *Metrics) RecordFilter(filter string) {
	m.FilterCounter.WithLabelValues(filter).Inc()
}

// RecordEstimate records a served estimate. Unknown cities share one label
// to keep cardinality bounded.
func (m *Metrics) RecordEstimate(city string, known bool) {
	if !known {
		city = "other"
	}
	m.EstimateCounter.WithLabelValues(city).Inc()
}
