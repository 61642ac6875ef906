// Package metrics owns the prometheus registry and the collectors exported on /metrics.
package metrics

import (
	"net/http"
	"time"

	"adchecker/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "adchecker"

// Metrics groups every collector of the service on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPInFlight        prometheus.Gauge
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	upstreamCallsTotal   *prometheus.CounterVec
	upstreamCallDuration *prometheus.HistogramVec
	cacheLookupsTotal    *prometheus.CounterVec
	oauthExchangesTotal  *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "In-flight HTTP requests.",
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latencies in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		upstreamCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "graph_api_calls_total",
				Help:      "Meta Graph API calls by endpoint and outcome.",
			},
			[]string{"endpoint", "outcome"},
		),
		upstreamCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "graph_api_call_duration_seconds",
				Help:      "Meta Graph API call latencies in seconds.",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
			},
			[]string{"endpoint"},
		),
		cacheLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_cache_lookups_total",
				Help:      "Account cache reads by result.",
			},
			[]string{"result"},
		),
		oauthExchangesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "oauth_exchanges_total",
				Help:      "OAuth callbacks by outcome.",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPInFlight,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.upstreamCallsTotal,
		m.upstreamCallDuration,
		m.cacheLookupsTotal,
		m.oauthExchangesTotal,
	)

	return m
}

// NewRecorder exposes m as the domain metrics recorder.
func NewRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveCacheLookup(result string) {
	m.cacheLookupsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveOAuthExchange(outcome string) {
	m.oauthExchangesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveUpstreamCall(endpoint, outcome string, elapsed time.Duration) {
	m.upstreamCallsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.upstreamCallDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
