package middleware

import (
	"strconv"
	"time"

	"adchecker/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latencies per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle instruments the downstream handlers.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.metrics.HTTPInFlight.Inc()
		defer m.metrics.HTTPInFlight.Dec()

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		// Route templates keep label cardinality bounded.
		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		status := strconv.Itoa(c.Response().Status)
		method := c.Request().Method

		m.metrics.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
		m.metrics.HTTPRequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())

		return err
	}
}
