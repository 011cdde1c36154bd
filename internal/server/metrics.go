// Package server provides the HTTP server implementation for the
// fibduality simulation API.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metrics for server-level observability. Simulation metrics
// (run counts, error distribution) are tracked directly in the analog
// package.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fibduality_active_requests",
		Help: "Current number of active requests",
	})
	totalRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibduality_requests_total",
		Help: "Total number of requests received",
	})
)

// Metrics exposes server metrics in Prometheus format.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates a new Metrics instance backed by the default
// Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// IncrementActiveRequests increments the active requests gauge and the
// total requests counter.
func (m *Metrics) IncrementActiveRequests() {
	activeRequests.Inc()
	totalRequests.Inc()
}

// DecrementActiveRequests decrements the active requests gauge.
func (m *Metrics) DecrementActiveRequests() {
	activeRequests.Dec()
}

// WritePrometheus writes metrics in Prometheus text format to the HTTP
// response.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
