package analog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for simulator observability. Registered once
// globally to avoid duplicate registration errors when multiple
// simulators coexist.
var (
	simulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibduality_simulations_total",
			Help: "Total number of analog simulation runs by mode",
		},
		[]string{"mode"},
	)

	simulationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibduality_simulation_failures_total",
			Help: "Total number of rejected simulation runs by mode",
		},
		[]string{"mode"},
	)

	multiplicationErrorPercent = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fibduality_multiplication_error_percent",
			Help:    "Relative reconstruction error of multiplication runs, in percent",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)
)

const (
	modeMultiplication = "multiplication"
	modeGCD            = "gcd"
)
