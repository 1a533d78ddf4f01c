// Package metrics holds the Prometheus collectors recorded by nsjourney.
//
// The CLI is short-lived, so nothing is served over HTTP. When a textfile
// path is configured, [WriteTextfile] dumps the registry in the format read
// by the node-exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the registry every nsjourney collector is registered with.
var Registry = prometheus.NewRegistry()

var (
	// Wizard metrics
	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nsjourney",
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Total number of wizard navigation actions by action and result",
		},
		[]string{"action", "result"},
	)

	validationFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nsjourney",
			Subsystem: "wizard",
			Name:      "validation_failures_total",
			Help:      "Total number of step validation failures by step",
		},
		[]string{"step"},
	)

	bootstrapTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nsjourney",
			Subsystem: "wizard",
			Name:      "bootstrap_total",
			Help:      "Total number of wizard startups by outcome",
		},
		[]string{"result"},
	)

	// Forecast metrics
	forecastRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nsjourney",
			Subsystem: "forecast",
			Name:      "requests_total",
			Help:      "Total number of forecast API requests by result",
		},
		[]string{"result"},
	)

	forecastRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "nsjourney",
			Subsystem: "forecast",
			Name:      "request_duration_seconds",
			Help:      "Duration of forecast API requests in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8), // 50ms to ~6.4s
		},
	)
)

func init() {
	Registry.MustRegister(
		transitionsTotal,
		validationFailuresTotal,
		bootstrapTotal,
		forecastRequestsTotal,
		forecastRequestDuration,
	)
}

// RecordTransition records a wizard action ("advance", "retreat", "reset",
// "save") and its result.
func RecordTransition(action, result string) {
	transitionsTotal.WithLabelValues(action, result).Inc()
}

// RecordValidationFailure records a failed step validation.
func RecordValidationFailure(step int) {
	validationFailuresTotal.WithLabelValues(fmt.Sprintf("%d", step)).Inc()
}

// RecordBootstrap records how a wizard startup resolved ("loaded", "empty",
// "malformed", "error").
func RecordBootstrap(result string) {
	bootstrapTotal.WithLabelValues(result).Inc()
}

// RecordForecastRequest records a forecast API call.
func RecordForecastRequest(result string, elapsed time.Duration) {
	forecastRequestsTotal.WithLabelValues(result).Inc()
	forecastRequestDuration.Observe(elapsed.Seconds())
}

// WriteTextfile writes the registry to path atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
