// Package metrics provides Prometheus metrics for the profiling pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the profiling pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Ingestion Metrics - Data quality at the front door
	rowsIngested prometheus.Counter
	rowsDropped  prometheus.Counter

	// Pipeline Metrics - Per-athlete outcomes
	athletesProfiled prometheus.Counter
	athletesSkipped  *prometheus.CounterVec
	runsCompleted    prometheus.Counter

	// Profile Quality Metrics
	fviPercent     prometheus.Histogram
	athleteLatency prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// FVI histogram buckets in percent, centered on the balanced band.
var defaultFVIBuckets = []float64{20, 40, 60, 80, 90, 100, 110, 125, 140, 160, 200} //nolint:gochecknoglobals // shared default bucket layout

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fvprofile",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rowsIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_ingested_total",
		Help:      "Total number of raw trial rows read from the source",
	})

	m.rowsDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_dropped_total",
		Help:      "Total number of rows dropped by validation (data quality indicator)",
	})

	m.athletesProfiled = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "athletes_profiled_total",
		Help:      "Total number of athletes that produced a profile",
	})

	m.athletesSkipped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "athletes_skipped_total",
			Help:      "Total number of athletes skipped, by reason",
		},
		[]string{"reason"},
	)

	m.runsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_completed_total",
		Help:      "Total number of completed analysis runs",
	})

	m.fviPercent = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fvi_percent",
		Help:      "Histogram of computed force-velocity imbalance percentages",
		Buckets:   defaultFVIBuckets,
	})

	m.athleteLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "athlete_processing_latency_milliseconds",
		Help:      "Per-athlete pipeline latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// Package-level recorders operating on the global manager.

// RecordRowsIngested adds n to the ingested-row counter.
func RecordRowsIngested(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.rowsIngested.Add(float64(n))
	}
}

// RecordRowDropped increments the dropped-row counter.
func RecordRowDropped() {
	if globalManager.enabled {
		globalManager.rowsDropped.Inc()
	}
}

// RecordAthleteProfiled increments the profiled-athlete counter.
func RecordAthleteProfiled() {
	if globalManager.enabled {
		globalManager.athletesProfiled.Inc()
	}
}

// RecordAthleteSkipped increments the skipped-athlete counter for a reason.
func RecordAthleteSkipped(reason string) {
	if globalManager.enabled {
		globalManager.athletesSkipped.WithLabelValues(reason).Inc()
	}
}

// RecordRunCompleted increments the completed-run counter.
func RecordRunCompleted() {
	if globalManager.enabled {
		globalManager.runsCompleted.Inc()
	}
}

// ObserveFVIPercent records one computed imbalance percentage.
func ObserveFVIPercent(v float64) {
	if globalManager.enabled {
		globalManager.fviPercent.Observe(v)
	}
}

// ObserveAthleteLatency records one per-athlete pipeline latency in milliseconds.
func ObserveAthleteLatency(latencyMs float64) {
	if globalManager.enabled {
		globalManager.athleteLatency.Observe(latencyMs)
	}
}

// GetRegistry returns the custom registry backing the global manager,
// suitable for an HTTP exposition handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
