package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lucabaldini/labgroups/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Occupancy and roster size are gauges (they describe the state of the last
// completed run), diagnostics are counters by kind, and pass durations are
// histograms. Metric registration happens once at construction.
type PrometheusCollector struct {
	rosterSize     prometheus.Gauge
	diagnostics    *prometheus.CounterVec
	buildDuration  prometheus.Histogram
	occupancy      *prometheus.GaugeVec
	macroTotals    *prometheus.GaugeVec
	assignDuration prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "labgroups" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "labgroups"
	}

	c := &PrometheusCollector{
		rosterSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "roster_size",
			Help:      "Number of students in the built roster.",
		}),
		diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "diagnostics_total",
			Help:      "Validation findings by kind.",
		}, []string{"kind"}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "roster_build_duration_seconds",
			Help:      "Time taken to build the roster.",
			Buckets:   prometheus.DefBuckets,
		}),
		occupancy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "turn_group_occupancy",
			Help:      "Final number of students assigned to each turn-group.",
		}, []string{"group"}),
		macroTotals: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "macro_group_total",
			Help:      "Aggregated student count per macro-group.",
		}, []string{"group"}),
		assignDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assignment_duration_seconds",
			Help:      "Time taken by the assignment pass.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.rosterSize,
		c.diagnostics,
		c.buildDuration,
		c.occupancy,
		c.macroTotals,
		c.assignDuration,
	)

	return c
}

// RecordRosterSize sets the roster size gauge.
func (c *PrometheusCollector) RecordRosterSize(count int) {
	c.rosterSize.Set(float64(count))
}

// RecordDiagnostic increments the counter for the given diagnostic kind.
func (c *PrometheusCollector) RecordDiagnostic(kind types.DiagnosticKind) {
	c.diagnostics.WithLabelValues(string(kind)).Inc()
}

// RecordBuildDuration observes the roster build duration.
func (c *PrometheusCollector) RecordBuildDuration(seconds float64) {
	c.buildDuration.Observe(seconds)
}

// RecordGroupOccupancy sets the occupancy gauge for one turn-group.
func (c *PrometheusCollector) RecordGroupOccupancy(group types.TurnGroup, count int) {
	c.occupancy.WithLabelValues(group.String()).Set(float64(count))
}

// RecordMacroGroupTotal sets the aggregated gauge for one macro-group.
func (c *PrometheusCollector) RecordMacroGroupTotal(group types.MacroGroup, count int) {
	c.macroTotals.WithLabelValues(group.String()).Set(float64(count))
}

// RecordAssignDuration observes the assignment pass duration.
func (c *PrometheusCollector) RecordAssignDuration(seconds float64) {
	c.assignDuration.Observe(seconds)
}
