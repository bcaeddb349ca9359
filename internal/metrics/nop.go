// Package metrics provides MetricsCollector implementations for the labgroups library.
package metrics

import "github.com/lucabaldini/labgroups/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RosterMetrics implementation

// RecordRosterSize discards the roster size metric.
func (n *NopMetrics) RecordRosterSize(_ /* count */ int) {
	// No-op
}

// RecordDiagnostic discards the diagnostic count metric.
func (n *NopMetrics) RecordDiagnostic(_ /* kind */ types.DiagnosticKind) {
	// No-op
}

// RecordBuildDuration discards the build duration metric.
func (n *NopMetrics) RecordBuildDuration(_ /* seconds */ float64) {
	// No-op
}

// AssignmentMetrics implementation

// RecordGroupOccupancy discards the turn-group occupancy metric.
func (n *NopMetrics) RecordGroupOccupancy(_ /* group */ types.TurnGroup, _ /* count */ int) {
	// No-op
}

// RecordMacroGroupTotal discards the macro-group total metric.
func (n *NopMetrics) RecordMacroGroupTotal(_ /* group */ types.MacroGroup, _ /* count */ int) {
	// No-op
}

// RecordAssignDuration discards the assignment duration metric.
func (n *NopMetrics) RecordAssignDuration(_ /* seconds */ float64) {
	// No-op
}
