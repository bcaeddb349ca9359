package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucabaldini/labgroups/types"
)

func TestNopMetrics(t *testing.T) {
	// The no-op collector must satisfy the full interface and never panic.
	var collector types.MetricsCollector = NewNop()

	require.NotPanics(t, func() {
		collector.RecordRosterSize(42)
		collector.RecordDiagnostic(types.DiagnosticCompanionNotFound)
		collector.RecordBuildDuration(0.01)
		collector.RecordGroupOccupancy("A1-1-1", 5)
		collector.RecordMacroGroupTotal("A1", 30)
		collector.RecordAssignDuration(0.02)
	})
}
