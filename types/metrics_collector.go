package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The library calls these methods synchronously from its single processing
// pass, so implementations need not be thread-safe for library use, but
// SHOULD be if shared with other instrumentation.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	RosterMetrics
	AssignmentMetrics
}

// RosterMetrics defines metrics for roster construction and validation.
type RosterMetrics interface {
	// RecordRosterSize sets the current roster size (gauge metric).
	//
	// Parameters:
	//   - count: Number of students in the built roster
	RecordRosterSize(count int)

	// RecordDiagnostic counts one validation finding by kind.
	//
	// Parameters:
	//   - kind: The diagnostic kind
	RecordDiagnostic(kind DiagnosticKind)

	// RecordBuildDuration records the time taken to build the roster.
	//
	// Parameters:
	//   - seconds: Build duration in seconds
	RecordBuildDuration(seconds float64)
}

// AssignmentMetrics defines metrics for the assignment pass.
type AssignmentMetrics interface {
	// RecordGroupOccupancy sets the final occupancy for one turn-group.
	//
	// Parameters:
	//   - group: Leaf turn-group
	//   - count: Number of students assigned to it
	RecordGroupOccupancy(group TurnGroup, count int)

	// RecordMacroGroupTotal sets the aggregated student count for one macro-group.
	//
	// Parameters:
	//   - group: Macro-group
	//   - count: Total students across its turn-groups
	RecordMacroGroupTotal(group MacroGroup, count int)

	// RecordAssignDuration records the time taken by the assignment pass.
	//
	// Parameters:
	//   - seconds: Assignment duration in seconds
	RecordAssignDuration(seconds float64)
}
