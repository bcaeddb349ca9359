package labgroups

import "github.com/lucabaldini/labgroups/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the
// library's core types and interfaces. It uses type aliases to re-export
// definitions from the `types` subpackage, which contains the actual
// implementations.
//
// This pattern solves the "import cycle" problem by allowing adapter
// packages to depend on `types` without depending on the root `labgroups`
// package, while still providing a convenient `labgroups.Student`,
// `labgroups.Taxonomy`, etc. for users.
type (
	Identifier = types.Identifier
	MacroGroup = types.MacroGroup
	RoomGroup  = types.RoomGroup
	TurnGroup  = types.TurnGroup
	Taxonomy   = types.Taxonomy
	Overrides  = types.Overrides
	RawStudent = types.RawStudent
	Student    = types.Student
	Occupancy  = types.Occupancy
	Diagnostic = types.Diagnostic
	RoomReport = types.RoomReport
)

// Re-export interfaces from the internal types package for convenience.
type (
	AssignmentStrategy = types.AssignmentStrategy
	RosterView         = types.RosterView
	RosterSource       = types.RosterSource
	OverrideSource     = types.OverrideSource
	ReportSink         = types.ReportSink
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
)

// Re-export DiagnosticKind and its constants from the types package.
type DiagnosticKind = types.DiagnosticKind

const (
	DiagnosticOverrideMismatch       = types.DiagnosticOverrideMismatch
	DiagnosticNameMismatch           = types.DiagnosticNameMismatch
	DiagnosticDuplicateStudent       = types.DiagnosticDuplicateStudent
	DiagnosticDuplicateName          = types.DiagnosticDuplicateName
	DiagnosticCompanionNotFound      = types.DiagnosticCompanionNotFound
	DiagnosticCompanionAsymmetry     = types.DiagnosticCompanionAsymmetry
	DiagnosticCompanionGroupMismatch = types.DiagnosticCompanionGroupMismatch
)
