package types

import "fmt"

// DiagnosticKind classifies a soft validation finding.
type DiagnosticKind string

const (
	// DiagnosticOverrideMismatch - the declared macro-group disagrees with
	// the override table (or the modular default). Processing continues with
	// the declared value.
	DiagnosticOverrideMismatch DiagnosticKind = "override_mismatch"

	// DiagnosticNameMismatch - the form-supplied display name disagrees with
	// the full name computed from the name and surname cells.
	DiagnosticNameMismatch DiagnosticKind = "name_mismatch"

	// DiagnosticDuplicateStudent - a row reuses an identifier already in the
	// roster; the earlier entry is overwritten.
	DiagnosticDuplicateStudent DiagnosticKind = "duplicate_student"

	// DiagnosticDuplicateName - two students with distinct identifiers share
	// a full name. The name index points at the later row, so companion
	// references to that name resolve to it.
	DiagnosticDuplicateName DiagnosticKind = "duplicate_name"

	// DiagnosticCompanionNotFound - the declared companion's full name does
	// not exist in the roster. The companion link is treated as absent for
	// assignment purposes.
	DiagnosticCompanionNotFound DiagnosticKind = "companion_not_found"

	// DiagnosticCompanionAsymmetry - the companion's own back-reference does
	// not match the student. No correction is applied.
	DiagnosticCompanionAsymmetry DiagnosticKind = "companion_asymmetry"

	// DiagnosticCompanionGroupMismatch - paired students declare different
	// macro-groups. This does not prevent assignment.
	DiagnosticCompanionGroupMismatch DiagnosticKind = "companion_group_mismatch"
)

// IsWarning reports whether the finding is informational rather than an
// error. Name mismatches and shared full names are demoted to warnings: both
// students stay in the roster and processing is unaffected.
func (k DiagnosticKind) IsWarning() bool {
	return k == DiagnosticNameMismatch || k == DiagnosticDuplicateName
}

// Diagnostic is one typed, non-fatal validation finding.
//
// Diagnostics never interrupt processing: every check reports all of its
// findings and the caller decides whether to log them, count them, or
// escalate them to a hard failure. Only the fields relevant to the Kind are
// populated.
type Diagnostic struct {
	// Kind classifies the finding.
	Kind DiagnosticKind

	// Student is the full name of the student the finding refers to.
	Student string

	// Companion is the companion full name involved, for companion checks.
	Companion string

	// Declared and Expected carry the macro-group pair for group checks.
	Declared MacroGroup
	Expected MacroGroup

	// Detail is free-text context (e.g. the mismatching display name).
	Detail string
}

// Message returns a human-readable, single-line description of the finding.
func (d Diagnostic) Message() string {
	switch d.Kind {
	case DiagnosticOverrideMismatch:
		return fmt.Sprintf("group for %s is %s instead of %s", d.Student, d.Declared, d.Expected)
	case DiagnosticNameMismatch:
		return fmt.Sprintf("possible name mismatch: %s vs. %s", d.Detail, d.Student)
	case DiagnosticDuplicateStudent:
		return fmt.Sprintf("duplicate entry for %s, previous row overwritten", d.Student)
	case DiagnosticDuplicateName:
		return fmt.Sprintf("full name %s is shared by several students (%s)", d.Student, d.Detail)
	case DiagnosticCompanionNotFound:
		return fmt.Sprintf("cannot find %s to match with %s", d.Companion, d.Student)
	case DiagnosticCompanionAsymmetry:
		return fmt.Sprintf("companion mismatch %s -> %s -> %s", d.Student, d.Companion, d.Detail)
	case DiagnosticCompanionGroupMismatch:
		return fmt.Sprintf("group mismatch: %s %s <-> %s %s", d.Student, d.Declared, d.Companion, d.Expected)
	default:
		return fmt.Sprintf("%s: %s", d.Kind, d.Student)
	}
}

// Fields returns structured key-value pairs for logging the finding.
//
// Returns:
//   - []any: Alternating keys and values, suitable for a Logger call
func (d Diagnostic) Fields() []any {
	fields := []any{"kind", string(d.Kind), "student", d.Student}
	if d.Companion != "" {
		fields = append(fields, "companion", d.Companion)
	}
	if d.Declared != "" {
		fields = append(fields, "declared", d.Declared.String())
	}
	if d.Expected != "" {
		fields = append(fields, "expected", d.Expected.String())
	}
	if d.Detail != "" {
		fields = append(fields, "detail", d.Detail)
	}

	return fields
}
