package types

import "errors"

// Sentinel errors for the labgroups library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).
//
// Soft validation findings are NOT errors: they are Diagnostic values. Only
// conditions that make a row or a run unusable surface as errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidTaxonomy is returned when the group hierarchy definition is invalid.
	ErrInvalidTaxonomy = errors.New("invalid taxonomy")

	// ErrRosterSourceRequired is returned when the roster source is nil.
	ErrRosterSourceRequired = errors.New("roster source is required")

	// ErrReportSinkRequired is returned when a nil report sink is supplied.
	ErrReportSinkRequired = errors.New("report sink is required")

	// ErrRosterNotBuilt is returned when an operation requires a built roster.
	ErrRosterNotBuilt = errors.New("roster not built")

	// ErrInvalidIdentifier is returned when a student identifier is not a
	// positive integer. This is fatal for the row.
	ErrInvalidIdentifier = errors.New("invalid student identifier")

	// ErrUnknownMacroGroup is returned when a declared macro-group label is
	// not part of the taxonomy. This is fatal for the row.
	ErrUnknownMacroGroup = errors.New("unknown macro-group")
)
