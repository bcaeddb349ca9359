package labgroups

import "github.com/lucabaldini/labgroups/types"

// Sentinel errors returned by the Allocator.
//
// These re-export the sentinels from the types package so callers can check
// them with errors.Is without importing types directly.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidTaxonomy is returned when the group hierarchy is invalid.
	ErrInvalidTaxonomy = types.ErrInvalidTaxonomy

	// ErrRosterSourceRequired is returned when the roster source is nil.
	ErrRosterSourceRequired = types.ErrRosterSourceRequired

	// ErrReportSinkRequired is returned when a nil report sink is supplied.
	ErrReportSinkRequired = types.ErrReportSinkRequired

	// ErrRosterNotBuilt is returned when an operation requires Build first.
	ErrRosterNotBuilt = types.ErrRosterNotBuilt

	// ErrInvalidIdentifier is returned for a non-positive or unparsable
	// student identifier. Fatal for the row.
	ErrInvalidIdentifier = types.ErrInvalidIdentifier

	// ErrUnknownMacroGroup is returned for a declared macro-group outside
	// the taxonomy. Fatal for the row.
	ErrUnknownMacroGroup = types.ErrUnknownMacroGroup
)
