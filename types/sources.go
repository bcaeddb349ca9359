package types

import "context"

// RosterSource supplies the raw roster rows to build a roster from.
//
// Implementations can read various backends:
//   - XLSX: the enrollment-form workbook export
//   - Static: fixed list for testing
//   - Custom: any tabular backend
//
// Localized column naming, cell extraction and sheet layout are adapter
// concerns; the core contract only sees RawStudent rows.
type RosterSource interface {
	// ListStudents returns all roster rows in source order.
	//
	// Row order matters: it becomes the roster's insertion order, which the
	// assignment pass iterates in. Implementations should:
	//   - Return rows in a stable order for the same backend state
	//   - Handle context cancellation gracefully
	//   - Leave absent optional cells as empty strings
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []RawStudent: Raw roster rows
	//   - error: Read error (nil on success)
	ListStudents(ctx context.Context) ([]RawStudent, error)
}

// OverrideSource supplies the authoritative identifier -> macro-group
// override table.
type OverrideSource interface {
	// ListOverrides returns the override table.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - Overrides: Identifier -> macro-group table (may be empty)
	//   - error: Read error (nil on success)
	ListOverrides(ctx context.Context) (Overrides, error)
}
