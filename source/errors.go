package source

import "errors"

// Sentinel errors returned by the workbook sources.
var (
	// ErrSheetNotFound is returned when the configured roster sheet does not
	// exist in the workbook.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrColumnMissing is returned when a required column header is absent
	// from a sheet.
	ErrColumnMissing = errors.New("required column missing")
)
