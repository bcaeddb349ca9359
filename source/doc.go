// Package source provides RosterSource and OverrideSource implementations.
//
// Two sources are included:
//
//   - Static: fixed in-memory rows and overrides, useful for testing and for
//     callers that already hold parsed data
//   - XLSX: reads the enrollment-form workbook (roster sheet plus override
//     sheet) with configurable, localized column headers
//
// Sources deliver raw, unvalidated rows; all normalization and validation
// happens during roster construction in the core.
package source
