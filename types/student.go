package types

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Identifier is a student's matriculation number.
type Identifier int

// IsValid checks that the identifier is positive.
func (i Identifier) IsValid() bool {
	return i > 0
}

// ParseIdentifier coerces the textual representation of an identifier to an
// Identifier. Spreadsheet exports frequently render integer cells as floats
// ("612345.0"), so a float representation with no fractional part is accepted.
//
// Parameters:
//   - text: Raw cell content
//
// Returns:
//   - Identifier: Parsed identifier
//   - error: ErrInvalidIdentifier (wrapped) if the text is not a positive integer
func ParseIdentifier(text string) (Identifier, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidIdentifier)
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIdentifier, text)
	}

	id := Identifier(value)
	if float64(id) != value {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidIdentifier, text)
	}
	if !id.IsValid() {
		return 0, fmt.Errorf("%w: %d is not positive", ErrInvalidIdentifier, id)
	}

	return id, nil
}

// nameCaser title-cases free-text name fields the way the enrollment form
// expects them ("de rossi" -> "De Rossi"). Language-neutral rules are used on
// purpose: rosters mix surnames from several locales.
var nameCaser = cases.Title(language.Und)

// FormatName normalizes a free-text name field: trimmed and title-cased.
// An all-whitespace value normalizes to the empty string (unset).
//
// Parameters:
//   - text: Raw cell content
//
// Returns:
//   - string: Normalized name
func FormatName(text string) string {
	return strings.TrimSpace(nameCaser.String(text))
}

// RawStudent is one unvalidated roster row as supplied by a RosterSource.
//
// All fields are raw strings; normalization and coercion happen during
// Student construction. Empty strings denote unset optional fields.
type RawStudent struct {
	// DisplayName is the form-supplied display name for the row, used only
	// for the name-mismatch cross check. Optional.
	DisplayName string

	// Name and Surname are mandatory free-text name fields.
	Name    string
	Surname string

	// Identifier is the mandatory matriculation number; a float textual
	// representation is accepted.
	Identifier string

	// Email is the student's contact address.
	Email string

	// MacroGroup is the declared macro-group label. Mandatory.
	MacroGroup string

	// CompanionName and CompanionSurname form the optional lab-partner
	// preference. Both must be set for the companion to count.
	CompanionName    string
	CompanionSurname string

	// Notes is optional free text.
	Notes string
}

// Student is a validated roster record.
//
// Students are constructed once per input row at roster-build time and owned
// by the Roster for the rest of the run. Assigned is mutated exactly once by
// the assignment pass and is the only mutable field.
type Student struct {
	// Name and Surname are the normalized name fields.
	Name    string
	Surname string

	// Identifier is the positive matriculation number.
	Identifier Identifier

	// Email is the student's contact address.
	Email string

	// MacroGroup is the declared macro-group. Validation against the
	// expected value is soft: a mismatch is reported as a diagnostic and the
	// declared value is kept unchanged.
	MacroGroup MacroGroup

	// CompanionName and CompanionSurname are the normalized optional
	// lab-partner fields. Empty means unset.
	CompanionName    string
	CompanionSurname string

	// Notes is optional free text, kept verbatim.
	Notes string

	// Assigned is the turn-group produced by the assignment pass.
	// Zero until assigned.
	Assigned TurnGroup
}

// NewStudent constructs a Student from a raw row and validates the declared
// macro-group against the override table (or the modular default).
//
// Construction is strict only about the mandatory fields: an unparsable or
// non-positive identifier and a macro-group label outside the taxonomy are
// fatal for the row. The macro-group expectation check is soft: a mismatch
// yields an OverrideMismatch diagnostic and construction proceeds with the
// declared value unchanged.
//
// Parameters:
//   - raw: Unvalidated roster row
//   - tax: Group taxonomy
//   - overrides: Authoritative identifier -> macro-group table (may be nil)
//
// Returns:
//   - *Student: Constructed student (nil on error)
//   - []Diagnostic: Soft validation findings (nil when clean)
//   - error: Row-fatal construction error
func NewStudent(raw RawStudent, tax Taxonomy, overrides Overrides) (*Student, []Diagnostic, error) {
	id, err := ParseIdentifier(raw.Identifier)
	if err != nil {
		return nil, nil, fmt.Errorf("student %q %q: %w", raw.Name, raw.Surname, err)
	}

	macro := MacroGroup(strings.TrimSpace(raw.MacroGroup))
	if !tax.Contains(macro) {
		return nil, nil, fmt.Errorf("student %q %q: %w: %q", raw.Name, raw.Surname, ErrUnknownMacroGroup, raw.MacroGroup)
	}

	s := &Student{
		Name:             FormatName(raw.Name),
		Surname:          FormatName(raw.Surname),
		Identifier:       id,
		Email:            strings.TrimSpace(raw.Email),
		MacroGroup:       macro,
		CompanionName:    FormatName(raw.CompanionName),
		CompanionSurname: FormatName(raw.CompanionSurname),
		Notes:            raw.Notes,
	}

	var diags []Diagnostic
	if expected := tax.ExpectedMacroGroup(id, overrides); expected != macro {
		diags = append(diags, Diagnostic{
			Kind:     DiagnosticOverrideMismatch,
			Student:  s.FullName(),
			Declared: macro,
			Expected: expected,
		})
	}

	return s, diags, nil
}

// FullName returns the student's full name, the key used for companion
// resolution.
func (s *Student) FullName() string {
	return s.Name + " " + s.Surname
}

// CompanionFullName returns the declared companion's full name, or the empty
// string when the student has no companion. A partially filled companion
// (only one of the two fields set) counts as no companion.
func (s *Student) CompanionFullName() string {
	if s.CompanionName == "" || s.CompanionSurname == "" {
		return ""
	}

	return s.CompanionName + " " + s.CompanionSurname
}

// HasCompanion reports whether the student declared a usable companion.
func (s *Student) HasCompanion() bool {
	return s.CompanionFullName() != ""
}

// IsAssigned reports whether the assignment pass has produced a turn-group
// for this student.
func (s *Student) IsAssigned() bool {
	return s.Assigned != ""
}

// String returns a compact representation for logging.
func (s *Student) String() string {
	return fmt.Sprintf("Student{%s, id: %d, group: %s, assigned: %s}", s.FullName(), s.Identifier, s.MacroGroup, s.Assigned)
}
