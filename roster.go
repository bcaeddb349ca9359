package labgroups

import (
	"context"
	"fmt"

	"github.com/lucabaldini/labgroups/types"
)

// Roster is the keyed, ordered collection of students for one run.
//
// Students are keyed by identifier (the stable unique key; a duplicate
// identifier overwrites the earlier entry in place, with a diagnostic), with
// a secondary full-name index for companion lookups. When several students
// share a full name the index points at the last of them. Iteration order is the
// insertion order of construction, which the assignment pass depends on.
//
// The Roster exclusively owns its Student records: the assignment pass
// mutates them in place through the Roster's iteration, never through copies.
type Roster struct {
	taxonomy types.Taxonomy
	students []*types.Student
	byID     map[types.Identifier]int // identifier -> index into students
	byName   map[string]types.Identifier
}

// Compile-time assertion that Roster implements RosterView.
var _ types.RosterView = (*Roster)(nil)

// BuildRoster constructs a roster from the rows of a RosterSource, validating
// each row against the override table of an OverrideSource.
//
// Per row: the optional display name is cross-checked against the computed
// full name (NameMismatch diagnostic on disagreement), the student is
// constructed and soft-validated as NewStudent documents (OverrideMismatch
// diagnostic on a declared/expected disagreement), and the student is
// inserted keyed by identifier. A reused identifier overwrites the earlier
// entry in place and yields a DuplicateStudent diagnostic; a full name shared
// across identifiers yields a DuplicateName diagnostic and the name index
// points at the later row.
//
// A row with an unparsable identifier or an unknown macro-group aborts the
// build: those fields are mandatory and there is nothing sensible to allocate
// for the row.
//
// Parameters:
//   - ctx: Context for source reads
//   - tax: Group taxonomy (must be validated by the caller)
//   - src: Roster row source
//   - ovr: Override table source (nil means no overrides)
//
// Returns:
//   - *Roster: The populated roster
//   - []types.Diagnostic: Soft validation findings, in row order
//   - error: Source or row-fatal construction error
func BuildRoster(ctx context.Context, tax types.Taxonomy, src types.RosterSource, ovr types.OverrideSource) (*Roster, []types.Diagnostic, error) {
	if src == nil {
		return nil, nil, types.ErrRosterSourceRequired
	}

	var overrides types.Overrides
	if ovr != nil {
		var err error
		overrides, err = ovr.ListOverrides(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("reading overrides: %w", err)
		}
	}

	rows, err := src.ListStudents(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("reading roster rows: %w", err)
	}

	roster := &Roster{
		taxonomy: tax,
		students: make([]*types.Student, 0, len(rows)),
		byID:     make(map[types.Identifier]int, len(rows)),
		byName:   make(map[string]types.Identifier, len(rows)),
	}

	var diags []types.Diagnostic
	for i, raw := range rows {
		s, rowDiags, err := types.NewStudent(raw, tax, overrides)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		diags = append(diags, rowDiags...)

		if raw.DisplayName != "" && raw.DisplayName != s.FullName() {
			diags = append(diags, types.Diagnostic{
				Kind:    types.DiagnosticNameMismatch,
				Student: s.FullName(),
				Detail:  raw.DisplayName,
			})
		}

		diags = append(diags, roster.insert(s)...)
	}

	return roster, diags, nil
}

// insert adds the student to the roster, overwriting any earlier entry with
// the same identifier in place. Returns diagnostics for an overwritten entry
// and for a full name already indexed under another identifier.
func (r *Roster) insert(s *types.Student) []types.Diagnostic {
	var diags []types.Diagnostic

	if idx, exists := r.byID[s.Identifier]; exists {
		previous := r.students[idx]
		// Drop the old name entry only if it still points at the overwritten
		// student; a homonym inserted in between owns it now.
		if id, indexed := r.byName[previous.FullName()]; indexed && id == previous.Identifier {
			delete(r.byName, previous.FullName())
		}
		r.students[idx] = s

		diags = append(diags, types.Diagnostic{
			Kind:    types.DiagnosticDuplicateStudent,
			Student: s.FullName(),
			Detail:  fmt.Sprintf("identifier %d", s.Identifier),
		})
	} else {
		r.byID[s.Identifier] = len(r.students)
		r.students = append(r.students, s)
	}

	if id, taken := r.byName[s.FullName()]; taken && id != s.Identifier {
		diags = append(diags, types.Diagnostic{
			Kind:    types.DiagnosticDuplicateName,
			Student: s.FullName(),
			Detail:  fmt.Sprintf("identifiers %d and %d", id, s.Identifier),
		})
	}
	r.byName[s.FullName()] = s.Identifier

	return diags
}

// Students returns every student in insertion order.
//
// The returned slice is the roster's own backing storage; callers must treat
// it as read-only.
func (r *Roster) Students() []*types.Student {
	return r.students
}

// Lookup resolves a student by full name through the secondary index.
//
// Parameters:
//   - fullName: The "Name Surname" key
//
// Returns:
//   - *types.Student: The student, or nil
//   - bool: Whether the full name exists in the roster
func (r *Roster) Lookup(fullName string) (*types.Student, bool) {
	id, ok := r.byName[fullName]
	if !ok {
		return nil, false
	}

	return r.students[r.byID[id]], true
}

// ByIdentifier resolves a student by the primary identifier key.
//
// Parameters:
//   - id: Student identifier
//
// Returns:
//   - *types.Student: The student, or nil
//   - bool: Whether the identifier exists in the roster
func (r *Roster) ByIdentifier(id types.Identifier) (*types.Student, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}

	return r.students[idx], true
}

// Len returns the number of students in the roster.
func (r *Roster) Len() int {
	return len(r.students)
}

// Taxonomy returns the group hierarchy the roster was built against.
func (r *Roster) Taxonomy() types.Taxonomy {
	return r.taxonomy
}

// CheckCompanions verifies the declared lab-partner choices.
//
// For every student with a declared companion, in insertion order:
//  1. The companion's full name must exist in the roster
//     (CompanionNotFound otherwise, remaining checks skipped).
//  2. The companion's own declared companion must point back at the student
//     (CompanionAsymmetry otherwise, group check skipped).
//  3. Both students must declare the same macro-group
//     (CompanionGroupMismatch otherwise).
//
// This is a read-only diagnostic pass: it never mutates state and never
// halts processing. All violations are reported; none are fatal, and none
// prevent the assignment pass from running.
//
// Returns:
//   - []types.Diagnostic: All companion findings, in roster order
func (r *Roster) CheckCompanions() []types.Diagnostic {
	var diags []types.Diagnostic
	for _, s := range r.students {
		companionName := s.CompanionFullName()
		if companionName == "" {
			continue
		}

		companion, found := r.Lookup(companionName)
		if !found {
			diags = append(diags, types.Diagnostic{
				Kind:      types.DiagnosticCompanionNotFound,
				Student:   s.FullName(),
				Companion: companionName,
			})

			continue
		}

		if companion.CompanionFullName() != s.FullName() {
			diags = append(diags, types.Diagnostic{
				Kind:      types.DiagnosticCompanionAsymmetry,
				Student:   s.FullName(),
				Companion: companionName,
				Detail:    companion.CompanionFullName(),
			})

			continue
		}

		if s.MacroGroup != companion.MacroGroup {
			diags = append(diags, types.Diagnostic{
				Kind:      types.DiagnosticCompanionGroupMismatch,
				Student:   s.FullName(),
				Companion: companionName,
				Declared:  s.MacroGroup,
				Expected:  companion.MacroGroup,
			})
		}
	}

	return diags
}
