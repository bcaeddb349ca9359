package source

import (
	"context"
	"sync"

	"github.com/lucabaldini/labgroups/types"
)

// Static implements a roster source with a fixed list of rows and a fixed
// override table.
type Static struct {
	mu        sync.RWMutex
	rows      []types.RawStudent
	overrides types.Overrides
}

var (
	_ types.RosterSource   = (*Static)(nil)
	_ types.OverrideSource = (*Static)(nil)
)

// NewStatic creates a new static source.
//
// The source returns fixed data that never changes on its own. Useful for
// testing and for scenarios where the roster is known at startup.
//
// Parameters:
//   - rows: Fixed roster rows, in the order the roster should iterate
//   - overrides: Fixed override table (may be nil)
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	rows := []types.RawStudent{
//	    {Name: "Alice", Surname: "Rossi", Identifier: "612340", MacroGroup: "A1"},
//	}
//	src := source.NewStatic(rows, nil)
//	alloc, err := labgroups.NewAllocator(&cfg, src, src)
func NewStatic(rows []types.RawStudent, overrides types.Overrides) *Static {
	s := &Static{}
	s.Update(rows, overrides)

	return s
}

// ListStudents returns the static roster rows.
//
// Returns:
//   - []types.RawStudent: The fixed rows, copied
//   - error: Always nil (never fails)
func (s *Static) ListStudents(_ context.Context) ([]types.RawStudent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]types.RawStudent, len(s.rows))
	copy(rows, s.rows)

	return rows, nil
}

// ListOverrides returns the static override table.
//
// Returns:
//   - types.Overrides: The fixed table, copied (may be empty)
//   - error: Always nil (never fails)
func (s *Static) ListOverrides(_ context.Context) (types.Overrides, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	overrides := make(types.Overrides, len(s.overrides))
	for id, m := range s.overrides {
		overrides[id] = m
	}

	return overrides, nil
}

// Update replaces the rows and the override table.
//
// This allows the static source to simulate changing input, which is useful
// for testing rebuild scenarios.
//
// Parameters:
//   - rows: New roster rows
//   - overrides: New override table (may be nil)
func (s *Static) Update(rows []types.RawStudent, overrides types.Overrides) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = make([]types.RawStudent, len(rows))
	copy(s.rows, rows)

	s.overrides = make(types.Overrides, len(overrides))
	for id, m := range overrides {
		s.overrides[id] = m
	}
}
