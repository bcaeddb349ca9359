package types

// RosterView is the read side of a roster that strategies operate on.
//
// The view exposes students in insertion order plus the full-name index used
// for companion resolution. Strategies mutate the Students in place (the
// Assigned field) but never add or remove entries.
type RosterView interface {
	// Students returns every student in insertion order.
	Students() []*Student

	// Lookup resolves a student by full name.
	//
	// Parameters:
	//   - fullName: The "Name Surname" key
	//
	// Returns:
	//   - *Student: The student, or nil
	//   - bool: Whether the full name exists in the roster
	Lookup(fullName string) (*Student, bool)

	// Len returns the number of students in the roster.
	Len() int
}

// AssignmentStrategy distributes roster students over the taxonomy's leaf
// turn-groups.
//
// Strategy implementations should:
//   - Be deterministic (same roster order and taxonomy → same assignment)
//   - Be idempotent (already-assigned students are never reassigned)
//   - Honor declared companion pairs
//   - Be stateless across calls
type AssignmentStrategy interface {
	// Assign produces a turn-group for every unassigned student and returns
	// the final per-turn-group occupancy counts, including students that
	// were already assigned before the call.
	//
	// Parameters:
	//   - tax: Group taxonomy, supplies eligible turn-groups and their order
	//   - roster: Roster view, iterated in insertion order
	//
	// Returns:
	//   - Occupancy: Final per-turn-group counts
	//   - error: Assignment error (nil on success)
	Assign(tax Taxonomy, roster RosterView) (Occupancy, error)
}
