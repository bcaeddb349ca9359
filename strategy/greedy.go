package strategy

import (
	"fmt"

	"github.com/lucabaldini/labgroups/types"
)

// Greedy implements deterministic minimum-occupancy assignment with
// companion co-location.
type Greedy struct{}

var _ types.AssignmentStrategy = (*Greedy)(nil)

// NewGreedy creates a new greedy balancing strategy.
//
// The strategy assigns each unassigned student to the least occupied
// turn-group under the student's declared macro-group, then drags the
// student's companion (if mutual-resolvable and still unassigned) into the
// same turn-group. It balances locally and greedily; it is not a global
// optimum solver.
//
// Returns:
//   - *Greedy: Initialized greedy strategy
//
// Example:
//
//	alloc, err := labgroups.NewAllocator(&cfg, src, ovr, labgroups.WithStrategy(strategy.NewGreedy()))
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Assign calculates turn-group assignments for every unassigned student.
//
// The algorithm:
//  1. Seed an occupancy counter with the taxonomy's leaf groups, counting
//     any students assigned by a previous call so partial-run resumption
//     keeps the balance honest.
//  2. For each unassigned student, in roster insertion order: restrict the
//     counter to the turn-groups under the student's declared macro-group,
//     pick the first group with the minimum count (ties broken by taxonomy
//     enumeration order), and commit.
//  3. If the student declares a companion that resolves in the roster and is
//     itself unassigned, commit the companion to the same turn-group in the
//     same step. Both commits happen together after the selection, so no
//     partial pair state is ever observable.
//
// A companion that does not resolve in the roster is skipped silently (the
// companion-consistency pass reports it beforehand). A companion from a
// different macro-group is still co-located in the referencing student's
// turn-group: assignment does not re-validate macro-group equality.
//
// Calling Assign again after a complete run changes nothing: students with a
// turn-group already set are only counted, never reassigned.
//
// Parameters:
//   - tax: Group taxonomy, supplies the eligible groups and their order
//   - roster: Roster view, iterated in insertion order
//
// Returns:
//   - types.Occupancy: Final per-turn-group counts
//   - error: Assignment error (nil on success)
func (g *Greedy) Assign(tax types.Taxonomy, roster types.RosterView) (types.Occupancy, error) {
	if roster == nil {
		return nil, types.ErrRosterNotBuilt
	}

	occ := types.NewOccupancy(tax.TurnGroups())
	for _, s := range roster.Students() {
		if s.IsAssigned() {
			occ[s.Assigned]++
		}
	}

	for _, s := range roster.Students() {
		if s.IsAssigned() {
			continue
		}

		eligible := tax.TurnGroupsFor(s.MacroGroup)
		group, ok := occ.MinOf(eligible)
		if !ok {
			return nil, fmt.Errorf("%w: %q for %s", types.ErrUnknownMacroGroup, s.MacroGroup, s.FullName())
		}

		// Two-phase update: collect the whole pair, then commit both, so a
		// student and their companion land in the same group atomically.
		members := []*types.Student{s}
		if companionName := s.CompanionFullName(); companionName != "" {
			if companion, found := roster.Lookup(companionName); found && !companion.IsAssigned() {
				members = append(members, companion)
			}
		}

		for _, m := range members {
			m.Assigned = group
			occ[group]++
		}
	}

	return occ, nil
}
