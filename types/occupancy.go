package types

// Occupancy tracks how many students each leaf turn-group holds.
//
// The map alone carries no ordering; every selection helper takes an
// explicitly ordered slice of turn-groups so that tie-breaking stays
// deterministic (first minimal group in taxonomy enumeration order).
type Occupancy map[TurnGroup]int

// NewOccupancy initializes a zeroed counter for every given turn-group.
//
// Parameters:
//   - groups: Leaf turn-groups to track
//
// Returns:
//   - Occupancy: Counters, all zero
func NewOccupancy(groups []TurnGroup) Occupancy {
	occ := make(Occupancy, len(groups))
	for _, g := range groups {
		occ[g] = 0
	}

	return occ
}

// MinOf returns the first turn-group with the minimum count among the given
// ordered subset. Groups missing from the counter count as zero.
//
// Parameters:
//   - groups: Ordered subset of turn-groups to consider
//
// Returns:
//   - TurnGroup: First minimal group in slice order
//   - bool: false when the subset is empty
func (o Occupancy) MinOf(groups []TurnGroup) (TurnGroup, bool) {
	if len(groups) == 0 {
		return "", false
	}

	best := groups[0]
	for _, g := range groups[1:] {
		if o[g] < o[best] {
			best = g
		}
	}

	return best, true
}

// TotalOf sums the counts of the given turn-groups.
//
// Parameters:
//   - groups: Turn-groups to aggregate
//
// Returns:
//   - int: Aggregated student count
func (o Occupancy) TotalOf(groups []TurnGroup) int {
	total := 0
	for _, g := range groups {
		total += o[g]
	}

	return total
}

// Clone returns an independent copy of the counters.
func (o Occupancy) Clone() Occupancy {
	clone := make(Occupancy, len(o))
	for g, n := range o {
		clone[g] = n
	}

	return clone
}
