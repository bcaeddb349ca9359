package types

import (
	"fmt"
	"strings"
)

// MacroGroup is a top-level cohort label (e.g. "A1").
type MacroGroup string

// String returns the string representation of the macro-group.
func (m MacroGroup) String() string {
	return string(m)
}

// RoomGroup is a macro-group subdivided by physical room, labelled
// "{macro}-{room}" (e.g. "A1-2").
type RoomGroup string

// String returns the string representation of the room-group.
func (r RoomGroup) String() string {
	return string(r)
}

// MacroGroup returns the macro-group this room-group belongs to.
func (r RoomGroup) MacroGroup() MacroGroup {
	s := string(r)
	if idx := strings.LastIndex(s, "-"); idx >= 0 {
		return MacroGroup(s[:idx])
	}

	return MacroGroup(s)
}

// TurnGroup is a room-group subdivided by time slot, labelled
// "{macro}-{room}-{turn}" (e.g. "A1-2-1"). It is the final assignment unit.
type TurnGroup string

// String returns the string representation of the turn-group.
func (t TurnGroup) String() string {
	return string(t)
}

// RoomGroup returns the room-group this turn-group belongs to.
func (t TurnGroup) RoomGroup() RoomGroup {
	s := string(t)
	if idx := strings.LastIndex(s, "-"); idx >= 0 {
		return RoomGroup(s[:idx])
	}

	return RoomGroup(s)
}

// MacroGroup returns the macro-group this turn-group belongs to.
func (t TurnGroup) MacroGroup() MacroGroup {
	return t.RoomGroup().MacroGroup()
}

// Overrides maps a student identifier to the authoritative macro-group that
// supersedes the default modular assignment rule.
//
// Overrides are loaded from an OverrideSource and passed explicitly into
// roster construction; there is no process-wide override table.
type Overrides map[Identifier]MacroGroup

// Taxonomy is the static three-level group hierarchy: an ordered set of
// macro-groups, each split into rooms, each room split into turns.
//
// The enumeration order of the leaf turn-groups (macro-major, then room, then
// turn) is load-bearing: it is the deterministic tie-break used by the
// balancing strategy, so it must be stable across runs.
type Taxonomy struct {
	// MacroGroups is the ordered set of top-level cohort labels.
	MacroGroups []MacroGroup

	// RoomsPerMacroGroup is the number of rooms under each macro-group.
	RoomsPerMacroGroup int

	// TurnsPerRoom is the number of time slots under each room.
	TurnsPerRoom int
}

// DefaultTaxonomy returns the standard lab hierarchy: four macro-groups
// (A1, B1, A2, B2), three rooms each, two turns per room: 24 leaf groups.
//
// Returns:
//   - Taxonomy: The default group hierarchy
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		MacroGroups:        []MacroGroup{"A1", "B1", "A2", "B2"},
		RoomsPerMacroGroup: 3,
		TurnsPerRoom:       2,
	}
}

// Validate checks that the taxonomy is well-formed.
//
// Returns:
//   - error: ErrInvalidTaxonomy (wrapped with detail) if macro-groups are
//     empty, duplicated or blank, or the room/turn counts are not positive
func (t Taxonomy) Validate() error {
	if len(t.MacroGroups) == 0 {
		return fmt.Errorf("%w: no macro-groups defined", ErrInvalidTaxonomy)
	}

	seen := make(map[MacroGroup]struct{}, len(t.MacroGroups))
	for _, m := range t.MacroGroups {
		if m == "" {
			return fmt.Errorf("%w: empty macro-group label", ErrInvalidTaxonomy)
		}
		if _, dup := seen[m]; dup {
			return fmt.Errorf("%w: duplicate macro-group %q", ErrInvalidTaxonomy, m)
		}
		seen[m] = struct{}{}
	}

	if t.RoomsPerMacroGroup <= 0 {
		return fmt.Errorf("%w: roomsPerMacroGroup must be positive, got %d", ErrInvalidTaxonomy, t.RoomsPerMacroGroup)
	}
	if t.TurnsPerRoom <= 0 {
		return fmt.Errorf("%w: turnsPerRoom must be positive, got %d", ErrInvalidTaxonomy, t.TurnsPerRoom)
	}

	return nil
}

// Contains reports whether the macro-group is part of the taxonomy.
func (t Taxonomy) Contains(m MacroGroup) bool {
	for _, candidate := range t.MacroGroups {
		if candidate == m {
			return true
		}
	}

	return false
}

// RoomGroups returns all room-groups in enumeration order.
//
// Returns:
//   - []RoomGroup: Room-groups ordered macro-major, then by room number
func (t Taxonomy) RoomGroups() []RoomGroup {
	rooms := make([]RoomGroup, 0, len(t.MacroGroups)*t.RoomsPerMacroGroup)
	for _, m := range t.MacroGroups {
		for room := 1; room <= t.RoomsPerMacroGroup; room++ {
			rooms = append(rooms, RoomGroup(fmt.Sprintf("%s-%d", m, room)))
		}
	}

	return rooms
}

// TurnGroups returns all leaf turn-groups in enumeration order.
//
// Returns:
//   - []TurnGroup: Turn-groups ordered macro-major, then room, then turn
func (t Taxonomy) TurnGroups() []TurnGroup {
	turns := make([]TurnGroup, 0, len(t.MacroGroups)*t.RoomsPerMacroGroup*t.TurnsPerRoom)
	for _, m := range t.MacroGroups {
		turns = append(turns, t.TurnGroupsFor(m)...)
	}

	return turns
}

// TurnGroupsFor returns the leaf turn-groups under one macro-group, in
// enumeration order. The result is empty if the macro-group is not part of
// the taxonomy.
//
// Parameters:
//   - m: Macro-group to enumerate
//
// Returns:
//   - []TurnGroup: Turn-groups under m, ordered by room then turn
func (t Taxonomy) TurnGroupsFor(m MacroGroup) []TurnGroup {
	if !t.Contains(m) {
		return nil
	}

	turns := make([]TurnGroup, 0, t.RoomsPerMacroGroup*t.TurnsPerRoom)
	for room := 1; room <= t.RoomsPerMacroGroup; room++ {
		for turn := 1; turn <= t.TurnsPerRoom; turn++ {
			turns = append(turns, TurnGroup(fmt.Sprintf("%s-%d-%d", m, room, turn)))
		}
	}

	return turns
}

// TurnGroupsForRoom returns the leaf turn-groups under one room-group.
//
// Parameters:
//   - r: Room-group to enumerate
//
// Returns:
//   - []TurnGroup: Turn-groups under r, ordered by turn
func (t Taxonomy) TurnGroupsForRoom(r RoomGroup) []TurnGroup {
	turns := make([]TurnGroup, 0, t.TurnsPerRoom)
	for turn := 1; turn <= t.TurnsPerRoom; turn++ {
		turns = append(turns, TurnGroup(fmt.Sprintf("%s-%d", r, turn)))
	}

	return turns
}

// ExpectedMacroGroup resolves the macro-group a student is expected to
// declare: the override for the identifier when one exists, otherwise the
// deterministic default derived from the identifier modulo the number of
// macro-groups.
//
// Parameters:
//   - id: Student identifier
//   - overrides: Authoritative override table (may be nil)
//
// Returns:
//   - MacroGroup: The expected macro-group
func (t Taxonomy) ExpectedMacroGroup(id Identifier, overrides Overrides) MacroGroup {
	if m, ok := overrides[id]; ok {
		return m
	}

	return t.MacroGroups[int(id)%len(t.MacroGroups)]
}
