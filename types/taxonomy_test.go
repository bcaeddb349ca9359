package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomy(t *testing.T) {
	tax := DefaultTaxonomy()

	require.NoError(t, tax.Validate())
	require.Equal(t, []MacroGroup{"A1", "B1", "A2", "B2"}, tax.MacroGroups)
	require.Len(t, tax.RoomGroups(), 12)
	require.Len(t, tax.TurnGroups(), 24)
}

func TestTaxonomy_Validate(t *testing.T) {
	t.Run("accepts the default hierarchy", func(t *testing.T) {
		require.NoError(t, DefaultTaxonomy().Validate())
	})

	t.Run("rejects empty macro-group list", func(t *testing.T) {
		tax := Taxonomy{RoomsPerMacroGroup: 3, TurnsPerRoom: 2}
		require.ErrorIs(t, tax.Validate(), ErrInvalidTaxonomy)
	})

	t.Run("rejects blank macro-group label", func(t *testing.T) {
		tax := Taxonomy{MacroGroups: []MacroGroup{"A1", ""}, RoomsPerMacroGroup: 3, TurnsPerRoom: 2}
		require.ErrorIs(t, tax.Validate(), ErrInvalidTaxonomy)
	})

	t.Run("rejects duplicate macro-group labels", func(t *testing.T) {
		tax := Taxonomy{MacroGroups: []MacroGroup{"A1", "A1"}, RoomsPerMacroGroup: 3, TurnsPerRoom: 2}
		require.ErrorIs(t, tax.Validate(), ErrInvalidTaxonomy)
	})

	t.Run("rejects non-positive room and turn counts", func(t *testing.T) {
		tax := Taxonomy{MacroGroups: []MacroGroup{"A1"}, RoomsPerMacroGroup: 0, TurnsPerRoom: 2}
		require.ErrorIs(t, tax.Validate(), ErrInvalidTaxonomy)

		tax = Taxonomy{MacroGroups: []MacroGroup{"A1"}, RoomsPerMacroGroup: 3, TurnsPerRoom: 0}
		require.ErrorIs(t, tax.Validate(), ErrInvalidTaxonomy)
	})
}

func TestTaxonomy_Enumeration(t *testing.T) {
	tax := DefaultTaxonomy()

	t.Run("turn-groups are macro-major, then room, then turn", func(t *testing.T) {
		turns := tax.TurnGroups()
		require.Equal(t, TurnGroup("A1-1-1"), turns[0])
		require.Equal(t, TurnGroup("A1-1-2"), turns[1])
		require.Equal(t, TurnGroup("A1-2-1"), turns[2])
		require.Equal(t, TurnGroup("A1-3-2"), turns[5])
		require.Equal(t, TurnGroup("B1-1-1"), turns[6])
		require.Equal(t, TurnGroup("B2-3-2"), turns[23])
	})

	t.Run("TurnGroupsFor restricts to one macro-group", func(t *testing.T) {
		turns := tax.TurnGroupsFor("A2")
		require.Len(t, turns, 6)
		for _, g := range turns {
			require.Equal(t, MacroGroup("A2"), g.MacroGroup())
		}
		require.Equal(t, TurnGroup("A2-1-1"), turns[0])
	})

	t.Run("TurnGroupsFor returns nil for an unknown macro-group", func(t *testing.T) {
		require.Nil(t, tax.TurnGroupsFor("C9"))
	})

	t.Run("TurnGroupsForRoom enumerates the room's turns", func(t *testing.T) {
		require.Equal(t, []TurnGroup{"B1-2-1", "B1-2-2"}, tax.TurnGroupsForRoom("B1-2"))
	})
}

func TestGroupLabels(t *testing.T) {
	t.Run("turn-group decomposes into room and macro", func(t *testing.T) {
		g := TurnGroup("A1-2-1")
		require.Equal(t, RoomGroup("A1-2"), g.RoomGroup())
		require.Equal(t, MacroGroup("A1"), g.MacroGroup())
	})

	t.Run("room-group decomposes into macro", func(t *testing.T) {
		require.Equal(t, MacroGroup("B2"), RoomGroup("B2-3").MacroGroup())
	})
}

func TestTaxonomy_ExpectedMacroGroup(t *testing.T) {
	tax := DefaultTaxonomy()

	t.Run("uses the modular default when no override exists", func(t *testing.T) {
		// 17 mod 4 = 1 -> second macro-group.
		require.Equal(t, MacroGroup("B1"), tax.ExpectedMacroGroup(17, nil))
		require.Equal(t, MacroGroup("A1"), tax.ExpectedMacroGroup(600004, nil))
	})

	t.Run("override takes precedence over the default rule", func(t *testing.T) {
		overrides := Overrides{17: "B2"}
		require.Equal(t, MacroGroup("B2"), tax.ExpectedMacroGroup(17, overrides))
		require.Equal(t, MacroGroup("A2"), tax.ExpectedMacroGroup(18, overrides))
	})
}
