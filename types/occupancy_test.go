package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOccupancy_MinOf(t *testing.T) {
	groups := []TurnGroup{"A1-1-1", "A1-1-2", "A1-2-1"}

	t.Run("breaks ties by slice order", func(t *testing.T) {
		occ := NewOccupancy(groups)
		g, ok := occ.MinOf(groups)
		require.True(t, ok)
		require.Equal(t, TurnGroup("A1-1-1"), g)
	})

	t.Run("picks the strictly smallest count", func(t *testing.T) {
		occ := Occupancy{"A1-1-1": 2, "A1-1-2": 1, "A1-2-1": 3}
		g, ok := occ.MinOf(groups)
		require.True(t, ok)
		require.Equal(t, TurnGroup("A1-1-2"), g)
	})

	t.Run("treats missing groups as zero", func(t *testing.T) {
		occ := Occupancy{"A1-1-1": 1}
		g, ok := occ.MinOf(groups)
		require.True(t, ok)
		require.Equal(t, TurnGroup("A1-1-2"), g)
	})

	t.Run("reports an empty subset", func(t *testing.T) {
		_, ok := Occupancy{}.MinOf(nil)
		require.False(t, ok)
	})
}

func TestOccupancy_TotalOf(t *testing.T) {
	occ := Occupancy{"A1-1-1": 2, "A1-1-2": 3, "B1-1-1": 7}
	require.Equal(t, 5, occ.TotalOf([]TurnGroup{"A1-1-1", "A1-1-2"}))
	require.Equal(t, 0, occ.TotalOf(nil))
}

func TestOccupancy_Clone(t *testing.T) {
	occ := Occupancy{"A1-1-1": 2}
	clone := occ.Clone()
	clone["A1-1-1"] = 9
	require.Equal(t, 2, occ["A1-1-1"])
}
