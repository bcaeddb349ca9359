package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucabaldini/labgroups/types"
)

func TestStatic(t *testing.T) {
	rows := []types.RawStudent{
		{Name: "Alice", Surname: "Rossi", Identifier: "612340", MacroGroup: "A1"},
		{Name: "Bruno", Surname: "Verdi", Identifier: "612341", MacroGroup: "B1"},
	}
	overrides := types.Overrides{612341: "B1"}

	src := NewStatic(rows, overrides)

	got, err := src.ListStudents(context.Background())
	require.NoError(t, err)
	require.Equal(t, rows, got)

	gotOverrides, err := src.ListOverrides(context.Background())
	require.NoError(t, err)
	require.Equal(t, overrides, gotOverrides)
}

func TestStatic_CopiesData(t *testing.T) {
	rows := []types.RawStudent{
		{Name: "Alice", Surname: "Rossi", Identifier: "612340", MacroGroup: "A1"},
	}
	src := NewStatic(rows, nil)

	// Mutating the caller's slice must not leak into the source.
	rows[0].Name = "Mallory"

	got, err := src.ListStudents(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Alice", got[0].Name)

	// Nor must mutating a returned slice.
	got[0].Name = "Mallory"
	again, err := src.ListStudents(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Alice", again[0].Name)
}

func TestStatic_Update(t *testing.T) {
	src := NewStatic(nil, nil)

	got, err := src.ListStudents(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)

	src.Update([]types.RawStudent{
		{Name: "Alice", Surname: "Rossi", Identifier: "612340", MacroGroup: "A1"},
	}, types.Overrides{612340: "B2"})

	got, err = src.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	overrides, err := src.ListOverrides(context.Background())
	require.NoError(t, err)
	require.Equal(t, types.MacroGroup("B2"), overrides[612340])
}
