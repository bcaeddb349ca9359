package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lucabaldini/labgroups/types"
)

func TestXLSX_WriteReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assignments.xlsx")

	reports := []types.RoomReport{
		{
			Room: "A1-1",
			Students: []*types.Student{
				{Name: "Alice", Surname: "Rossi", Identifier: 612340,
					Email: "alice@studenti.unipi.it", MacroGroup: "A1", Assigned: "A1-1-1"},
				{Name: "Bruno", Surname: "Verdi", Identifier: 612344,
					MacroGroup: "A1", Assigned: "A1-1-2"},
			},
		},
		{Room: "A1-2"},
	}

	sink := NewXLSX(path)
	require.NoError(t, sink.WriteReports(context.Background(), reports))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// One sheet per room, empty rooms included, and no leftover default sheet.
	require.Equal(t, []string{"A1-1", "A1-2"}, f.GetSheetList())

	rows, err := f.GetRows("A1-1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, Headers, rows[0])
	require.Equal(t, []string{"Alice", "Rossi", "612340", "alice@studenti.unipi.it", "A1-1-1"}, rows[1])
	require.Equal(t, "Verdi", rows[2][1])

	// The empty room gets just the header row.
	rows, err = f.GetRows("A1-2")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, Headers, rows[0])
}

func TestXLSX_WriteReports_NoReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assignments.xlsx")

	sink := NewXLSX(path)
	require.NoError(t, sink.WriteReports(context.Background(), nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Sheet1"}, f.GetSheetList())
}

func TestXLSX_WriteReports_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := NewXLSX(filepath.Join(t.TempDir(), "assignments.xlsx"))
	require.ErrorIs(t, sink.WriteReports(ctx, nil), context.Canceled)
}
