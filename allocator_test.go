package labgroups

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucabaldini/labgroups/internal/logger"
	"github.com/lucabaldini/labgroups/source"
	"github.com/lucabaldini/labgroups/types"
)

// captureSink records the reports handed to it.
type captureSink struct {
	reports []types.RoomReport
	err     error
}

func (c *captureSink) WriteReports(_ context.Context, reports []types.RoomReport) error {
	c.reports = reports

	return c.err
}

func newTestAllocator(t *testing.T, rows []types.RawStudent, overrides types.Overrides) *Allocator {
	t.Helper()

	cfg := DefaultConfig()
	src := source.NewStatic(rows, overrides)
	alloc, err := NewAllocator(&cfg, src, src, WithLogger(logger.NewTest(t)))
	require.NoError(t, err)

	return alloc
}

func TestNewAllocator_Validation(t *testing.T) {
	cfg := DefaultConfig()
	src := source.NewStatic(nil, nil)

	t.Run("nil config", func(t *testing.T) {
		_, err := NewAllocator(nil, src, src)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("nil roster source", func(t *testing.T) {
		_, err := NewAllocator(&cfg, nil, nil)
		require.ErrorIs(t, err, ErrRosterSourceRequired)
	})

	t.Run("invalid config", func(t *testing.T) {
		bad := Config{MacroGroups: []string{"A1", "A1"}, RoomsPerMacroGroup: 3, TurnsPerRoom: 2}
		_, err := NewAllocator(&bad, src, src)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("empty config gets defaults", func(t *testing.T) {
		empty := Config{}
		alloc, err := NewAllocator(&empty, src, src)
		require.NoError(t, err)
		require.Len(t, alloc.Taxonomy().TurnGroups(), 24)
		require.NotEmpty(t, alloc.RunID())
	})
}

func TestAllocator_RequiresBuild(t *testing.T) {
	alloc := newTestAllocator(t, nil, nil)

	_, err := alloc.CheckCompanions()
	require.ErrorIs(t, err, ErrRosterNotBuilt)

	_, err = alloc.AssignGroups()
	require.ErrorIs(t, err, ErrRosterNotBuilt)

	_, err = alloc.RoomReports()
	require.ErrorIs(t, err, ErrRosterNotBuilt)

	err = alloc.WriteReports(context.Background(), &captureSink{})
	require.ErrorIs(t, err, ErrRosterNotBuilt)
}

func TestAllocator_WriteReports_NilSink(t *testing.T) {
	alloc := newTestAllocator(t, nil, nil)
	err := alloc.WriteReports(context.Background(), nil)
	require.ErrorIs(t, err, ErrReportSinkRequired)
}

func TestAllocator_AssignGroups_RoundRobin(t *testing.T) {
	// Six unpaired students, all bound for A1, fill the six A1 turn-groups
	// one each, in enumeration order.
	rows := make([]types.RawStudent, 0, 6)
	names := []string{"Rossi", "Verdi", "Bianchi", "Gallo", "Fonti", "Riva"}
	ids := []string{"612340", "612344", "612348", "612352", "612356", "612360"}
	for i, surname := range names {
		rows = append(rows, types.RawStudent{
			Name: "Studente", Surname: surname, Identifier: ids[i], MacroGroup: "A1",
		})
	}

	alloc := newTestAllocator(t, rows, nil)
	_, err := alloc.Build(context.Background())
	require.NoError(t, err)

	occ, err := alloc.AssignGroups()
	require.NoError(t, err)

	expected := []types.TurnGroup{"A1-1-1", "A1-1-2", "A1-2-1", "A1-2-2", "A1-3-1", "A1-3-2"}
	for i, s := range alloc.Roster().Students() {
		require.Equal(t, expected[i], s.Assigned)
	}
	for _, g := range expected {
		require.Equal(t, 1, occ[g])
	}
}

func TestAllocator_AssignGroups_Idempotent(t *testing.T) {
	alloc := newTestAllocator(t, []types.RawStudent{
		{Name: "Alice", Surname: "Rossi", Identifier: "612340", MacroGroup: "A1"},
		{Name: "Bruno", Surname: "Verdi", Identifier: "612344", MacroGroup: "A1"},
	}, nil)
	_, err := alloc.Build(context.Background())
	require.NoError(t, err)

	first, err := alloc.AssignGroups()
	require.NoError(t, err)
	assigned := []types.TurnGroup{
		alloc.Roster().Students()[0].Assigned,
		alloc.Roster().Students()[1].Assigned,
	}

	second, err := alloc.AssignGroups()
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, assigned[0], alloc.Roster().Students()[0].Assigned)
	require.Equal(t, assigned[1], alloc.Roster().Students()[1].Assigned)
}

func TestAllocator_Run(t *testing.T) {
	rows := []types.RawStudent{
		// Mutual A1 pair.
		{Name: "Alice", Surname: "Rossi", Identifier: "612340", MacroGroup: "A1",
			CompanionName: "Bruno", CompanionSurname: "Verdi"},
		{Name: "Bruno", Surname: "Verdi", Identifier: "612344", MacroGroup: "A1",
			CompanionName: "Alice", CompanionSurname: "Rossi"},
		// Default group for 612341 is B1; the override moves the student to A2.
		{Name: "Carla", Surname: "Bianchi", Identifier: "612341", MacroGroup: "A2"},
		{Name: "Dario", Surname: "Gallo", Identifier: "612343", MacroGroup: "B2"},
		{Name: "Elena", Surname: "Fonti", Identifier: "612345", MacroGroup: "B1"},
	}
	overrides := types.Overrides{612341: "A2"}

	cfg := DefaultConfig()
	src := source.NewStatic(rows, overrides)
	alloc, err := NewAllocator(&cfg, src, src, WithLogger(logger.NewTest(t)))
	require.NoError(t, err)

	sink := &captureSink{}
	occ, err := alloc.Run(context.Background(), sink)
	require.NoError(t, err)

	// Every student is accounted for exactly once.
	total := 0
	for _, n := range occ {
		total += n
	}
	require.Equal(t, len(rows), total)

	for _, s := range alloc.Roster().Students() {
		require.True(t, s.IsAssigned())
		require.Equal(t, s.MacroGroup, s.Assigned.MacroGroup())
	}

	// The pair shares a turn-group.
	alice, _ := alloc.Roster().Lookup("Alice Rossi")
	bruno, _ := alloc.Roster().Lookup("Bruno Verdi")
	require.Equal(t, alice.Assigned, bruno.Assigned)

	// One report per room, rooms without students included.
	require.Len(t, sink.reports, 12)
	require.Equal(t, types.RoomGroup("A1-1"), sink.reports[0].Room)
}

func TestAllocator_RoomReports_Sorted(t *testing.T) {
	// A single room with two turns: the third student wraps around to the
	// first turn-group, so the room holds two turn-groups worth of students.
	cfg := Config{MacroGroups: []string{"A1"}, RoomsPerMacroGroup: 1, TurnsPerRoom: 2}
	src := source.NewStatic([]types.RawStudent{
		{Name: "Zoe", Surname: "Zanetti", Identifier: "612340", MacroGroup: "A1"},
		{Name: "Anna", Surname: "Abate", Identifier: "612344", MacroGroup: "A1"},
		{Name: "Mina", Surname: "Moretti", Identifier: "612348", MacroGroup: "A1"},
	}, nil)

	alloc, err := NewAllocator(&cfg, src, src, WithLogger(logger.NewTest(t)))
	require.NoError(t, err)

	_, err = alloc.Run(context.Background(), nil)
	require.NoError(t, err)

	reports, err := alloc.RoomReports()
	require.NoError(t, err)
	require.Len(t, reports, 1)

	// Zanetti and Moretti sit in A1-1-1, Abate in A1-1-2: turn-group first,
	// then surname within the group.
	got := make([]string, 0, 3)
	for _, s := range reports[0].Students {
		got = append(got, s.Surname)
	}
	require.Equal(t, []string{"Moretti", "Zanetti", "Abate"}, got)
}

func TestAllocator_Run_SinkError(t *testing.T) {
	alloc := newTestAllocator(t, []types.RawStudent{
		{Name: "Alice", Surname: "Rossi", Identifier: "612340", MacroGroup: "A1"},
	}, nil)

	sinkErr := errors.New("disk full")
	_, err := alloc.Run(context.Background(), &captureSink{err: sinkErr})
	require.ErrorIs(t, err, sinkErr)
}

func TestAllocator_DiagnosticLogging(t *testing.T) {
	rec := logger.NewRecord()
	cfg := DefaultConfig()
	src := source.NewStatic([]types.RawStudent{
		{DisplayName: "Alice Rossi", Name: "Alice", Surname: "De Rossi",
			Identifier: "612340", MacroGroup: "A1"},
		{Name: "Carla", Surname: "Bianchi", Identifier: "612341", MacroGroup: "B1",
			CompanionName: "Marco", CompanionSurname: "Neri"},
	}, nil)

	alloc, err := NewAllocator(&cfg, src, src, WithLogger(rec))
	require.NoError(t, err)

	_, err = alloc.Build(context.Background())
	require.NoError(t, err)
	_, err = alloc.CheckCompanions()
	require.NoError(t, err)

	// The name mismatch warns, the companion finding errors, and both carry
	// the run identifier.
	warns := rec.ByLevel("WARN")
	require.Len(t, warns, 1)
	require.Contains(t, warns[0].Fields, "run_id")

	errs := rec.ByLevel("ERROR")
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Fields, "Carla Bianchi")
}

func TestAllocator_DefaultGroupRule(t *testing.T) {
	// Identifier 17 with no override maps to the second macro-group.
	tax := types.DefaultTaxonomy()
	require.Equal(t, types.MacroGroup("B1"), tax.ExpectedMacroGroup(17, nil))
	require.Equal(t, types.MacroGroup("B2"), tax.ExpectedMacroGroup(17, types.Overrides{17: "B2"}))
}
