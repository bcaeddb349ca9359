package labgroups

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lucabaldini/labgroups/internal/logger"
	"github.com/lucabaldini/labgroups/internal/metrics"
	"github.com/lucabaldini/labgroups/strategy"
	"github.com/lucabaldini/labgroups/types"
)

// Allocator distributes a roster of students into the fixed hierarchy of
// teaching groups.
//
// Allocator is the main entry point of the labgroups library. It handles:
//   - Roster construction from a tabular source, with override validation
//   - Companion-consistency checking
//   - Balanced turn-group assignment with companion co-location
//   - Per-room-group report preparation
//
// The whole computation is a bounded, synchronous pass over an in-memory
// roster: there is no concurrency, no cancellation beyond the source reads,
// and no state persisted between runs. Methods are NOT safe for concurrent
// use; run one allocation at a time.
//
// Lifecycle:
//   - Create with NewAllocator()
//   - Call Build() to load and validate the roster
//   - Call CheckCompanions() for the diagnostic pass
//   - Call AssignGroups() to compute the assignment
//   - Call WriteReports() to hand the result to a ReportSink
type Allocator struct {
	cfg      Config
	taxonomy types.Taxonomy
	source   types.RosterSource
	override types.OverrideSource

	// Optional dependencies
	strategy types.AssignmentStrategy
	metrics  types.MetricsCollector
	logger   types.Logger

	// runID tags every log line of one allocation run.
	runID  string
	roster *Roster
}

// NewAllocator creates a new Allocator instance with the provided configuration.
//
// Returns a concrete *Allocator struct following the "accept interfaces,
// return structs" principle. Consumers can define their own interfaces for
// testing if needed.
//
// Parameters:
//   - cfg: Group hierarchy configuration (defaults applied in place)
//   - src: Roster row source
//   - ovr: Override table source (nil means an empty override table)
//   - opts: Optional configuration (strategy, metrics, logger)
//
// Returns:
//   - *Allocator: Initialized allocator instance
//   - error: Validation error if the configuration is invalid
//
// Example:
//
//	cfg := labgroups.DefaultConfig()
//	src, _ := source.NewXLSX(source.XLSXConfig{Path: "groups.xlsx"})
//	alloc, err := labgroups.NewAllocator(&cfg, src, src)
func NewAllocator(cfg *Config, src RosterSource, ovr OverrideSource, opts ...Option) (*Allocator, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if src == nil {
		return nil, ErrRosterSourceRequired
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Apply options
	options := &allocatorOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	strategyInstance := options.strategy
	if strategyInstance == nil {
		strategyInstance = strategy.NewGreedy()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	return &Allocator{
		cfg:      *cfg,
		taxonomy: cfg.Taxonomy(),
		source:   src,
		override: ovr,
		strategy: strategyInstance,
		metrics:  metricsCollector,
		logger:   loggerInstance,
		runID:    uuid.NewString(),
	}, nil
}

// RunID returns the identifier tagging this allocation run's log lines.
func (a *Allocator) RunID() string {
	return a.runID
}

// Taxonomy returns the group hierarchy the allocator works against.
func (a *Allocator) Taxonomy() types.Taxonomy {
	return a.taxonomy
}

// Roster returns the built roster, or nil before Build.
func (a *Allocator) Roster() *Roster {
	return a.roster
}

// Build loads the roster rows and the override table and constructs the
// roster, logging every soft validation finding at the point of detection.
//
// Parameters:
//   - ctx: Context for the source reads
//
// Returns:
//   - []types.Diagnostic: Construction findings (override mismatches, name
//     mismatches, duplicate identifiers), in row order
//   - error: Source or row-fatal construction error
func (a *Allocator) Build(ctx context.Context) ([]types.Diagnostic, error) {
	a.logger.Info("reading input data", "run_id", a.runID)
	start := time.Now()

	roster, diags, err := BuildRoster(ctx, a.taxonomy, a.source, a.override)
	if err != nil {
		return nil, fmt.Errorf("building roster: %w", err)
	}

	a.roster = roster
	a.logDiagnostics(diags)
	a.metrics.RecordRosterSize(roster.Len())
	a.metrics.RecordBuildDuration(time.Since(start).Seconds())
	a.logger.Info("roster built", "run_id", a.runID, "students", roster.Len(), "findings", len(diags))

	return diags, nil
}

// CheckCompanions runs the companion-consistency pass over the built roster.
//
// The pass is read-only and independent from assignment: none of its
// findings block AssignGroups.
//
// Returns:
//   - []types.Diagnostic: All companion findings, in roster order
//   - error: ErrRosterNotBuilt before Build
func (a *Allocator) CheckCompanions() ([]types.Diagnostic, error) {
	if a.roster == nil {
		return nil, ErrRosterNotBuilt
	}

	diags := a.roster.CheckCompanions()
	a.logDiagnostics(diags)

	return diags, nil
}

// AssignGroups runs the balancing strategy over the roster and logs the
// final occupancy of every leaf turn-group plus the per-macro-group totals.
//
// The operation is idempotent: students assigned by an earlier call keep
// their turn-group and contribute their counts to the returned occupancy.
//
// Returns:
//   - types.Occupancy: Final per-turn-group counts
//   - error: ErrRosterNotBuilt before Build, or a strategy error
func (a *Allocator) AssignGroups() (types.Occupancy, error) {
	if a.roster == nil {
		return nil, ErrRosterNotBuilt
	}

	start := time.Now()
	occ, err := a.strategy.Assign(a.taxonomy, a.roster)
	if err != nil {
		return nil, fmt.Errorf("assigning groups: %w", err)
	}
	a.metrics.RecordAssignDuration(time.Since(start).Seconds())

	for _, g := range a.taxonomy.TurnGroups() {
		a.logger.Info("final group numerosity", "run_id", a.runID, "group", g.String(), "students", occ[g])
		a.metrics.RecordGroupOccupancy(g, occ[g])
	}
	for _, m := range a.taxonomy.MacroGroups {
		total := occ.TotalOf(a.taxonomy.TurnGroupsFor(m))
		a.logger.Info("macro-group total", "run_id", a.runID, "group", m.String(), "students", total)
		a.metrics.RecordMacroGroupTotal(m, total)
	}

	return occ, nil
}

// RoomReports returns one report per room-group, covering every room in the
// taxonomy (rooms nobody was assigned to yield an empty report). Within a
// report, students are sorted by (assigned turn-group, surname).
//
// Returns:
//   - []types.RoomReport: Reports in taxonomy enumeration order
//   - error: ErrRosterNotBuilt before Build
func (a *Allocator) RoomReports() ([]types.RoomReport, error) {
	if a.roster == nil {
		return nil, ErrRosterNotBuilt
	}

	rooms := a.taxonomy.RoomGroups()
	reports := make([]types.RoomReport, 0, len(rooms))
	for _, room := range rooms {
		report := types.RoomReport{Room: room}
		for _, s := range a.roster.Students() {
			if s.IsAssigned() && s.Assigned.RoomGroup() == room {
				report.Students = append(report.Students, s)
			}
		}

		sort.SliceStable(report.Students, func(i, j int) bool {
			si, sj := report.Students[i], report.Students[j]
			if si.Assigned != sj.Assigned {
				return si.Assigned < sj.Assigned
			}

			return si.Surname < sj.Surname
		})

		reports = append(reports, report)
	}

	return reports, nil
}

// WriteReports renders the room-group reports through the given sink.
//
// Parameters:
//   - ctx: Context for the sink writes
//   - sink: Report renderer
//
// Returns:
//   - error: ErrReportSinkRequired, ErrRosterNotBuilt, or a sink error
func (a *Allocator) WriteReports(ctx context.Context, sink ReportSink) error {
	if sink == nil {
		return ErrReportSinkRequired
	}

	reports, err := a.RoomReports()
	if err != nil {
		return err
	}

	a.logger.Info("writing reports", "run_id", a.runID, "rooms", len(reports))
	if err := sink.WriteReports(ctx, reports); err != nil {
		return fmt.Errorf("writing reports: %w", err)
	}

	return nil
}

// Run executes the whole allocation in order: Build, CheckCompanions,
// AssignGroups and, when a sink is given, WriteReports.
//
// Parameters:
//   - ctx: Context for source reads and sink writes
//   - sink: Report renderer (nil skips report writing)
//
// Returns:
//   - types.Occupancy: Final per-turn-group counts
//   - error: First fatal error encountered
func (a *Allocator) Run(ctx context.Context, sink ReportSink) (types.Occupancy, error) {
	if _, err := a.Build(ctx); err != nil {
		return nil, err
	}
	if _, err := a.CheckCompanions(); err != nil {
		return nil, err
	}

	occ, err := a.AssignGroups()
	if err != nil {
		return nil, err
	}

	if sink != nil {
		if err := a.WriteReports(ctx, sink); err != nil {
			return nil, err
		}
	}

	return occ, nil
}

// logDiagnostics surfaces every finding at its mapped severity.
func (a *Allocator) logDiagnostics(diags []types.Diagnostic) {
	for _, d := range diags {
		fields := append([]any{"run_id", a.runID}, d.Fields()...)
		if d.Kind.IsWarning() {
			a.logger.Warn(d.Message(), fields...)
			a.metrics.RecordDiagnostic(d.Kind)

			continue
		}

		a.logger.Error(d.Message(), fields...)
		a.metrics.RecordDiagnostic(d.Kind)
	}
}
