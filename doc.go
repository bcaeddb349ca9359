// Package labgroups deterministically distributes a roster of students into
// a fixed hierarchy of teaching groups, keeping declared lab partners
// together and balancing group sizes.
//
// # Quick Start
//
// Basic usage with the default hierarchy (4 macro-groups x 3 rooms x 2 turns):
//
//	import (
//	    "github.com/lucabaldini/labgroups"
//	    "github.com/lucabaldini/labgroups/report"
//	    "github.com/lucabaldini/labgroups/source"
//	)
//
//	cfg := labgroups.DefaultConfig()
//	src, err := source.NewXLSX(source.XLSXConfig{Path: "lab1_groups_edit.xlsx"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	alloc, err := labgroups.NewAllocator(&cfg, src, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sink := report.NewXLSX("lab1_assignments.xlsx")
//	if _, err := alloc.Run(context.Background(), sink); err != nil {
//	    log.Fatal(err)
//	}
//
// # Key Features
//
//   - Deterministic Assignment: roster order in, taxonomy enumeration order
//     for tie-breaks; identical input gives identical output
//   - Companion Pairing: mutual lab-partner declarations land in the same
//     turn-group, at the cost of bounded local imbalance
//   - Soft Validation: override mismatches, name mismatches and companion
//     inconsistencies surface as typed diagnostics, never as failures
//   - Pluggable Adapters: roster sources, override sources and report sinks
//     are small interfaces; the xlsx adapters mirror the enrollment workbook
//
// # Architecture
//
// An allocation run is four sequential passes over one in-memory roster:
//
//	Build → CheckCompanions → AssignGroups → WriteReports
//
// Build constructs validated Students from raw rows and keys them by
// identifier. CheckCompanions is a read-only diagnostic pass over the
// declared pairs. AssignGroups runs the greedy balancing strategy. The
// report pass groups the result per room and hands it to a ReportSink.
//
// # Advanced Usage
//
// Custom wiring with options:
//
//	logger := zap.NewExample().Sugar()
//	alloc, err := labgroups.NewAllocator(&cfg, src, ovr,
//	    labgroups.WithLogger(logger),
//	    labgroups.WithMetrics(myPrometheusCollector),
//	    labgroups.WithStrategy(strategy.NewGreedy()),
//	)
package labgroups
