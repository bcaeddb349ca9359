// Package types provides core type definitions and interfaces for the labgroups library.
//
// This package contains shared types that are used across multiple packages in
// the labgroups library. By keeping these types in a separate package, we avoid
// import cycles between the main labgroups package and its adapter packages.
//
// Key types:
//   - Taxonomy: The fixed macro-group / room-group / turn-group hierarchy
//   - Student: A validated roster record with an optional companion reference
//   - Occupancy: Per-turn-group occupancy counters
//   - Diagnostic: Typed, non-fatal validation finding
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
