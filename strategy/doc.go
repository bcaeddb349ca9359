// Package strategy provides built-in assignment strategy implementations.
//
// Assignment strategies determine how roster students are distributed across
// the taxonomy's leaf turn-groups. The package currently ships one strategy:
//
//   - Greedy: deterministic minimum-occupancy selection with companion
//     co-location (the production allocation policy)
//
// # Determinism
//
// Greedy is fully deterministic: it iterates the roster in insertion order
// and breaks occupancy ties by the taxonomy's enumeration order. Two runs
// over the same roster produce identical assignments; there is no randomness
// anywhere in the selection.
//
// # Companion policy
//
// When a student declares a companion that resolves in the roster and is not
// yet assigned, the companion is committed to the same turn-group in the same
// step, bypassing the minimum-occupancy selection. Keeping pairs together can
// cause mild imbalance, bounded by the pair size; that trade-off is accepted.
//
// Custom strategies can be implemented by satisfying the
// types.AssignmentStrategy interface.
package strategy
