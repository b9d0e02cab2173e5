// Package periodicity precomputes ring adjacency for one lattice axis.
//
// What:
//
//   - Periodicity holds two lookup tables, prev and next, for an axis of a
//     given length, with wrap-around at both ends:
//
//     prev = [n-1, 0, 1, ..., n-2]
//     next = [1, 2, ..., n-1, 0]
//
// Why:
//
//   - Neighbor arithmetic on periodic lattices is the hot path of every
//     sweep. A table lookup replaces a modulo and a sign branch.
//   - Tables cost O(length) memory, independent of lattice dimension, so a
//     single instance serves every axis of a square or cubic lattice.
//
// Invariants:
//
//   - Next(Prev(i)) == i and Prev(Next(i)) == i for every i in [0, Len()).
//   - Immutable after New; safe to share between readers.
//
// Complexity:
//
//   - New:        O(n) time, O(n) memory.
//   - Prev, Next: O(1).
//
// Contract violations (n <= 0, index out of range) panic. Periodicity is an
// index helper, not a boundary-facing API.
package periodicity
