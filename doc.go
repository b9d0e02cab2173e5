// Package lvlattice is an in-memory toolkit for lattice-structured
// simulation state: periodic square and cubic lattices of arbitrary site
// type, their nearest-neighbor topology, and stochastic swap diffusion.
//
// What is in the box?
//
//	periodicity/             prev/next ring tables for one periodic axis
//	sitestate/               capability contracts: SiteState, SiteStateNN,
//	                         SimpleSwapDiffusion, InitialStateSpec, Coin
//	sitestate/distribution/  site distributions (Constant, Bernoulli, Categorical)
//	lattice/                 Square1D, Square2D, Square3D
//	rng/                     deterministic math/rand/v2 sources
//	config/                  YAML run configuration
//	cmd/latticesim/          example driver
//
// Design rules:
//
//   - Topology is arithmetic: neighbors come from coordinates and one shared
//     periodicity table, never from a stored adjacency list.
//   - Randomness is explicit: every stochastic call takes a *rand.Rand, so
//     runs with equal seeds are bitwise reproducible.
//   - Contract violations (empty lattice, out-of-range index) panic;
//     boundary constructors return sentinel errors.
//
// Quick ASCII example, a 3×3 periodic lattice seen from site X:
//
//	. n .
//	w X e      n, s, w, e are X's four neighbors; the top row's n
//	. s .      wraps to the bottom row, the left column's w to the right.
//
// Model-specific dynamics (contact process, exclusion rules) and
// measurements are built on top of these contracts, outside this module.
package lvlattice
