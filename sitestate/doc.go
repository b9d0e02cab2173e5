// Package sitestate defines the capability contracts of lattice-like
// simulation state, independent of any concrete lattice.
//
// What:
//
//   - SiteState: indexed read/write access, uniform random index sampling,
//     deterministic iteration over all sites, bulk uniform/random fill.
//   - SiteStateNN: SiteState plus nearest-neighbor topology queries
//     (every undirected edge once, or the neighbors of one site).
//   - SimpleSwapDiffusion: one sweep of composition-conserving neighbor swaps.
//   - InitialStateSpec: fill strategies (UniformSites, RandomSites) chosen by
//     the caller at construction or reset time.
//   - Coin: the Bernoulli trial that accepts or rejects a proposed swap.
//
// Randomness:
//
//	Every operation that needs randomness takes an explicit *rand.Rand
//	(math/rand/v2). Nothing here reads global random state, so two runs
//	seeded identically are bitwise reproducible.
//
// Errors:
//
//   - ErrInvalidProbability: Coin (or a distribution) probability outside [0,1].
//
// Contract violations on the hot path (bad index, nil rng) panic; only
// boundary constructors return errors.
package sitestate
