// Package lattice implements square (1D), square (2D) and cubic (3D)
// periodic lattices of arbitrary site type.
//
// What:
//
//   - Square1D, Square2D, Square3D store length^D sites in one dense,
//     row-major slice (last axis innermost) and share one
//     periodicity.Periodicity for every axis.
//   - Each type satisfies sitestate.Lattice: indexed access, uniform index
//     sampling, iteration, bulk fill, nearest-neighbor topology and
//     simple swap diffusion.
//   - Topology is computed from coordinates; no adjacency list is stored.
//
// Indices:
//
//	1D: int          i
//	2D: [2]int       {i, j}
//	3D: [3]int       {i, j, k}
//
// Neighbor order (fixed, innermost axis first, prev before next):
//
//	1D: prev(i), next(i)
//	2D: (i,prev j), (i,next j), (prev i,j), (next i,j)
//	3D: (i,j,prev k), (i,j,next k), (i,prev j,k), (i,next j,k), (prev i,j,k), (next i,j,k)
//
// Pairs: NearestNeighborsIndexPairs visits sites in row-major order and
// emits one forward pair per axis, innermost axis first, for exactly
// D × SiteCount() pairs. On a ring of length 2 prev and next coincide, so
// each axis edge is emitted twice, once from each endpoint; on a ring of
// length 1 every pair is a self pair.
//
// Complexity:
//
//   - construction:        O(length^D) time and memory.
//   - At/Set/Ptr/Sample:   O(1).
//   - neighbor of a site:  O(D).
//   - all pairs, Diffuse:  O(D × length^D) / O(length^D).
//
// Contract violations (length ≤ 0, coordinate outside [0,length)) panic.
// Lattices are not safe for concurrent mutation.
package lattice
