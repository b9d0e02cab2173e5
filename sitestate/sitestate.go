package sitestate

import (
	"iter"
	"math/rand/v2"
)

// Distribution draws site values from r. Implementations must use r as
// their only source of randomness.
type Distribution[T any] interface {
	Sample(r *rand.Rand) T
}

// Filler is the bulk-write half of SiteState. Fill strategies only need
// this much of a state.
type Filler[T any] interface {
	// SetUniform sets every site to site.
	SetUniform(site T)
	// SetRandom overwrites every site, in iteration order, with a draw from dist.
	SetRandom(dist Distribution[T], r *rand.Rand)
}

// SiteState is a state of fixed shape composed of a finite number of sites
// of type T addressed by indices of type I.
type SiteState[I comparable, T any] interface {
	Filler[T]

	// At returns the site at idx. Out-of-range indices panic.
	At(idx I) T
	// Set overwrites the site at idx. Out-of-range indices panic.
	Set(idx I, site T)
	// Ptr returns a pointer to the site at idx for in-place updates.
	Ptr(idx I) *T

	// Sample returns an index drawn uniformly over all sites, consuming
	// randomness from r only.
	Sample(r *rand.Rand) I

	// SiteCount is the total number of sites.
	SiteCount() int
	// Sites yields every site once in a fixed row-major order.
	Sites() iter.Seq[T]
	// SitesMut yields a pointer to every site in the same order as Sites.
	SitesMut() iter.Seq[*T]
}

// SiteStateNN is a SiteState with a notion of nearest neighborhood.
type SiteStateNN[I comparable, T any] interface {
	SiteState[I, T]

	// NearestNeighborsIndexPairs yields every nearest-neighbor edge once,
	// oriented from a site to its forward ("next") neighbor on each axis.
	NearestNeighborsIndexPairs() iter.Seq2[I, I]
	// NearestNeighborsIndex yields the indices of all neighbors of idx in a
	// fixed order.
	NearestNeighborsIndex(idx I) iter.Seq[I]
	// NearestNeighborsPairs is NearestNeighborsIndexPairs resolved to values.
	NearestNeighborsPairs() iter.Seq2[T, T]
	// NearestNeighbors is NearestNeighborsIndex resolved to values.
	NearestNeighbors(idx I) iter.Seq[T]
}

// SimpleSwapDiffusion performs one diffusion sweep: SiteCount() proposals,
// each swapping a random site with a forward neighbor when coin succeeds.
type SimpleSwapDiffusion interface {
	Diffuse(coin Coin, r *rand.Rand)
}

// Lattice is a regular SiteStateNN whose shape is a single side length.
type Lattice[I comparable, T any] interface {
	SiteStateNN[I, T]
	SimpleSwapDiffusion

	// Length is the side length shared by every axis.
	Length() int
	// Dimension is the number of axes.
	Dimension() int
}

// CharRepr is implemented by site types with a one-rune rendering.
type CharRepr interface {
	Char() rune
}
