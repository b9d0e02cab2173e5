package sitestate

import (
	"fmt"
	"math/rand/v2"
)

// Builder constructs states of type S with sites of type T from a shape
// (the side length) using either fill strategy. Lattice packages provide
// one Builder per concrete state type.
type Builder[S any, T any] interface {
	Uniform(shape int, site T) S
	Random(shape int, dist Distribution[T], r *rand.Rand) S
}

// InitialStateSpec selects how sites are filled at construction or reset.
// The set of implementations is closed: UniformSites and *RandomSites.
type InitialStateSpec[T any] interface {
	// Reset refills state with this fill strategy.
	Reset(state Filler[T])

	initialStateSpec()
}

// UniformSites sets every site to Site.
type UniformSites[T any] struct {
	Site T
}

// Reset implements InitialStateSpec.
func (u UniformSites[T]) Reset(state Filler[T]) { state.SetUniform(u.Site) }

func (UniformSites[T]) initialStateSpec() {}

// RandomSites draws every site independently from Dist using Rand.
// Consecutive uses advance Rand, so two resets give different contents.
type RandomSites[T any] struct {
	Dist Distribution[T]
	Rand *rand.Rand
}

// NewRandomSites returns a RandomSites spec.
// Panics on nil dist or r to surface programmer error early.
func NewRandomSites[T any](dist Distribution[T], r *rand.Rand) *RandomSites[T] {
	if dist == nil {
		panic("sitestate: NewRandomSites(nil dist)")
	}
	if r == nil {
		panic("sitestate: NewRandomSites(nil rng)")
	}
	return &RandomSites[T]{Dist: dist, Rand: r}
}

// Reset implements InitialStateSpec.
func (s *RandomSites[T]) Reset(state Filler[T]) { state.SetRandom(s.Dist, s.Rand) }

func (*RandomSites[T]) initialStateSpec() {}

// New constructs a state of the given shape through b, filled per spec.
func New[S any, T any](b Builder[S, T], shape int, spec InitialStateSpec[T]) S {
	switch sp := spec.(type) {
	case UniformSites[T]:
		return b.Uniform(shape, sp.Site)
	case *UniformSites[T]:
		return b.Uniform(shape, sp.Site)
	case *RandomSites[T]:
		return b.Random(shape, sp.Dist, sp.Rand)
	default:
		panic(fmt.Sprintf("sitestate: New: unsupported InitialStateSpec %T", spec))
	}
}

// Reset refills state per spec.
func Reset[T any](state Filler[T], spec InitialStateSpec[T]) {
	spec.Reset(state)
}
