package lattice

import (
	"iter"
	"math/rand/v2"

	"github.com/katalvlaran/lvlattice/sitestate"
)

// Square1D is a periodic chain of length sites.
type Square1D[T any] struct {
	square[T]
}

var _ sitestate.Lattice[int, int] = (*Square1D[int])(nil)

// Uniform1D returns a chain of length sites, all equal to site.
// Panics if length ≤ 0.
func Uniform1D[T any](length int, site T) *Square1D[T] {
	l := &Square1D[T]{square: newSquare[T](length, 1)}
	l.SetUniform(site)
	return l
}

// Random1D returns a chain of length sites drawn independently from dist.
// Panics if length ≤ 0.
func Random1D[T any](length int, dist sitestate.Distribution[T], r *rand.Rand) *Square1D[T] {
	l := &Square1D[T]{square: newSquare[T](length, 1)}
	l.SetRandom(dist, r)
	return l
}

// New1D returns a chain of length sites filled per spec.
func New1D[T any](length int, spec sitestate.InitialStateSpec[T]) *Square1D[T] {
	return sitestate.New[*Square1D[T], T](Builder1D[T]{}, length, spec)
}

// Builder1D implements sitestate.Builder for Square1D.
type Builder1D[T any] struct{}

// Uniform implements sitestate.Builder.
func (Builder1D[T]) Uniform(length int, site T) *Square1D[T] { return Uniform1D(length, site) }

// Random implements sitestate.Builder.
func (Builder1D[T]) Random(length int, dist sitestate.Distribution[T], r *rand.Rand) *Square1D[T] {
	return Random1D(length, dist, r)
}

// Reset refills the chain per spec.
func (l *Square1D[T]) Reset(spec sitestate.InitialStateSpec[T]) { spec.Reset(l) }

// At returns site i.
func (l *Square1D[T]) At(i int) T { return l.state[l.coord(i)] }

// Set overwrites site i.
func (l *Square1D[T]) Set(i int, site T) { l.state[l.coord(i)] = site }

// Ptr returns a pointer to site i.
func (l *Square1D[T]) Ptr(i int) *T { return &l.state[l.coord(i)] }

// Swap exchanges sites a and b.
func (l *Square1D[T]) Swap(a, b int) { l.swapAt(l.coord(a), l.coord(b)) }

// Sample draws a uniformly random site index from r.
func (l *Square1D[T]) Sample(r *rand.Rand) int { return l.sampleCoord(r) }

// Indices yields every index in iteration order.
func (l *Square1D[T]) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < l.length; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// All yields every (index, site) pair in iteration order.
func (l *Square1D[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.state {
			if !yield(i, v) {
				return
			}
		}
	}
}

// NearestNeighborsIndexPairs yields (i, next(i)) for every i.
func (l *Square1D[T]) NearestNeighborsIndexPairs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < l.length; i++ {
			if !yield(i, l.period.Next(i)) {
				return
			}
		}
	}
}

// NearestNeighborsIndex yields prev(i), next(i).
func (l *Square1D[T]) NearestNeighborsIndex(i int) iter.Seq[int] {
	l.coord(i)
	return func(yield func(int) bool) {
		if !yield(l.period.Prev(i)) {
			return
		}
		yield(l.period.Next(i))
	}
}

// NearestNeighborsPairs yields (site i, site next(i)) for every i.
func (l *Square1D[T]) NearestNeighborsPairs() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for i, v := range l.state {
			if !yield(v, l.state[l.period.Next(i)]) {
				return
			}
		}
	}
}

// NearestNeighbors yields the sites at prev(i), next(i).
func (l *Square1D[T]) NearestNeighbors(i int) iter.Seq[T] {
	l.coord(i)
	return func(yield func(T) bool) {
		if !yield(l.state[l.period.Prev(i)]) {
			return
		}
		yield(l.state[l.period.Next(i)])
	}
}

// Diffuse runs one sweep: SiteCount() times, pick a random site, propose a
// swap with its next neighbor, accept on coin.
func (l *Square1D[T]) Diffuse(coin sitestate.Coin, r *rand.Rand) {
	for n := l.SiteCount(); n > 0; n-- {
		i := l.Sample(r)
		nn := l.period.Next(i)
		if coin.Flip(r) {
			l.swapAt(i, nn)
		}
	}
}

// String renders the chain as a strip centered on its midpoint.
func (l *Square1D[T]) String() string { return renderStrip(l.state) }
