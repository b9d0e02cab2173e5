package lattice

import (
	"iter"
	"math/rand/v2"

	"github.com/katalvlaran/lvlattice/sitestate"
)

// Square2D is a periodic length×length square lattice indexed by {i, j}.
type Square2D[T any] struct {
	square[T]
}

var _ sitestate.Lattice[[2]int, int] = (*Square2D[int])(nil)

// Uniform2D returns a length×length lattice with every site equal to site.
// Panics if length ≤ 0.
func Uniform2D[T any](length int, site T) *Square2D[T] {
	l := &Square2D[T]{square: newSquare[T](length, 2)}
	l.SetUniform(site)
	return l
}

// Random2D returns a length×length lattice of independent draws from dist.
// Panics if length ≤ 0.
func Random2D[T any](length int, dist sitestate.Distribution[T], r *rand.Rand) *Square2D[T] {
	l := &Square2D[T]{square: newSquare[T](length, 2)}
	l.SetRandom(dist, r)
	return l
}

// New2D returns a length×length lattice filled per spec.
func New2D[T any](length int, spec sitestate.InitialStateSpec[T]) *Square2D[T] {
	return sitestate.New[*Square2D[T], T](Builder2D[T]{}, length, spec)
}

// Builder2D implements sitestate.Builder for Square2D.
type Builder2D[T any] struct{}

// Uniform implements sitestate.Builder.
func (Builder2D[T]) Uniform(length int, site T) *Square2D[T] { return Uniform2D(length, site) }

// Random implements sitestate.Builder.
func (Builder2D[T]) Random(length int, dist sitestate.Distribution[T], r *rand.Rand) *Square2D[T] {
	return Random2D(length, dist, r)
}

// Reset refills the lattice per spec.
func (l *Square2D[T]) Reset(spec sitestate.InitialStateSpec[T]) { spec.Reset(l) }

// offset maps a validated index to its position in state.
func (l *Square2D[T]) offset(idx [2]int) int {
	return l.coord(idx[0])*l.length + l.coord(idx[1])
}

// index maps a position in state back to {i, j}.
func (l *Square2D[T]) index(off int) [2]int {
	return [2]int{off / l.length, off % l.length}
}

// At returns the site at idx.
func (l *Square2D[T]) At(idx [2]int) T { return l.state[l.offset(idx)] }

// Set overwrites the site at idx.
func (l *Square2D[T]) Set(idx [2]int, site T) { l.state[l.offset(idx)] = site }

// Ptr returns a pointer to the site at idx.
func (l *Square2D[T]) Ptr(idx [2]int) *T { return &l.state[l.offset(idx)] }

// Swap exchanges the sites at a and b.
func (l *Square2D[T]) Swap(a, b [2]int) { l.swapAt(l.offset(a), l.offset(b)) }

// Sample draws a uniformly random index from r, i first.
func (l *Square2D[T]) Sample(r *rand.Rand) [2]int {
	i := l.sampleCoord(r)
	j := l.sampleCoord(r)
	return [2]int{i, j}
}

// Indices yields every index in row-major order.
func (l *Square2D[T]) Indices() iter.Seq[[2]int] {
	return func(yield func([2]int) bool) {
		for i := 0; i < l.length; i++ {
			for j := 0; j < l.length; j++ {
				if !yield([2]int{i, j}) {
					return
				}
			}
		}
	}
}

// All yields every (index, site) pair in row-major order.
func (l *Square2D[T]) All() iter.Seq2[[2]int, T] {
	return func(yield func([2]int, T) bool) {
		for off, v := range l.state {
			if !yield(l.index(off), v) {
				return
			}
		}
	}
}

// NearestNeighborsIndexPairs yields, per site, the forward pairs along j
// then along i.
func (l *Square2D[T]) NearestNeighborsIndexPairs() iter.Seq2[[2]int, [2]int] {
	p := l.period
	return func(yield func([2]int, [2]int) bool) {
		for i := 0; i < l.length; i++ {
			for j := 0; j < l.length; j++ {
				idx := [2]int{i, j}
				if !yield(idx, [2]int{i, p.Next(j)}) {
					return
				}
				if !yield(idx, [2]int{p.Next(i), j}) {
					return
				}
			}
		}
	}
}

// neighbors returns the four neighbor indices of {i, j} in canonical order.
func (l *Square2D[T]) neighbors(idx [2]int) [4][2]int {
	i, j := l.coord(idx[0]), l.coord(idx[1])
	p := l.period
	return [4][2]int{
		{i, p.Prev(j)},
		{i, p.Next(j)},
		{p.Prev(i), j},
		{p.Next(i), j},
	}
}

// NearestNeighborsIndex yields (i,prev j), (i,next j), (prev i,j), (next i,j).
func (l *Square2D[T]) NearestNeighborsIndex(idx [2]int) iter.Seq[[2]int] {
	nn := l.neighbors(idx)
	return func(yield func([2]int) bool) {
		for _, n := range nn {
			if !yield(n) {
				return
			}
		}
	}
}

// NearestNeighborsPairs is NearestNeighborsIndexPairs resolved to sites.
func (l *Square2D[T]) NearestNeighborsPairs() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for a, b := range l.NearestNeighborsIndexPairs() {
			if !yield(l.state[l.offset(a)], l.state[l.offset(b)]) {
				return
			}
		}
	}
}

// NearestNeighbors yields the four neighboring sites of idx in
// NearestNeighborsIndex order.
func (l *Square2D[T]) NearestNeighbors(idx [2]int) iter.Seq[T] {
	nn := l.neighbors(idx)
	return func(yield func(T) bool) {
		for _, n := range nn {
			if !yield(l.state[l.offset(n)]) {
				return
			}
		}
	}
}

// Diffuse runs one sweep: SiteCount() times, pick a random site, pick axis
// j or i with equal probability, propose a swap with the next neighbor on
// that axis, accept on coin.
func (l *Square2D[T]) Diffuse(coin sitestate.Coin, r *rand.Rand) {
	p := l.period
	for n := l.SiteCount(); n > 0; n-- {
		idx := l.Sample(r)
		i, j := idx[0], idx[1]
		var nn [2]int
		if r.IntN(2) == 0 {
			nn = [2]int{i, p.Next(j)}
		} else {
			nn = [2]int{p.Next(i), j}
		}
		if coin.Flip(r) {
			l.swapAt(l.offset(idx), l.offset(nn))
		}
	}
}

// String renders the lattice as a bordered grid centered on its midpoint.
func (l *Square2D[T]) String() string {
	return renderGrid(l.length, func(i, j int) T { return l.state[i*l.length+j] })
}
