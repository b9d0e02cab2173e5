package lattice

import (
	"iter"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/lvlattice/sitestate"
)

// Square3D is a periodic length×length×length cubic lattice indexed by
// {i, j, k}.
type Square3D[T any] struct {
	square[T]
}

var _ sitestate.Lattice[[3]int, int] = (*Square3D[int])(nil)

// Uniform3D returns a cubic lattice with every site equal to site.
// Panics if length ≤ 0.
func Uniform3D[T any](length int, site T) *Square3D[T] {
	l := &Square3D[T]{square: newSquare[T](length, 3)}
	l.SetUniform(site)
	return l
}

// Random3D returns a cubic lattice of independent draws from dist.
// Panics if length ≤ 0.
func Random3D[T any](length int, dist sitestate.Distribution[T], r *rand.Rand) *Square3D[T] {
	l := &Square3D[T]{square: newSquare[T](length, 3)}
	l.SetRandom(dist, r)
	return l
}

// New3D returns a cubic lattice filled per spec.
func New3D[T any](length int, spec sitestate.InitialStateSpec[T]) *Square3D[T] {
	return sitestate.New[*Square3D[T], T](Builder3D[T]{}, length, spec)
}

// Builder3D implements sitestate.Builder for Square3D.
type Builder3D[T any] struct{}

// Uniform implements sitestate.Builder.
func (Builder3D[T]) Uniform(length int, site T) *Square3D[T] { return Uniform3D(length, site) }

// Random implements sitestate.Builder.
func (Builder3D[T]) Random(length int, dist sitestate.Distribution[T], r *rand.Rand) *Square3D[T] {
	return Random3D(length, dist, r)
}

// Reset refills the lattice per spec.
func (l *Square3D[T]) Reset(spec sitestate.InitialStateSpec[T]) { spec.Reset(l) }

func (l *Square3D[T]) offset(idx [3]int) int {
	return (l.coord(idx[0])*l.length+l.coord(idx[1]))*l.length + l.coord(idx[2])
}

func (l *Square3D[T]) index(off int) [3]int {
	n := l.length
	return [3]int{off / (n * n), (off / n) % n, off % n}
}

// At returns the site at idx.
func (l *Square3D[T]) At(idx [3]int) T { return l.state[l.offset(idx)] }

// Set overwrites the site at idx.
func (l *Square3D[T]) Set(idx [3]int, site T) { l.state[l.offset(idx)] = site }

// Ptr returns a pointer to the site at idx.
func (l *Square3D[T]) Ptr(idx [3]int) *T { return &l.state[l.offset(idx)] }

// Swap exchanges the sites at a and b.
func (l *Square3D[T]) Swap(a, b [3]int) { l.swapAt(l.offset(a), l.offset(b)) }

// Sample draws a uniformly random index from r, i first.
func (l *Square3D[T]) Sample(r *rand.Rand) [3]int {
	i := l.sampleCoord(r)
	j := l.sampleCoord(r)
	k := l.sampleCoord(r)
	return [3]int{i, j, k}
}

// Indices yields every index in row-major order.
func (l *Square3D[T]) Indices() iter.Seq[[3]int] {
	return func(yield func([3]int) bool) {
		for off := range l.state {
			if !yield(l.index(off)) {
				return
			}
		}
	}
}

// All yields every (index, site) pair in row-major order.
func (l *Square3D[T]) All() iter.Seq2[[3]int, T] {
	return func(yield func([3]int, T) bool) {
		for off, v := range l.state {
			if !yield(l.index(off), v) {
				return
			}
		}
	}
}

// NearestNeighborsIndexPairs yields, per site, the forward pairs along k,
// j, then i.
func (l *Square3D[T]) NearestNeighborsIndexPairs() iter.Seq2[[3]int, [3]int] {
	p := l.period
	return func(yield func([3]int, [3]int) bool) {
		for off := range l.state {
			idx := l.index(off)
			i, j, k := idx[0], idx[1], idx[2]
			if !yield(idx, [3]int{i, j, p.Next(k)}) {
				return
			}
			if !yield(idx, [3]int{i, p.Next(j), k}) {
				return
			}
			if !yield(idx, [3]int{p.Next(i), j, k}) {
				return
			}
		}
	}
}

func (l *Square3D[T]) neighbors(idx [3]int) [6][3]int {
	i, j, k := l.coord(idx[0]), l.coord(idx[1]), l.coord(idx[2])
	p := l.period
	return [6][3]int{
		{i, j, p.Prev(k)},
		{i, j, p.Next(k)},
		{i, p.Prev(j), k},
		{i, p.Next(j), k},
		{p.Prev(i), j, k},
		{p.Next(i), j, k},
	}
}

// NearestNeighborsIndex yields the six neighbors of idx, k axis first,
// prev before next.
func (l *Square3D[T]) NearestNeighborsIndex(idx [3]int) iter.Seq[[3]int] {
	nn := l.neighbors(idx)
	return func(yield func([3]int) bool) {
		for _, n := range nn {
			if !yield(n) {
				return
			}
		}
	}
}

// NearestNeighborsPairs is NearestNeighborsIndexPairs resolved to sites.
func (l *Square3D[T]) NearestNeighborsPairs() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for a, b := range l.NearestNeighborsIndexPairs() {
			if !yield(l.state[l.offset(a)], l.state[l.offset(b)]) {
				return
			}
		}
	}
}

// NearestNeighbors yields the six neighboring sites of idx in
// NearestNeighborsIndex order.
func (l *Square3D[T]) NearestNeighbors(idx [3]int) iter.Seq[T] {
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
// k, j or i uniformly, propose a swap with the next neighbor on that axis,
// accept on coin.
func (l *Square3D[T]) Diffuse(coin sitestate.Coin, r *rand.Rand) {
	p := l.period
	for n := l.SiteCount(); n > 0; n-- {
		idx := l.Sample(r)
		i, j, k := idx[0], idx[1], idx[2]
		var nn [3]int
		switch r.IntN(3) {
		case 0:
			nn = [3]int{i, j, p.Next(k)}
		case 1:
			nn = [3]int{i, p.Next(j), k}
		default:
			nn = [3]int{p.Next(i), j, k}
		}
		if coin.Flip(r) {
			l.swapAt(l.offset(idx), l.offset(nn))
		}
	}
}

// String renders each i-slice as a bordered grid, slices separated by a
// blank line. Slices, rows and columns are centered on the midpoint.
func (l *Square3D[T]) String() string {
	n := l.length
	var b strings.Builder
	for s := 0; s < n; s++ {
		if s > 0 {
			b.WriteString("\n\n")
		}
		i := (s + n/2) % n
		b.WriteString(renderGrid(n, func(j, k int) T { return l.state[(i*n+j)*n+k] }))
	}
	return b.String()
}
