package lattice

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/katalvlaran/lvlattice/periodicity"
	"github.com/katalvlaran/lvlattice/sitestate"
)

// square is the dimension-independent container behind every lattice type.
type square[T any] struct {
	// state holds length^dim sites in row-major order.
	state []T
	// length is the side length of every axis.
	length int
	// dim is the number of axes.
	dim int
	// period is shared by all axes.
	period *periodicity.Periodicity
}

// newSquare allocates a zeroed square container.
// Panics on length ≤ 0 or if length^dim overflows int.
func newSquare[T any](length, dim int) square[T] {
	if length <= 0 {
		panic(fmt.Sprintf("lattice: side length %d must be ≥ 1", length))
	}
	n := 1
	for d := 0; d < dim; d++ {
		if n > maxInt/length {
			panic(fmt.Sprintf("lattice: %d^%d sites overflow int", length, dim))
		}
		n *= length
	}
	return square[T]{
		state:  make([]T, n),
		length: length,
		dim:    dim,
		period: periodicity.New(length),
	}
}

const maxInt = int(^uint(0) >> 1)

// Length returns the side length shared by every axis.
func (s *square[T]) Length() int { return s.length }

// Dimension returns the number of axes.
func (s *square[T]) Dimension() int { return s.dim }

// SiteCount returns length^Dimension.
func (s *square[T]) SiteCount() int { return len(s.state) }

// Sites yields every site in row-major order.
func (s *square[T]) Sites() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.state {
			if !yield(v) {
				return
			}
		}
	}
}

// SitesMut yields a pointer to every site in row-major order.
func (s *square[T]) SitesMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range s.state {
			if !yield(&s.state[i]) {
				return
			}
		}
	}
}

// SetUniform sets all sites to site.
func (s *square[T]) SetUniform(site T) {
	for i := range s.state {
		s.state[i] = site
	}
}

// SetRandom overwrites all sites, in row-major order, with draws from dist.
func (s *square[T]) SetRandom(dist sitestate.Distribution[T], r *rand.Rand) {
	for i := range s.state {
		s.state[i] = dist.Sample(r)
	}
}

// coord validates one axis coordinate.
func (s *square[T]) coord(c int) int {
	if uint(c) >= uint(s.length) {
		panic(fmt.Sprintf("lattice: coordinate %d out of range [0,%d)", c, s.length))
	}
	return c
}

// sampleCoord draws one axis coordinate uniformly from r.
func (s *square[T]) sampleCoord(r *rand.Rand) int { return r.IntN(s.length) }

// swapAt exchanges the sites at two linear offsets.
func (s *square[T]) swapAt(a, b int) {
	s.state[a], s.state[b] = s.state[b], s.state[a]
}
