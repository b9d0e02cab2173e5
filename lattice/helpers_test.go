package lattice_test

import (
	"iter"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/rng"
	"github.com/katalvlaran/lvlattice/sitestate"
)

// species is a two-state site with a one-rune rendering.
type species byte

const (
	speciesA species = 'A'
	speciesB species = 'B'
)

func (s species) Char() rune { return rune(s) }

// countSeq returns the number of elements of seq.
func countSeq[V any](seq iter.Seq[V]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// counts tallies site values.
func counts[T comparable](seq iter.Seq[T]) map[T]int {
	m := make(map[T]int)
	for v := range seq {
		m[v]++
	}
	return m
}

// pow returns base^exp for small non-negative exponents.
func pow(base, exp int) int {
	n := 1
	for i := 0; i < exp; i++ {
		n *= base
	}
	return n
}

// contains reports whether seq yields want.
func contains[I comparable](seq iter.Seq[I], want I) bool {
	for v := range seq {
		if v == want {
			return true
		}
	}
	return false
}

// checkTopology verifies the dimension-independent topology contract on
// any sitestate.Lattice.
func checkTopology[I comparable, T any](t *testing.T, l sitestate.Lattice[I, T]) {
	t.Helper()
	d, n := l.Dimension(), l.Length()

	require.Equal(t, pow(n, d), l.SiteCount())
	require.Equal(t, l.SiteCount(), countSeq(l.Sites()))
	require.Equal(t, l.SiteCount(), countSeq(l.SitesMut()))

	pairs := 0
	for a, b := range l.NearestNeighborsIndexPairs() {
		pairs++
		require.Truef(t, contains(l.NearestNeighborsIndex(a), b), "%v not a neighbor of %v", b, a)
		require.Truef(t, contains(l.NearestNeighborsIndex(b), a), "%v not a neighbor of %v", a, b)
	}
	require.Equal(t, d*l.SiteCount(), pairs)

	valuePairs := 0
	for range l.NearestNeighborsPairs() {
		valuePairs++
	}
	require.Equal(t, pairs, valuePairs)

	r := make(map[I]struct{})
	for a := range l.NearestNeighborsIndexPairs() {
		r[a] = struct{}{}
	}
	require.Len(t, r, l.SiteCount(), "every site appears as a pair origin")

	for a := range r {
		first := collect(l.NearestNeighborsIndex(a))
		second := collect(l.NearestNeighborsIndex(a))
		require.Len(t, first, 2*d)
		require.Equal(t, first, second, "neighbor order must be stable")
		require.Len(t, collect(l.NearestNeighbors(a)), 2*d)
		if n > 2 {
			seen := make(map[I]struct{})
			for _, b := range first {
				require.NotEqual(t, a, b)
				seen[b] = struct{}{}
			}
			require.Len(t, seen, 2*d, "neighbors must be distinct for length > 2")
		}
	}
}

func collect[V any](seq iter.Seq[V]) []V {
	var out []V
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// newExampleRand is the fixed source used by examples.
func newExampleRand() *rand.Rand { return rng.New(42) }
