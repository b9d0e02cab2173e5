package lattice_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/rng"
	"github.com/katalvlaran/lvlattice/sitestate"
	"github.com/katalvlaran/lvlattice/sitestate/distribution"
)

var lengths = []int{1, 2, 3, 4, 7}

//----------------------------------------------------------------------------//
// Construction and SiteState
//----------------------------------------------------------------------------//

// TestTopology runs the shared topology contract on every dimension.
func TestTopology(t *testing.T) {
	for _, n := range lengths {
		checkTopology[int, int](t, lattice.Uniform1D(n, 0))
		checkTopology[[2]int, int](t, lattice.Uniform2D(n, 0))
		checkTopology[[3]int, int](t, lattice.Uniform3D(n, 0))
	}
}

// TestNew_PanicsOnEmpty: side length 0 is a contract violation.
func TestNew_PanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() { lattice.Uniform1D(0, 0) })
	require.Panics(t, func() { lattice.Uniform2D(-1, 0) })
	require.Panics(t, func() { lattice.Random3D[int](0, distribution.Constant[int]{}, rng.New(1)) })
}

// TestUniform_AllEqual checks uniform construction and SetUniform after a
// random fill, for every dimension.
func TestUniform_AllEqual(t *testing.T) {
	dist, err := distribution.NewBernoulli(0.5, speciesA, speciesB)
	require.NoError(t, err)
	r := rng.New(4)

	l1 := lattice.Random1D(9, dist, r)
	l1.SetUniform(speciesB)
	require.Equal(t, map[species]int{speciesB: 9}, counts(l1.Sites()))

	l2 := lattice.Uniform2D(5, speciesA)
	require.Equal(t, map[species]int{speciesA: 25}, counts(l2.Sites()))
	l2.SetRandom(dist, r)
	l2.SetUniform(speciesB)
	require.Equal(t, map[species]int{speciesB: 25}, counts(l2.Sites()))

	l3 := lattice.Uniform3D(3, speciesA)
	require.Equal(t, map[species]int{speciesA: 27}, counts(l3.Sites()))
}

// TestRandom_Reproducible: equal seeds give identical contents.
func TestRandom_Reproducible(t *testing.T) {
	dist := distribution.Func[int](func(r *rand.Rand) int { return r.IntN(1000) })
	a := lattice.Random2D(8, dist, rng.New(77))
	b := lattice.Random2D(8, dist, rng.New(77))
	require.Equal(t, slices.Collect(a.Sites()), slices.Collect(b.Sites()))
}

// TestReset_RoundTrip: random, then reset to UniformSites equals a fresh
// uniform lattice.
func TestReset_RoundTrip(t *testing.T) {
	dist, err := distribution.NewCategorical([]int{1, 2, 3}, []float64{1, 1, 1})
	require.NoError(t, err)

	l1 := lattice.New1D[int](6, sitestate.NewRandomSites[int](dist, rng.New(1)))
	l1.Reset(sitestate.UniformSites[int]{Site: 9})
	require.Equal(t, slices.Collect(lattice.Uniform1D(6, 9).Sites()), slices.Collect(l1.Sites()))

	l2 := lattice.New2D[int](4, sitestate.NewRandomSites[int](dist, rng.New(2)))
	sitestate.Reset[int](l2, sitestate.UniformSites[int]{Site: 9})
	require.Equal(t, slices.Collect(lattice.Uniform2D(4, 9).Sites()), slices.Collect(l2.Sites()))

	l3 := lattice.New3D[int](3, sitestate.NewRandomSites[int](dist, rng.New(3)))
	l3.Reset(&sitestate.UniformSites[int]{Site: 9})
	require.Equal(t, slices.Collect(lattice.Uniform3D(3, 9).Sites()), slices.Collect(l3.Sites()))
}

// TestNew_SpecMatchesConstructors: New via a spec equals the direct constructor.
func TestNew_SpecMatchesConstructors(t *testing.T) {
	dist, err := distribution.NewBernoulli(0.4, 1, 0)
	require.NoError(t, err)

	viaSpec := lattice.New3D[int](4, sitestate.NewRandomSites[int](dist, rng.New(10)))
	direct := lattice.Random3D(4, dist, rng.New(10))
	require.Equal(t, slices.Collect(direct.Sites()), slices.Collect(viaSpec.Sites()))

	u := lattice.New2D[species](3, sitestate.UniformSites[species]{Site: speciesB})
	require.Equal(t, map[species]int{speciesB: 9}, counts(u.Sites()))
}

// TestIndexing covers At/Set/Ptr/Swap and the row-major traversal order.
func TestIndexing(t *testing.T) {
	l := lattice.Uniform2D(3, 0)
	l.Set([2]int{1, 2}, 5)
	*l.Ptr([2]int{2, 0}) = 7
	require.Equal(t, 5, l.At([2]int{1, 2}))
	require.Equal(t, []int{0, 0, 0, 0, 0, 5, 7, 0, 0}, slices.Collect(l.Sites()))

	l.Swap([2]int{1, 2}, [2]int{0, 0})
	require.Equal(t, 5, l.At([2]int{0, 0}))
	require.Equal(t, 0, l.At([2]int{1, 2}))

	for p := range l.SitesMut() {
		*p++
	}
	require.Equal(t, 6, l.At([2]int{0, 0}))

	idx := slices.Collect(l.Indices())
	require.Len(t, idx, 9)
	require.Equal(t, [2]int{0, 0}, idx[0])
	require.Equal(t, [2]int{0, 1}, idx[1])
	require.Equal(t, [2]int{2, 2}, idx[8])
	for i, v := range l.All() {
		require.Equal(t, l.At(i), v)
	}

	c := lattice.Uniform3D(2, 0)
	c.Set([3]int{1, 0, 1}, 3)
	require.Equal(t, 3, slices.Collect(c.Sites())[5])
	for i, v := range c.All() {
		require.Equal(t, c.At(i), v)
	}
	require.Equal(t, slices.Collect(c.Indices())[5], [3]int{1, 0, 1})

	s := lattice.Uniform1D(4, 0)
	s.Set(3, 1)
	s.Swap(3, 0)
	require.Equal(t, []int{1, 0, 0, 0}, slices.Collect(s.Sites()))
	*s.Ptr(2) = 4
	for i, v := range s.All() {
		require.Equal(t, s.At(i), v)
	}
	require.Equal(t, []int{0, 1, 2, 3}, slices.Collect(s.Indices()))
}

// TestIndexing_OutOfRange: bad coordinates panic instead of aliasing
// another site of the flat backing array.
func TestIndexing_OutOfRange(t *testing.T) {
	l1 := lattice.Uniform1D(3, 0)
	l2 := lattice.Uniform2D(3, 0)
	l3 := lattice.Uniform3D(3, 0)
	cases := map[string]func(){
		"1D-At":        func() { l1.At(3) },
		"1D-Set":       func() { l1.Set(-1, 0) },
		"1D-Neighbors": func() { l1.NearestNeighborsIndex(3) },
		"2D-At":        func() { l2.At([2]int{0, 3}) },
		"2D-Ptr":       func() { l2.Ptr([2]int{3, 0}) },
		"2D-Neighbors": func() { l2.NearestNeighbors([2]int{-1, 0}) },
		"3D-Set":       func() { l3.Set([3]int{0, 0, 3}, 1) },
		"3D-Swap":      func() { l3.Swap([3]int{0, 0, 0}, [3]int{0, 4, 0}) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) { require.Panics(t, fn) })
	}
}

// TestSample_Uniform: every position is reachable and draws are in range.
func TestSample_Uniform(t *testing.T) {
	r := rng.New(6)
	l := lattice.Uniform2D(3, 0)
	hits := make(map[[2]int]int)
	const n = 9000
	for k := 0; k < n; k++ {
		idx := l.Sample(r)
		require.GreaterOrEqual(t, idx[0], 0)
		require.Less(t, idx[0], 3)
		require.GreaterOrEqual(t, idx[1], 0)
		require.Less(t, idx[1], 3)
		hits[idx]++
	}
	require.Len(t, hits, 9)
	for idx, c := range hits {
		assert.InDeltaf(t, n/9, c, 150, "position %v", idx)
	}

	c := lattice.Uniform3D(2, 0)
	cubeHits := make(map[[3]int]bool)
	for k := 0; k < 500; k++ {
		cubeHits[c.Sample(r)] = true
	}
	require.Len(t, cubeHits, 8)

	s := lattice.Uniform1D(1, 0)
	require.Equal(t, 0, s.Sample(r))
}

// TestSample_OnlyCallerSource: sampling consumes the given source only,
// so identical sources give identical index sequences.
func TestSample_OnlyCallerSource(t *testing.T) {
	l := lattice.Uniform3D(5, 0)
	a, b := rng.New(13), rng.New(13)
	for k := 0; k < 100; k++ {
		require.Equal(t, l.Sample(a), l.Sample(b))
	}
}

//----------------------------------------------------------------------------//
// Nearest neighbors
//----------------------------------------------------------------------------//

// TestNeighborOrder pins the canonical neighbor order of each dimension.
func TestNeighborOrder(t *testing.T) {
	l1 := lattice.Uniform1D(5, 0)
	require.Equal(t, []int{4, 1}, slices.Collect(l1.NearestNeighborsIndex(0)))
	require.Equal(t, []int{3, 0}, slices.Collect(l1.NearestNeighborsIndex(4)))

	l2 := lattice.Uniform2D(4, 0)
	require.Equal(t,
		[][2]int{{0, 3}, {0, 1}, {3, 0}, {1, 0}},
		slices.Collect(l2.NearestNeighborsIndex([2]int{0, 0})))
	require.Equal(t,
		[][2]int{{2, 0}, {2, 2}, {1, 1}, {3, 1}},
		slices.Collect(l2.NearestNeighborsIndex([2]int{2, 1})))

	l3 := lattice.Uniform3D(3, 0)
	require.Equal(t,
		[][3]int{{0, 1, 1}, {0, 1, 0}, {0, 0, 2}, {0, 2, 2}, {2, 1, 2}, {1, 1, 2}},
		slices.Collect(l3.NearestNeighborsIndex([3]int{0, 1, 2})))
}

// TestNeighborValues: value variants resolve the index variants in order.
func TestNeighborValues(t *testing.T) {
	l := lattice.Uniform2D(4, 0)
	for i := range l.Indices() {
		l.Set(i, i[0]*10+i[1])
	}
	idx := [2]int{1, 2}
	var want []int
	for n := range l.NearestNeighborsIndex(idx) {
		want = append(want, l.At(n))
	}
	require.Equal(t, want, slices.Collect(l.NearestNeighbors(idx)))

	var wantPairs, gotPairs [][2]int
	for a, b := range l.NearestNeighborsIndexPairs() {
		wantPairs = append(wantPairs, [2]int{l.At(a), l.At(b)})
	}
	for a, b := range l.NearestNeighborsPairs() {
		gotPairs = append(gotPairs, [2]int{a, b})
	}
	require.Equal(t, wantPairs, gotPairs)

	c := lattice.Uniform3D(3, 0)
	for i := range c.Indices() {
		c.Set(i, i[0]*100+i[1]*10+i[2])
	}
	var cw []int
	for n := range c.NearestNeighborsIndex([3]int{2, 0, 1}) {
		cw = append(cw, c.At(n))
	}
	require.Equal(t, cw, slices.Collect(c.NearestNeighbors([3]int{2, 0, 1})))
	for a, b := range c.NearestNeighborsPairs() {
		require.NotEqual(t, a, b)
	}

	s := lattice.Uniform1D(4, 0)
	for i := range s.Indices() {
		s.Set(i, i)
	}
	require.Equal(t, []int{1, 3}, slices.Collect(s.NearestNeighbors(2)))
	for a, b := range s.NearestNeighborsPairs() {
		require.Equal(t, (a+1)%4, b)
	}
}

// TestPairs_FirstOrder pins the emission order of forward pairs.
func TestPairs_FirstOrder(t *testing.T) {
	l := lattice.Uniform2D(3, 0)
	var got [][2][2]int
	for a, b := range l.NearestNeighborsIndexPairs() {
		got = append(got, [2][2]int{a, b})
		if len(got) == 4 {
			break
		}
	}
	require.Equal(t, [][2][2]int{
		{{0, 0}, {0, 1}},
		{{0, 0}, {1, 0}},
		{{0, 1}, {0, 2}},
		{{0, 1}, {1, 1}},
	}, got)

	c := lattice.Uniform3D(3, 0)
	var first [][2][3]int
	for a, b := range c.NearestNeighborsIndexPairs() {
		first = append(first, [2][3]int{a, b})
		if len(first) == 3 {
			break
		}
	}
	require.Equal(t, [][2][3]int{
		{{0, 0, 0}, {0, 0, 1}},
		{{0, 0, 0}, {0, 1, 0}},
		{{0, 0, 0}, {1, 0, 0}},
	}, first)
}

// TestPairs_UniqueEdges: for length > 2 every undirected edge appears once.
func TestPairs_UniqueEdges(t *testing.T) {
	type edge struct{ a, b [2]int }
	norm := func(a, b [2]int) edge {
		if b[0] < a[0] || (b[0] == a[0] && b[1] < a[1]) {
			a, b = b, a
		}
		return edge{a, b}
	}
	l := lattice.Uniform2D(5, 0)
	seen := make(map[edge]int)
	for a, b := range l.NearestNeighborsIndexPairs() {
		seen[norm(a, b)]++
	}
	require.Len(t, seen, 2*25)
	for e, c := range seen {
		require.Equalf(t, 1, c, "edge %v", e)
	}
}

// TestPairs_LengthTwo: prev and next coincide, so each axis edge is emitted
// once from each endpoint; the count stays D × N.
func TestPairs_LengthTwo(t *testing.T) {
	l1 := lattice.Uniform1D(2, 0)
	var got [][2]int
	for a, b := range l1.NearestNeighborsIndexPairs() {
		got = append(got, [2]int{a, b})
	}
	require.Equal(t, [][2]int{{0, 1}, {1, 0}}, got)
	require.Equal(t, []int{1, 1}, slices.Collect(l1.NearestNeighborsIndex(0)))

	l2 := lattice.Uniform2D(2, 0)
	undirected := make(map[[2][2]int]int)
	total := 0
	for a, b := range l2.NearestNeighborsIndexPairs() {
		total++
		if b[0] < a[0] || (b[0] == a[0] && b[1] < a[1]) {
			a, b = b, a
		}
		undirected[[2][2]int{a, b}]++
	}
	require.Equal(t, 8, total)
	require.Len(t, undirected, 4)
	for e, c := range undirected {
		require.Equalf(t, 2, c, "edge %v", e)
	}
}

// TestPairs_LengthOne: the single site neighbors itself on every axis and
// enumeration terminates with D self pairs.
func TestPairs_LengthOne(t *testing.T) {
	l3 := lattice.Uniform3D(1, speciesA)
	zero := [3]int{}
	nn := slices.Collect(l3.NearestNeighborsIndex(zero))
	require.Len(t, nn, 6)
	for _, n := range nn {
		require.Equal(t, zero, n)
	}
	pairs := 0
	for a, b := range l3.NearestNeighborsIndexPairs() {
		require.Equal(t, zero, a)
		require.Equal(t, zero, b)
		pairs++
	}
	require.Equal(t, 3, pairs)

	l1 := lattice.Uniform1D(1, 0)
	require.Equal(t, []int{0, 0}, slices.Collect(l1.NearestNeighborsIndex(0)))
	selfPairs := 0
	for a, b := range l1.NearestNeighborsIndexPairs() {
		require.Equal(t, a, b)
		selfPairs++
	}
	require.Equal(t, 1, selfPairs)
}

// TestIterators_EarlyStop: breaking out of every iterator is safe.
func TestIterators_EarlyStop(t *testing.T) {
	l := lattice.Uniform3D(3, 1)
	for range l.Sites() {
		break
	}
	for range l.SitesMut() {
		break
	}
	for range l.Indices() {
		break
	}
	for range l.All() {
		break
	}
	for range l.NearestNeighborsIndexPairs() {
		break
	}
	for range l.NearestNeighborsPairs() {
		break
	}
	for range l.NearestNeighborsIndex([3]int{1, 1, 1}) {
		break
	}
	for range l.NearestNeighbors([3]int{1, 1, 1}) {
		break
	}
	s := lattice.Uniform1D(3, 1)
	for range s.NearestNeighborsIndex(1) {
		break
	}
	for range s.NearestNeighbors(1) {
		break
	}
	for range s.NearestNeighborsPairs() {
		break
	}
}
