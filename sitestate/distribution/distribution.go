package distribution

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvlattice/sitestate"
)

var (
	// ErrNoValues indicates a Categorical with no values to draw from.
	ErrNoValues = errors.New("distribution: no values")
	// ErrWeightsLength indicates len(weights) != len(values).
	ErrWeightsLength = errors.New("distribution: weights and values differ in length")
	// ErrBadWeight indicates a negative or non-finite weight, or a zero total.
	ErrBadWeight = errors.New("distribution: invalid weight")
)

// Compile-time checks.
var (
	_ sitestate.Distribution[int] = Constant[int]{}
	_ sitestate.Distribution[int] = Bernoulli[int]{}
	_ sitestate.Distribution[int] = (*Categorical[int])(nil)
	_ sitestate.Distribution[int] = Func[int](nil)
)

// Constant always yields Value and consumes no randomness.
type Constant[T any] struct {
	Value T
}

// Sample implements sitestate.Distribution.
func (c Constant[T]) Sample(*rand.Rand) T { return c.Value }

// Bernoulli yields the first value with probability p and the second
// value otherwise.
type Bernoulli[T any] struct {
	p       float64
	onTrue  T
	onFalse T
}

// NewBernoulli returns a two-valued distribution.
// Returns sitestate.ErrInvalidProbability if p is outside [0,1].
func NewBernoulli[T any](p float64, onTrue, onFalse T) (Bernoulli[T], error) {
	if err := sitestate.CheckProbability("NewBernoulli", p); err != nil {
		return Bernoulli[T]{}, err
	}
	return Bernoulli[T]{p: p, onTrue: onTrue, onFalse: onFalse}, nil
}

// P returns the probability of drawing the first value.
func (b Bernoulli[T]) P() float64 { return b.p }

// Sample implements sitestate.Distribution.
func (b Bernoulli[T]) Sample(r *rand.Rand) T {
	if (distuv.Bernoulli{P: b.p, Src: r}).Rand() == 1 {
		return b.onTrue
	}
	return b.onFalse
}

// Categorical draws values[k] with probability weights[k] / Σweights.
//
// Cumulative weights are fixed at construction and Sample only reads
// them, so one Categorical may be shared by goroutines that each own
// their *rand.Rand.
type Categorical[T any] struct {
	values []T
	cum    []float64 // cum[k] = Σ weights[0..k]
	last   int       // index of the last positive weight
}

// NewCategorical validates and copies values and weights.
// Complexity: O(n).
func NewCategorical[T any](values []T, weights []float64) (*Categorical[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewCategorical: %w", ErrNoValues)
	}
	if len(weights) != len(values) {
		return nil, fmt.Errorf("NewCategorical: %d weights for %d values: %w",
			len(weights), len(values), ErrWeightsLength)
	}
	last := -1
	for k, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, fmt.Errorf("NewCategorical: weights[%d]=%g: %w", k, w, ErrBadWeight)
		}
		if w > 0 {
			last = k
		}
	}
	if last < 0 {
		return nil, fmt.Errorf("NewCategorical: zero total weight: %w", ErrBadWeight)
	}

	cum := floats.CumSum(make([]float64, len(weights)), weights)
	if math.IsInf(cum[len(cum)-1], 0) {
		return nil, fmt.Errorf("NewCategorical: total weight overflows: %w", ErrBadWeight)
	}

	c := &Categorical[T]{values: make([]T, len(values)), cum: cum, last: last}
	copy(c.values, values)
	return c, nil
}

// Len returns the number of values.
func (c *Categorical[T]) Len() int { return len(c.values) }

// Sample implements sitestate.Distribution.
// Complexity: O(log n), one Float64 draw.
func (c *Categorical[T]) Sample(r *rand.Rand) T {
	u := r.Float64() * c.cum[len(c.cum)-1]
	k := sort.Search(len(c.cum), func(i int) bool { return c.cum[i] > u })
	if k > c.last {
		// u rounded up to the total.
		k = c.last
	}
	return c.values[k]
}

// Func adapts a plain function to sitestate.Distribution.
type Func[T any] func(r *rand.Rand) T

// Sample implements sitestate.Distribution.
func (f Func[T]) Sample(r *rand.Rand) T { return f(r) }
