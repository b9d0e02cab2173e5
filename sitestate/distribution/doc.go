// Package distribution provides site-value distributions for
// sitestate.RandomSites, backed by gonum's stat/distuv.
//
//   - Constant:    always the same value.
//   - Bernoulli:   one of two values, the first with probability p.
//   - Categorical: one of n values with relative weights.
//   - Func:        adapter for ad-hoc samplers.
//
// Every Sample draws from the *rand.Rand it is given and nothing else.
//
// Errors:
//
//   - sitestate.ErrInvalidProbability: Bernoulli p outside [0,1].
//   - ErrNoValues:      Categorical without values.
//   - ErrWeightsLength: weights and values differ in length.
//   - ErrBadWeight:     negative, NaN or infinite weight, or all weights zero.
package distribution
