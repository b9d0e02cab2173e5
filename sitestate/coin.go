package sitestate

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Coin is a Bernoulli trial with fixed success probability.
// The zero value never succeeds.
type Coin struct {
	p float64
}

// NewCoin returns a Coin succeeding with probability p.
// Returns ErrInvalidProbability if p is NaN or outside [0,1].
func NewCoin(p float64) (Coin, error) {
	if err := CheckProbability("NewCoin", p); err != nil {
		return Coin{}, err
	}
	return Coin{p: p}, nil
}

// MustCoin is NewCoin for literal probabilities; it panics on invalid p.
func MustCoin(p float64) Coin {
	c, err := NewCoin(p)
	if err != nil {
		panic(err)
	}
	return c
}

// P returns the success probability.
func (c Coin) P() float64 { return c.p }

// Flip draws one trial from r.
func (c Coin) Flip(r *rand.Rand) bool {
	return distuv.Bernoulli{P: c.p, Src: r}.Rand() == 1
}

// CheckProbability returns ErrInvalidProbability, wrapped with method, if p
// is NaN or outside [0,1].
func CheckProbability(method string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%g: %w", method, p, ErrInvalidProbability)
	}
	return nil
}
