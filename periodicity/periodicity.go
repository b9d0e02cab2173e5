package periodicity

import "fmt"

// Periodicity maps every index of a ring of length n to its previous and
// next index.
type Periodicity struct {
	prev []int
	next []int
}

// New builds the prev/next tables for a ring of the given length.
// Panics if length <= 0: a ring without sites has no neighbors.
// Complexity: O(length) time and memory.
func New(length int) *Periodicity {
	if length <= 0 {
		panic(fmt.Sprintf("periodicity: New(%d): length must be ≥ 1", length))
	}
	prev := make([]int, length)
	next := make([]int, length)
	for k := 0; k < length; k++ {
		prev[k] = k - 1
		next[k] = k + 1
	}
	// Periodic boundaries.
	prev[0] = length - 1
	next[length-1] = 0

	return &Periodicity{prev: prev, next: next}
}

// Len returns the ring length.
func (p *Periodicity) Len() int { return len(p.next) }

// Prev returns the index preceding k on the ring.
func (p *Periodicity) Prev(k int) int { return p.prev[k] }

// Next returns the index following k on the ring.
func (p *Periodicity) Next(k int) int { return p.next[k] }
