// File: growth/growth.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Geometric, fixed-step and power-of-two capacity growth policies.

package growth

import (
	"github.com/momentics/hioload-mem/internal/normalize"
)

// DefaultBase is the first non-zero capacity handed out by geometric policies.
const DefaultBase = 8

// Doubling grows geometrically. The zero value doubles from DefaultBase.
type Doubling struct {
	Factor int // growth multiplier, 2 when unset
	Base   int // first non-zero capacity, DefaultBase when unset
}

// NextCapacity implements api.GrowthPolicy.
func (g Doubling) NextCapacity(current int) int {
	factor := g.Factor
	if factor < 2 {
		factor = 2
	}
	base := g.Base
	if base < 1 {
		base = DefaultBase
	}
	if current < base {
		return base
	}
	return current * factor
}

// Step grows by a fixed increment. Step{N: 1} is the minimal no-amortization
// policy: every insertion past capacity triggers a reallocation.
type Step struct {
	N int // increment, 1 when unset
}

// NextCapacity implements api.GrowthPolicy.
func (g Step) NextCapacity(current int) int {
	n := g.N
	if n < 1 {
		n = 1
	}
	return current + n
}

// PowerOfTwo grows to the smallest power of two strictly above the current
// capacity. Keeps slab sizes friendly to size-classed allocators.
type PowerOfTwo struct{}

// NextCapacity implements api.GrowthPolicy.
func (PowerOfTwo) NextCapacity(current int) int {
	return normalize.NextPowerOfTwo(current + 1)
}
