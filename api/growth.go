// File: api/growth.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity growth strategy consulted by a buffer on capacity exhaustion.

package api

// GrowthPolicy computes the capacity to reserve when a buffer is full.
//
// NextCapacity must be deterministic, must return a value strictly greater
// than current, and must reach any target size in a finite number of calls
// (geometric doubling, fixed step, and similar policies all qualify).
type GrowthPolicy interface {
	NextCapacity(current int) int
}

// GrowthFunc adapts a plain function to GrowthPolicy.
type GrowthFunc func(current int) int

// NextCapacity implements GrowthPolicy.
func (f GrowthFunc) NextCapacity(current int) int { return f(current) }
