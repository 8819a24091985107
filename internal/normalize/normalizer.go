// File: internal/normalize/normalizer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unified normalization routines for slot counts and capacities.
// Ensures all allocation and reservation call sites validate their sizes
// against the same rules instead of clamping ad hoc.
//
// Example usage:
//
//   n := normalize.Capacity(requested)
//   c := normalize.NextPowerOfTwo(current + 1)
//
// If input is invalid, fallback value (0) is used and a warning may be logged.

package normalize

import (
	"fmt"
	"math/bits"
)

// For logging normalization events (can be replaced with structured logger).
var logNormalize = func(msg string, args ...any) {
	fmt.Printf("[normalize] "+msg+"\n", args...)
}

// SetLogger replaces the normalization warning hook. Passing nil silences it.
func SetLogger(fn func(msg string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	logNormalize = fn
}

// Capacity validates and normalizes a requested slot count.
// Negative requests fall back to 0.
func Capacity(requested int) int {
	if requested < 0 {
		logNormalize("capacity request %d is negative, fallback to 0", requested)
		return 0
	}
	return requested
}

// NextPowerOfTwo returns the smallest power of two >= n. n <= 1 yields 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// SpanInRange reports whether [from, to) is a valid span over size slots.
func SpanInRange(from, to, size int) bool {
	return from >= 0 && to <= size && from <= to
}
