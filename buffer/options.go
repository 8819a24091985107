// File: buffer/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options configuring a Buffer at construction time.

package buffer

import (
	"github.com/momentics/hioload-mem/api"
)

// Option configures a Buffer during construction.
type Option[T any] func(*Buffer[T])

// WithAllocator selects the storage allocation strategy.
// Passing nil keeps the default heap allocator.
func WithAllocator[T any](a api.Allocator[T]) Option[T] {
	return func(b *Buffer[T]) {
		if a != nil {
			b.alloc = a
		}
	}
}

// WithGrowthPolicy selects the capacity growth strategy used when an
// insertion finds the buffer full. Passing nil keeps the default doubling
// policy.
func WithGrowthPolicy[T any](p api.GrowthPolicy) Option[T] {
	return func(b *Buffer[T]) {
		if p != nil {
			b.policy = p
		}
	}
}

// WithBoundsChecking makes the fast accessor Index validate indices against
// the live range and panic with an *api.Error on violation. Without this
// option Index performs no live-range validation.
func WithBoundsChecking[T any]() Option[T] {
	return func(b *Buffer[T]) {
		b.checked = true
	}
}
