// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake allocator implementations for testing failure propagation and
// reallocation accounting.

package fake

import (
	"github.com/momentics/hioload-mem/api"
)

// FailingAllocator succeeds for the first FailAfter allocations, then fails
// every request with api.ErrAllocationFailed.
type FailingAllocator[T any] struct {
	FailAfter int
	calls     int
}

// Allocate implements api.Allocator.
func (f *FailingAllocator[T]) Allocate(n int) ([]T, error) {
	f.calls++
	if f.calls > f.FailAfter {
		return nil, api.NewError(api.ErrCodeAllocationFailed, "fake allocator exhausted").
			WithContext("call", f.calls).
			WithContext("slots", n)
	}
	if n <= 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate implements api.Allocator.
func (f *FailingAllocator[T]) Deallocate([]T) {}

// Stats implements api.Allocator.
func (f *FailingAllocator[T]) Stats() api.AllocatorStats {
	return api.AllocatorStats{}
}

// CountingAllocator records every call, delegating storage to the Go heap.
type CountingAllocator[T any] struct {
	Allocs int
	Frees  int
}

// Allocate implements api.Allocator.
func (c *CountingAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative slot count").
			WithContext("slots", n)
	}
	c.Allocs++
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate implements api.Allocator.
func (c *CountingAllocator[T]) Deallocate(storage []T) {
	if storage == nil {
		return
	}
	c.Frees++
}

// Stats implements api.Allocator.
func (c *CountingAllocator[T]) Stats() api.AllocatorStats {
	return api.AllocatorStats{
		TotalAlloc: int64(c.Allocs),
		TotalFree:  int64(c.Frees),
		InUse:      int64(c.Allocs - c.Frees),
	}
}
