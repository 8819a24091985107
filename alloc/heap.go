// File: alloc/heap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Default allocator backed by the Go heap. Allocate grants exactly the
// requested slot count; released slabs are left to the garbage collector.

package alloc

import (
	"github.com/momentics/hioload-mem/api"
)

// Heap is the default api.Allocator implementation.
type Heap[T any] struct {
	counters
}

// NewHeap creates a Go-heap backed allocator.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Allocate implements api.Allocator. Heap slabs come back zeroed.
func (h *Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative slot count").
			WithContext("slots", n)
	}
	if n == 0 {
		return nil, nil
	}
	h.allocated(n)
	return make([]T, n), nil
}

// Deallocate implements api.Allocator. The GC reclaims the slab once the
// caller drops its reference.
func (h *Heap[T]) Deallocate(storage []T) {
	if storage == nil {
		return
	}
	h.released(len(storage))
}

// Stats implements api.Allocator.
func (h *Heap[T]) Stats() api.AllocatorStats {
	return h.snapshot()
}
