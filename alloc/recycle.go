// File: alloc/recycle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Free-list recycling allocator. Released slabs are retained in a FIFO free
// list and serve later requests before the inner allocator is consulted.

package alloc

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-mem/api"
)

// defaultRetain bounds the free list when no limit is configured.
const defaultRetain = 64

// Recycle reuses released slabs. Slot contents of a recycled slab are
// whatever the previous owner left behind, per the Allocator contract.
type Recycle[T any] struct {
	inner  api.Allocator[T]
	retain int

	mu   sync.Mutex
	free *queue.Queue // of []T
}

// NewRecycle creates a recycling view over inner. retain bounds how many
// released slabs are kept; zero or negative selects the default.
func NewRecycle[T any](inner api.Allocator[T], retain int) *Recycle[T] {
	if inner == nil {
		inner = NewHeap[T]()
	}
	if retain < 1 {
		retain = defaultRetain
	}
	return &Recycle[T]{
		inner:  inner,
		retain: retain,
		free:   queue.New(),
	}
}

// Allocate implements api.Allocator. The free list is scanned FIFO; slabs
// too small for the request are rotated to the back rather than dropped.
func (r *Recycle[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative slot count").
			WithContext("slots", n)
	}
	r.mu.Lock()
	for i := r.free.Length(); i > 0; i-- {
		slab := r.free.Remove().([]T)
		if len(slab) >= n {
			r.mu.Unlock()
			return slab, nil
		}
		r.free.Add(slab)
	}
	r.mu.Unlock()
	return r.inner.Allocate(n)
}

// Deallocate implements api.Allocator. Slabs past the retain bound go back
// to the inner allocator.
func (r *Recycle[T]) Deallocate(storage []T) {
	if storage == nil {
		return
	}
	r.mu.Lock()
	if r.free.Length() < r.retain {
		r.free.Add(storage)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	r.inner.Deallocate(storage)
}

// Stats implements api.Allocator, delegating to the inner allocator.
func (r *Recycle[T]) Stats() api.AllocatorStats {
	return r.inner.Stats()
}

// FreeSlabs returns the current free list length.
func (r *Recycle[T]) FreeSlabs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.free.Length()
}
