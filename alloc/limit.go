// File: alloc/limit.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Budget-limited allocator decorator. Enforces a total live-slot budget on
// top of any inner allocator and surfaces allocation failure once exceeded.

package alloc

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// Limit wraps an inner allocator with a live-slot budget. Requests that
// would push the outstanding slot count past the budget fail with
// api.ErrAllocationFailed instead of reaching the inner allocator.
type Limit[T any] struct {
	inner    api.Allocator[T]
	maxSlots int

	mu   sync.Mutex
	used int
}

// NewLimit creates a budget-limited view over inner. maxSlots is the total
// number of element slots that may be outstanding at once.
func NewLimit[T any](inner api.Allocator[T], maxSlots int) *Limit[T] {
	if inner == nil {
		inner = NewHeap[T]()
	}
	if maxSlots < 0 {
		maxSlots = 0
	}
	return &Limit[T]{inner: inner, maxSlots: maxSlots}
}

// Allocate implements api.Allocator.
func (l *Limit[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative slot count").
			WithContext("slots", n)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.used+n > l.maxSlots {
		return nil, api.NewError(api.ErrCodeAllocationFailed, "slot budget exhausted").
			WithContext("requested", n).
			WithContext("used", l.used).
			WithContext("budget", l.maxSlots)
	}
	storage, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	// Account the granted length: inner allocators may round up.
	l.used += len(storage)
	return storage, nil
}

// Deallocate implements api.Allocator.
func (l *Limit[T]) Deallocate(storage []T) {
	if storage == nil {
		return
	}
	l.mu.Lock()
	l.used -= len(storage)
	if l.used < 0 {
		l.used = 0
	}
	l.mu.Unlock()
	l.inner.Deallocate(storage)
}

// Stats implements api.Allocator, delegating to the inner allocator.
func (l *Limit[T]) Stats() api.AllocatorStats {
	return l.inner.Stats()
}

// Remaining returns the number of slots still available under the budget.
func (l *Limit[T]) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxSlots - l.used
}
