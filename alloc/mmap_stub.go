// File: alloc/mmap_stub.go
//go:build !linux && !windows

// Stub OS-mapped allocator for unsupported platforms: falls back to the
// Go heap so code written against Mmap still runs everywhere.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"github.com/momentics/hioload-mem/api"
)

// Mmap degrades to a heap allocator on platforms without mapping support.
type Mmap struct {
	counters
}

// NewMmap creates the fallback allocator.
func NewMmap() *Mmap {
	return &Mmap{}
}

// Allocate implements api.Allocator.
func (m *Mmap) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative slot count").
			WithContext("slots", n)
	}
	if n == 0 {
		return nil, nil
	}
	m.allocated(n)
	return make([]byte, n), nil
}

// Deallocate implements api.Allocator.
func (m *Mmap) Deallocate(storage []byte) {
	if storage == nil {
		return
	}
	m.released(len(storage))
}

// Stats implements api.Allocator.
func (m *Mmap) Stats() api.AllocatorStats {
	return m.snapshot()
}
