// File: alloc/mmap_linux.go
//go:build linux

// Package alloc: Linux byte-slab allocator backed by anonymous mappings.
//
// Storage comes straight from mmap, bypassing the Go heap; Deallocate
// unmaps the region. Requests are rounded up to the page size, so the
// granted slab may be larger than asked.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-mem/api"
)

// Mmap allocates byte storage from the OS. Element type is fixed to byte:
// mapped regions carry no pointers the garbage collector could see.
type Mmap struct {
	counters
}

// NewMmap creates an OS-mapped byte allocator.
func NewMmap() *Mmap {
	return &Mmap{}
}

// Allocate implements api.Allocator. Fresh mappings come back zeroed.
func (m *Mmap) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative slot count").
			WithContext("slots", n)
	}
	if n == 0 {
		return nil, nil
	}
	pageSize := os.Getpagesize()
	length := ((n + pageSize - 1) / pageSize) * pageSize
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, api.NewError(api.ErrCodeAllocationFailed, "mmap failed").
			WithContext("bytes", length).
			WithContext("errno", err)
	}
	m.allocated(len(data))
	return data, nil
}

// Deallocate implements api.Allocator, returning the region to the OS.
func (m *Mmap) Deallocate(storage []byte) {
	if storage == nil {
		return
	}
	m.released(len(storage))
	_ = unix.Munmap(storage)
}

// Stats implements api.Allocator.
func (m *Mmap) Stats() api.AllocatorStats {
	return m.snapshot()
}
