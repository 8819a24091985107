// File: alloc/mmap_windows.go
//go:build windows

// Package alloc: Windows byte-slab allocator via VirtualAlloc/VirtualFree.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

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

// Allocate implements api.Allocator. Committed pages come back zeroed.
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
	addr, err := windows.VirtualAlloc(0, uintptr(length),
		windows.MEM_RESERVE|windows.MEM_COMMIT,
		windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return nil, api.NewError(api.ErrCodeAllocationFailed, "VirtualAlloc failed").
			WithContext("bytes", length).
			WithContext("errno", err)
	}
	m.allocated(length)
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length), nil
}

// Deallocate implements api.Allocator, releasing the whole reservation.
func (m *Mmap) Deallocate(storage []byte) {
	if storage == nil {
		return
	}
	m.released(len(storage))
	_ = windows.VirtualFree(uintptr(unsafe.Pointer(&storage[0])), 0, windows.MEM_RELEASE)
}

// Stats implements api.Allocator.
func (m *Mmap) Stats() api.AllocatorStats {
	return m.snapshot()
}
