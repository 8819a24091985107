// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Raw storage allocator strategies for hioload-mem buffers.
// Implements Go-heap, budget-limited, free-list recycling and OS-mapped
// allocators behind the api.Allocator contract.
// All primitives are cross-platform (Linux/Windows, heap fallback elsewhere).
// See heap.go, limit.go, recycle.go, mmap_linux.go for implementation details.
package alloc
