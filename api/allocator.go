// File: api/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw storage allocation strategy for element containers.
//
// Allocators deal purely in uninitialized slot storage. They never construct
// or destroy elements; the live-range discipline belongs to the container.

package api

// Allocator acquires and releases raw storage for element slots.
type Allocator[T any] interface {
	// Allocate returns storage for at least n slots; the returned slice has
	// len >= n. Slot contents are unspecified unless the implementation
	// documents otherwise. Fails with an *Error carrying
	// ErrCodeAllocationFailed when the request cannot be satisfied.
	Allocate(n int) ([]T, error)

	// Deallocate releases storage previously returned by Allocate.
	// Passing any other slice, or the same slice twice, is undefined.
	// A nil slice is ignored.
	Deallocate(storage []T)

	// Stats exposes allocation accounting for observability.
	Stats() AllocatorStats
}

// AllocatorStats aggregates slab allocation/release accounting.
type AllocatorStats struct {
	TotalAlloc int64 // slabs handed out since creation
	TotalFree  int64 // slabs released back
	InUse      int64 // slabs currently held by callers
	LiveSlots  int64 // element slots currently held by callers
}
