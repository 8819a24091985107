// Package buffer
// Author: momentics <momentics@gmail.com>
//
// Generic growable buffer with pluggable storage allocation and capacity
// growth strategies. The container owns a contiguous slab of element slots;
// the first Len() slots are live, the rest are unspecified storage. Storage
// is acquired through api.Allocator and grown on demand per api.GrowthPolicy.
//
// A Buffer is exclusively owned and single-threaded by design: no internal
// locking, no atomics. Ownership moves between buffers via Move/TakeFrom;
// concurrent access without external synchronization is undefined.
package buffer
