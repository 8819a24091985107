// File: buffer/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Growable element container composing an allocator and a growth policy.
//
// Storage model: data holds len(data) == Cap() slots, the live range is
// [0, size). data is nil exactly when Cap() == 0. Slots outside the live
// range are raw storage and are never handed out as elements.

package buffer

import (
	"unsafe"

	"github.com/momentics/hioload-mem/alloc"
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/growth"
	"github.com/momentics/hioload-mem/internal/normalize"
)

// Buffer is a move-only growable container for elements of type T.
//
// The zero value is not usable; construct through New and friends so the
// allocator and growth policy are bound. A Buffer must not be copied by
// value: ownership transfers only through Move or TakeFrom.
type Buffer[T any] struct {
	data    []T // len(data) == capacity; live range is [0, size)
	size    int
	alloc   api.Allocator[T]
	policy  api.GrowthPolicy
	checked bool
}

// New creates an empty buffer: size 0, capacity 0, no storage held.
func New[T any](opts ...Option[T]) *Buffer[T] {
	b := &Buffer[T]{
		alloc:  alloc.NewHeap[T](),
		policy: growth.Doubling{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewWithSize creates a buffer holding n default-constructed (zero-valued)
// elements, reserving capacity for at least n.
func NewWithSize[T any](n int, opts ...Option[T]) (*Buffer[T], error) {
	b := New[T](opts...)
	if err := b.Resize(normalize.Capacity(n)); err != nil {
		return nil, err
	}
	return b, nil
}

// NewFromSlice creates a buffer holding a copy of src. This is how external
// byte or element regions enter a buffer. The copy is a plain value copy, so
// element types holding references share referents with the source.
func NewFromSlice[T any](src []T, opts ...Option[T]) (*Buffer[T], error) {
	b := New[T](opts...)
	if err := b.Reserve(len(src)); err != nil {
		return nil, err
	}
	copy(b.data, src)
	b.size = len(src)
	return b, nil
}

// NewFromValues creates a buffer holding the given values in order.
func NewFromValues[T any](vals ...T) (*Buffer[T], error) {
	b := New[T]()
	if err := b.Reserve(len(vals)); err != nil {
		return nil, err
	}
	for _, v := range vals {
		b.data[b.size] = v
		b.size++
	}
	return b, nil
}

// Push appends a copy of v, growing capacity per the growth policy when the
// buffer is full. Allocation failure leaves the buffer unchanged.
func (b *Buffer[T]) Push(v T) error {
	if err := b.growIfNeeded(); err != nil {
		return err
	}
	b.data[b.size] = v
	b.size++
	return nil
}

// Emplace constructs a new element in place: the slot is zeroed, then build
// runs against the slot pointer before the element becomes live. Use when
// building in place is cheaper than building a value and pushing it.
func (b *Buffer[T]) Emplace(build func(*T)) error {
	if err := b.growIfNeeded(); err != nil {
		return err
	}
	slot := &b.data[b.size]
	var zero T
	*slot = zero
	if build != nil {
		build(slot)
	}
	b.size++
	return nil
}

// Append pushes all values, reallocating at most once.
func (b *Buffer[T]) Append(vals ...T) error {
	need := b.size + len(vals)
	if need > len(b.data) {
		want := b.policy.NextCapacity(b.size)
		if want < need {
			want = need
		}
		if err := b.Reserve(want); err != nil {
			return err
		}
	}
	copy(b.data[b.size:need], vals)
	b.size = need
	return nil
}

// Reserve grows storage to hold at least n slots. Live elements keep their
// values and order; capacity never decreases. The old slab is released only
// after the new one has been fully populated. On allocation failure the
// buffer is left untouched.
func (b *Buffer[T]) Reserve(n int) error {
	n = normalize.Capacity(n)
	if n <= len(b.data) {
		return nil
	}
	dest, err := b.alloc.Allocate(n)
	if err != nil {
		return err
	}
	old := b.data
	copy(dest, old[:b.size])
	b.data = dest
	if old != nil {
		clear(old[:b.size])
		b.alloc.Deallocate(old)
	}
	return nil
}

// Resize grows the live range to n elements, default-constructing
// (zero-valuing) the new slots. Shrinking through Resize is out of
// contract and fails with api.ErrInvalidArgument; use Truncate instead.
func (b *Buffer[T]) Resize(n int) error {
	if n < b.size {
		return api.NewError(api.ErrCodeInvalidArgument, "resize cannot shrink the live range").
			WithContext("size", b.size).
			WithContext("requested", n)
	}
	if err := b.Reserve(n); err != nil {
		return err
	}
	clear(b.data[b.size:n])
	b.size = n
	return nil
}

// Truncate is the explicit shrink operation: elements in [n, size) are
// destroyed (their slots zeroed) and the live range drops to n. Capacity is
// retained. n >= Len() is a no-op; negative n clamps to 0.
func (b *Buffer[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= b.size {
		return
	}
	clear(b.data[n:b.size])
	b.size = n
}

// Clear destroys all live elements and resets size to 0. Capacity and
// storage are retained for reuse.
func (b *Buffer[T]) Clear() {
	clear(b.data[:b.size])
	b.size = 0
}

// At returns the element slot at index i, checked against the live range.
func (b *Buffer[T]) At(i int) (*T, error) {
	if i < 0 || i >= b.size {
		return nil, api.NewError(api.ErrCodeIndexOutOfBounds, "index out of bounds").
			WithContext("index", i).
			WithContext("size", b.size)
	}
	return &b.data[i], nil
}

// Index returns the element slot at index i without the checked-access
// contract. Under WithBoundsChecking a live-range violation panics with an
// *api.Error; otherwise out-of-range behavior is undefined (only the slab
// bounds stand between the caller and a runtime fault).
func (b *Buffer[T]) Index(i int) *T {
	if b.checked && (i < 0 || i >= b.size) {
		panic(api.NewError(api.ErrCodeIndexOutOfBounds, "index out of bounds").
			WithContext("index", i).
			WithContext("size", b.size))
	}
	return &b.data[i]
}

// Move transfers ownership of the storage to a fresh buffer and leaves the
// receiver empty (size 0, capacity 0, no storage). O(1), no element work.
func (b *Buffer[T]) Move() *Buffer[T] {
	dst := &Buffer[T]{
		data:    b.data,
		size:    b.size,
		alloc:   b.alloc,
		policy:  b.policy,
		checked: b.checked,
	}
	b.data = nil
	b.size = 0
	return dst
}

// TakeFrom releases the receiver's current storage, then steals src's
// storage, size and configuration verbatim. src is left empty. O(1).
func (b *Buffer[T]) TakeFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.Release()
	b.data = src.data
	b.size = src.size
	b.alloc = src.alloc
	b.policy = src.policy
	b.checked = src.checked
	src.data = nil
	src.size = 0
}

// Range calls fn for each live element in order until fn returns false.
// The slot pointer is valid until the next reallocating or size-mutating
// operation.
func (b *Buffer[T]) Range(fn func(i int, v *T) bool) {
	for i := 0; i < b.size; i++ {
		if !fn(i, &b.data[i]) {
			return
		}
	}
}

// Live returns a view over exactly the live range [0, Len()). The view is
// capacity-clipped so appends through it cannot touch raw slots; it is
// invalidated by any reallocating or size-mutating operation.
func (b *Buffer[T]) Live() []T {
	return b.data[:b.size:b.size]
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the number of reserved slots.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Empty reports whether no elements are live.
func (b *Buffer[T]) Empty() bool { return b.size == 0 }

// ByteSize returns the live payload size in bytes: Len() times the element
// size.
func (b *Buffer[T]) ByteSize() int {
	var zero T
	return b.size * int(unsafe.Sizeof(zero))
}

// Release destroys all live elements and returns the storage to the
// allocator, leaving the buffer empty. The buffer may be reused afterwards.
// Releasing an empty buffer is a no-op, so teardown is safe to run once per
// owned slab and harmless after a Move.
func (b *Buffer[T]) Release() {
	if b.data == nil {
		b.size = 0
		return
	}
	clear(b.data[:b.size])
	b.alloc.Deallocate(b.data)
	b.data = nil
	b.size = 0
}

// growIfNeeded reserves the next policy capacity when the live range has
// filled the slab.
func (b *Buffer[T]) growIfNeeded() error {
	if b.size < len(b.data) {
		return nil
	}
	next := b.policy.NextCapacity(b.size)
	if next <= b.size {
		return api.NewError(api.ErrCodeInternal, "growth policy did not advance capacity").
			WithContext("current", b.size).
			WithContext("next", next)
	}
	return b.Reserve(next)
}
