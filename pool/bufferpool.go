// File: pool/bufferpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// sync.Pool-backed recycling of buffers. The pool is safe for concurrent
// Get/Put; each buffer handed out is still single-owner.

package pool

import (
	"sync"

	"github.com/momentics/hioload-mem/buffer"
)

// BufferPool recycles buffers of one element type.
type BufferPool[T any] struct {
	pool *sync.Pool
}

// NewBufferPool creates a pool producing fresh buffers via factory when the
// pool is empty. A nil factory yields default-configured buffers.
func NewBufferPool[T any](factory func() *buffer.Buffer[T]) *BufferPool[T] {
	if factory == nil {
		factory = func() *buffer.Buffer[T] { return buffer.New[T]() }
	}
	return &BufferPool[T]{
		pool: &sync.Pool{New: func() any { return factory() }},
	}
}

// Get returns an empty buffer with capacity for at least minCap elements.
// Reused buffers keep whatever capacity their previous life earned them.
func (p *BufferPool[T]) Get(minCap int) (*buffer.Buffer[T], error) {
	b := p.pool.Get().(*buffer.Buffer[T])
	if err := b.Reserve(minCap); err != nil {
		p.pool.Put(b)
		return nil, err
	}
	return b, nil
}

// Put clears b and parks it for reuse. b must not be used afterwards.
func (p *BufferPool[T]) Put(b *buffer.Buffer[T]) {
	if b == nil {
		return
	}
	b.Clear()
	p.pool.Put(b)
}
