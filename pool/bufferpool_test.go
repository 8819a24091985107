package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-mem/buffer"
	"github.com/momentics/hioload-mem/pool"
)

func TestBufferPoolReuse(t *testing.T) {
	p := pool.NewBufferPool[byte](nil)

	b1, err := p.Get(128)
	require.NoError(t, err)
	require.NoError(t, b1.Push('x'))
	p.Put(b1)

	b2, err := p.Get(64)
	require.NoError(t, err)
	// b2 should reuse underlying storage and come back empty.
	assert.GreaterOrEqual(t, b2.Cap(), 128)
	assert.Equal(t, 0, b2.Len())
}

func TestBufferPoolFactory(t *testing.T) {
	p := pool.NewBufferPool(func() *buffer.Buffer[int] {
		return buffer.New(buffer.WithBoundsChecking[int]())
	})

	b, err := p.Get(4)
	require.NoError(t, err)
	require.NoError(t, b.Push(1))
	assert.Panics(t, func() { b.Index(5) })
	p.Put(b)
}
