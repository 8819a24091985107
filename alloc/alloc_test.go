package alloc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-mem/alloc"
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/fake"
)

func TestHeapAllocate(t *testing.T) {
	h := alloc.NewHeap[int]()

	storage, err := h.Allocate(16)
	require.NoError(t, err)
	require.Len(t, storage, 16)

	stats := h.Stats()
	assert.Equal(t, int64(1), stats.TotalAlloc)
	assert.Equal(t, int64(1), stats.InUse)
	assert.Equal(t, int64(16), stats.LiveSlots)

	h.Deallocate(storage)
	stats = h.Stats()
	assert.Equal(t, int64(1), stats.TotalFree)
	assert.Equal(t, int64(0), stats.InUse)
	assert.Equal(t, int64(0), stats.LiveSlots)
}

func TestHeapRejectsNegative(t *testing.T) {
	h := alloc.NewHeap[int]()
	_, err := h.Allocate(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrInvalidArgument))
}

func TestHeapZeroSlots(t *testing.T) {
	h := alloc.NewHeap[int]()
	storage, err := h.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, storage)
}

func TestLimitEnforcesBudget(t *testing.T) {
	l := alloc.NewLimit[byte](nil, 100)

	first, err := l.Allocate(60)
	require.NoError(t, err)
	assert.Equal(t, 40, l.Remaining())

	_, err = l.Allocate(50)
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrAllocationFailed))

	l.Deallocate(first)
	assert.Equal(t, 100, l.Remaining())

	_, err = l.Allocate(50)
	require.NoError(t, err)
}

func TestRecycleReusesSlabs(t *testing.T) {
	inner := &fake.CountingAllocator[int]{}
	r := alloc.NewRecycle[int](inner, 4)

	slab, err := r.Allocate(32)
	require.NoError(t, err)
	require.Equal(t, 1, inner.Allocs)

	r.Deallocate(slab)
	assert.Equal(t, 1, r.FreeSlabs())
	assert.Equal(t, 0, inner.Frees)

	// A request that fits the retained slab must not hit the inner allocator.
	again, err := r.Allocate(16)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.Allocs)
	assert.GreaterOrEqual(t, len(again), 16)
	assert.Equal(t, 0, r.FreeSlabs())

	// A request too large for any retained slab falls through.
	r.Deallocate(again)
	_, err = r.Allocate(64)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.Allocs)
	assert.Equal(t, 1, r.FreeSlabs())
}

func TestRecycleRetainBound(t *testing.T) {
	inner := &fake.CountingAllocator[int]{}
	r := alloc.NewRecycle[int](inner, 2)

	slabs := make([][]int, 3)
	for i := range slabs {
		var err error
		slabs[i], err = r.Allocate(8)
		require.NoError(t, err)
	}
	for _, s := range slabs {
		r.Deallocate(s)
	}
	assert.Equal(t, 2, r.FreeSlabs())
	assert.Equal(t, 1, inner.Frees)
}
