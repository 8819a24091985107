// File: alloc/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared accounting counters for allocator implementations.

package alloc

import (
	"sync/atomic"

	"github.com/momentics/hioload-mem/api"
)

// counters tracks slab hand-out and release totals. Allocators may be shared
// between buffers, so the fields are updated atomically even though a single
// buffer is single-threaded.
type counters struct {
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
	inUse      atomic.Int64
	liveSlots  atomic.Int64
}

func (c *counters) allocated(slots int) {
	c.totalAlloc.Add(1)
	c.inUse.Add(1)
	c.liveSlots.Add(int64(slots))
}

func (c *counters) released(slots int) {
	c.totalFree.Add(1)
	c.inUse.Add(-1)
	c.liveSlots.Add(-int64(slots))
}

func (c *counters) snapshot() api.AllocatorStats {
	return api.AllocatorStats{
		TotalAlloc: c.totalAlloc.Load(),
		TotalFree:  c.totalFree.Load(),
		InUse:      c.inUse.Load(),
		LiveSlots:  c.liveSlots.Load(),
	}
}
