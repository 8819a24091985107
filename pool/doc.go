// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reuse layer for hioload-mem buffers. Cleared buffers are parked in a
// sync.Pool-backed store and handed out again with their capacity intact,
// cutting allocation churn for workloads that fill and drop buffers of
// similar size in a loop.
package pool
