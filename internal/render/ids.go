// ABOUTME: Unique element id allocation for toggle widgets
// ABOUTME: Explicit counter object threaded through render passes, atomic for safety

package render

import (
	"fmt"
	"sync/atomic"
)

// IDAllocator hands out element ids that never repeat for its lifetime.
// One allocator is created per process and threaded explicitly into the
// renderers that need it; the counter is atomic so overlapping render
// passes stay safe.
type IDAllocator struct {
	prefix  string
	counter atomic.Uint64
}

// NewIDAllocator creates an allocator whose ids start with prefix.
func NewIDAllocator(prefix string) *IDAllocator {
	return &IDAllocator{prefix: prefix}
}

// Next returns a fresh id, distinct from every id the allocator has
// returned before.
func (a *IDAllocator) Next() string {
	return fmt.Sprintf("%s%d", a.prefix, a.counter.Add(1))
}

// Allocated reports how many ids have been handed out. Callers use it to
// decide whether the toggle script needs to be emitted at all.
func (a *IDAllocator) Allocated() uint64 {
	return a.counter.Load()
}
