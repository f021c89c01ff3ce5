package lwwset

import (
	"sync/atomic"
	"time"
)

// Clock hands out timestamps for local writes.
// Implementations must be safe for concurrent use.
type Clock interface {
	// Now returns the timestamp for the next local write.
	Now() int64
	// Observe is told about timestamps seen in merged or applied entries.
	Observe(ts int64)
}

// WallClock stamps writes with Unix nanoseconds.
// Replicas using it converge only as well as their clocks agree.
type WallClock struct {
	now func() time.Time
}

// NewWallClock returns a WallClock reading now, or time.Now if now is nil.
func NewWallClock(now func() time.Time) *WallClock {
	if now == nil {
		now = time.Now
	}
	return &WallClock{now: now}
}

func (c *WallClock) Now() int64 {
	return c.now().UnixNano()
}

func (c *WallClock) Observe(int64) {}

// LamportClock is a logical clock. Now increments the counter; Observe moves
// it forward to at least ts so that the next local write sorts after ts.
type LamportClock struct {
	ts atomic.Int64
}

// NewLamportClock returns a LamportClock starting at start.
func NewLamportClock(start int64) *LamportClock {
	c := &LamportClock{}
	c.ts.Store(start)
	return c
}

func (c *LamportClock) Now() int64 {
	return c.ts.Add(1)
}

func (c *LamportClock) Observe(ts int64) {
	for {
		current := c.ts.Load()
		if ts <= current {
			return
		}
		if c.ts.CompareAndSwap(current, ts) {
			return
		}
	}
}

// Value returns the last timestamp handed out or observed.
func (c *LamportClock) Value() int64 {
	return c.ts.Load()
}
