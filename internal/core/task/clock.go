package task

import (
	"sync"
	"time"
)

// Clock produces ordering keys. Readings are strictly increasing across
// calls, so keys assigned later always sort after keys assigned earlier.
type Clock interface {
	Now() int64
}

// LogicalClock is a monotonic clock seeded from wall time in microseconds.
// If the wall clock has not advanced past the previous reading (or moved
// backwards), the next reading is previous+1. The zero value is ready to use.
type LogicalClock struct {
	mu   sync.Mutex
	last int64
}

// NewLogicalClock creates a clock seeded at or after floor. Passing the
// highest order key from a loaded snapshot keeps new keys sorting last.
func NewLogicalClock(floor int64) *LogicalClock {
	return &LogicalClock{last: floor}
}

// Now returns the next ordering key.
func (c *LogicalClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixMicro()
	if now <= c.last {
		now = c.last + 1
	}
	c.last = now
	return now
}

// Advance raises the clock floor. Readings taken after Advance(n) are > n.
func (c *LogicalClock) Advance(floor int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if floor > c.last {
		c.last = floor
	}
}
