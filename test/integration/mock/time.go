//go:build integration

package mock

import (
	"sync"
	"time"
)

// Clock is a settable time source. A frozen clock always returns the
// instant it was set to; an unfrozen clock returns the wall time.
type Clock struct {
	mu     sync.RWMutex
	frozen *time.Time
}

// NewClock returns an unfrozen clock.
func NewClock() *Clock {
	return &Clock{}
}

// Freeze pins the clock at t.
func (c *Clock) Freeze(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = &t
}

// Unfreeze returns the clock to wall time.
func (c *Clock) Unfreeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = nil
}

// Now returns the current time of the clock.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.frozen != nil {
		return *c.frozen
	}
	return time.Now()
}
