// Package animation provides the timing primitives that drive the
// marquee's frame loop: an injectable clock, a frame scheduler that
// keeps at most one callback outstanding, and one-shot timers. All
// scheduling is cooperative; the host steps a [Driver] once per
// display frame and everything else follows from that.
package animation

import (
	"sync"
	"time"
)

// Clock provides time for frame pacing and timers. The default
// implementation uses system time. Tests inject a ManualClock to
// control timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock is the wall-clock Clock used by default.
var SystemClock Clock = realClock{}

// ManualClock is a Clock whose time only moves when advanced.
// It is safe for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
