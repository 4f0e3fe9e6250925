package animation

import (
	"sort"
	"sync"
	"time"
)

// FrameScheduler schedules frame callbacks. At most one callback is
// outstanding at a time; requesting a new frame replaces any pending
// one. The returned cancel function is idempotent.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) (cancel func())
}

// TimerScheduler arms one-shot timers. The returned cancel function
// stops the timer if it has not fired yet and is idempotent.
type TimerScheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// Driver implements FrameScheduler and TimerScheduler on top of a
// Clock. The host calls Step once per display frame; Step invokes the
// pending frame callback and fires any timers that have come due.
//
// Driver never spawns goroutines. With the default SystemClock it
// paces against wall time; with a ManualClock every aspect of timing
// is test-controlled.
type Driver struct {
	mu       sync.Mutex
	clock    Clock
	frame    func(time.Time)
	frameSeq uint64
	timers   []*driverTimer
	timerSeq uint64
}

type driverTimer struct {
	id  uint64
	due time.Time
	fn  func()
}

// NewDriver creates a driver using the given clock.
// A nil clock defaults to SystemClock.
func NewDriver(clock Clock) *Driver {
	if clock == nil {
		clock = SystemClock
	}
	return &Driver{clock: clock}
}

// Clock returns the driver's clock.
func (d *Driver) Clock() Clock {
	return d.clock
}

// RequestFrame schedules fn for the next Step, replacing any pending
// frame callback.
func (d *Driver) RequestFrame(fn func(now time.Time)) (cancel func()) {
	d.mu.Lock()
	d.frameSeq++
	seq := d.frameSeq
	d.frame = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		// Only cancel if no newer request replaced this one.
		if d.frameSeq == seq {
			d.frame = nil
		}
		d.mu.Unlock()
	}
}

// AfterFunc arms a one-shot timer firing on the first Step at or after
// the clock reaches now+delay.
func (d *Driver) AfterFunc(delay time.Duration, fn func()) (cancel func()) {
	d.mu.Lock()
	d.timerSeq++
	t := &driverTimer{
		id:  d.timerSeq,
		due: d.clock.Now().Add(delay),
		fn:  fn,
	}
	d.timers = append(d.timers, t)
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		for i, existing := range d.timers {
			if existing.id == t.id {
				d.timers = append(d.timers[:i], d.timers[i+1:]...)
				break
			}
		}
		d.mu.Unlock()
	}
}

// Step runs one iteration of the cooperative loop: due timers fire
// first (oldest deadline first), then the pending frame callback, if
// any, receives the current time.
func (d *Driver) Step() {
	now := d.clock.Now()

	d.mu.Lock()
	var due []*driverTimer
	remaining := d.timers[:0]
	for _, t := range d.timers {
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	d.timers = remaining
	frame := d.frame
	d.frame = nil
	d.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})
	for _, t := range due {
		t.fn()
	}
	if frame != nil {
		frame(now)
	}
}

// HasPendingFrame reports whether a frame callback is scheduled.
func (d *Driver) HasPendingFrame() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame != nil
}

// PendingTimers returns the number of armed timers.
func (d *Driver) PendingTimers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}
