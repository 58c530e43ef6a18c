package testing

import (
	"sync"
	"time"

	"github.com/go-drift/scrollkit/pkg/timing"
)

// FakeClock provides controllable time for deterministic throttle and
// debounce tests. All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and fires every timer that became
// due, in deadline order.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
	timing.StepTimers()
}

// Set sets the clock to an exact time without stepping timers.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Install makes c the timing clock until the returned function is called.
func (c *FakeClock) Install() (restore func()) {
	prev := timing.SetClock(c)
	return func() {
		timing.SetClock(prev)
	}
}
