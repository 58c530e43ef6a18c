// Package timing provides the clock and frame-stepped timers behind the
// scroll primitives' throttle and debounce windows.
//
// Timers never fire on their own goroutine. The host frame loop calls
// [StepTimers] once per frame, the same way it steps animations, and due
// callbacks run synchronously on that call. This keeps every scroll, touch
// and timer callback on a single event thread.
package timing

import "time"

// Clock provides the current time. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to control
// throttle and debounce windows deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the clock. Returns the previous clock
// so callers can restore it during cleanup. Passing nil restores
// system time.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
