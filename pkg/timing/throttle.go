package timing

import "time"

// Throttle rate-limits calls to fn to at most one per interval.
//
// The first call in a window runs immediately (leading edge). Calls made
// while the window is open are coalesced: only the most recent value is
// kept and delivered by a single trailing call when the window closes.
// Older values are dropped, never queued. A zero interval disables
// throttling and every call runs immediately.
type Throttle[T any] struct {
	interval time.Duration
	fn       func(T)
	last     time.Time
	fired    bool
	latest   T
	trailing *Timer
}

// NewThrottle returns a throttle that calls fn at most once per interval.
func NewThrottle[T any](interval time.Duration, fn func(T)) *Throttle[T] {
	return &Throttle[T]{interval: interval, fn: fn}
}

// Call delivers v, either immediately or through the trailing call.
func (t *Throttle[T]) Call(v T) {
	if t.interval <= 0 {
		t.fn(v)
		return
	}
	now := Now()
	if t.trailing == nil && (!t.fired || now.Sub(t.last) >= t.interval) {
		t.last = now
		t.fired = true
		t.fn(v)
		return
	}
	t.latest = v
	if t.trailing == nil {
		t.trailing = AfterFunc(t.interval-now.Sub(t.last), t.flush)
	}
}

func (t *Throttle[T]) flush() {
	t.trailing = nil
	v := t.latest
	var zero T
	t.latest = zero
	t.last = Now()
	t.fn(v)
}

// Pending reports whether a trailing call is scheduled.
func (t *Throttle[T]) Pending() bool {
	return t.trailing != nil
}

// Cancel drops any scheduled trailing call without invoking fn.
func (t *Throttle[T]) Cancel() {
	if t.trailing != nil {
		t.trailing.Stop()
		t.trailing = nil
	}
	var zero T
	t.latest = zero
}
