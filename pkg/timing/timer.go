package timing

import (
	"slices"
	"sync"
	"time"
)

var (
	timerMu      sync.Mutex
	activeTimers = make(map[*Timer]struct{})
)

// Timer calls a function once after its deadline has passed.
//
// Timers are driven by [StepTimers]; a timer whose deadline passes between
// frames fires on the next step.
type Timer struct {
	fn       func()
	deadline time.Time
	active   bool
}

// AfterFunc schedules fn to run on the first StepTimers call at or after
// d from now. A non-positive d makes the timer due on the next step.
func AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{
		fn:       fn,
		deadline: Now().Add(d),
		active:   true,
	}
	timerMu.Lock()
	activeTimers[t] = struct{}{}
	timerMu.Unlock()
	return t
}

// Stop cancels the timer. It returns true if the call prevented the timer
// from firing, false if it already fired or was stopped.
func (t *Timer) Stop() bool {
	if t == nil {
		return false
	}
	timerMu.Lock()
	defer timerMu.Unlock()
	if !t.active {
		return false
	}
	t.active = false
	delete(activeTimers, t)
	return true
}

// Active reports whether the timer is still pending.
func (t *Timer) Active() bool {
	if t == nil {
		return false
	}
	timerMu.Lock()
	defer timerMu.Unlock()
	return t.active
}

// Deadline returns the time at which the timer becomes due.
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// StepTimers fires every timer whose deadline has passed, earliest first.
// This should be called once per frame from the host event loop.
func StepTimers() {
	now := Now()
	timerMu.Lock()
	if len(activeTimers) == 0 {
		timerMu.Unlock()
		return
	}
	var due []*Timer
	for t := range activeTimers {
		if !t.deadline.After(now) {
			due = append(due, t)
		}
	}
	timerMu.Unlock()

	slices.SortStableFunc(due, func(a, b *Timer) int {
		return a.deadline.Compare(b.deadline)
	})
	for _, t := range due {
		// A callback earlier in this batch may have stopped t.
		if !t.Stop() {
			continue
		}
		if t.fn != nil {
			t.fn()
		}
	}
}

// HasActiveTimers returns true if any timers are pending.
func HasActiveTimers() bool {
	timerMu.Lock()
	defer timerMu.Unlock()
	return len(activeTimers) > 0
}

// NextDeadline returns the earliest pending deadline, if any. Hosts that
// sleep between frames use it to decide when to wake.
func NextDeadline() (time.Time, bool) {
	timerMu.Lock()
	defer timerMu.Unlock()
	var next time.Time
	found := false
	for t := range activeTimers {
		if !found || t.deadline.Before(next) {
			next = t.deadline
			found = true
		}
	}
	return next, found
}

// ResetTimers stops every pending timer without firing it. Hosts call it
// on shutdown; tests call it between cases.
func ResetTimers() {
	timerMu.Lock()
	defer timerMu.Unlock()
	for t := range activeTimers {
		t.active = false
	}
	clear(activeTimers)
}
