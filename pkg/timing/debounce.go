package timing

import "time"

// Debounce delays fn until delay has passed without another call.
// Only the value from the last call is delivered.
type Debounce[T any] struct {
	delay time.Duration
	fn    func(T)
	timer *Timer
}

// NewDebounce returns a trailing-edge debounce around fn.
func NewDebounce[T any](delay time.Duration, fn func(T)) *Debounce[T] {
	return &Debounce[T]{delay: delay, fn: fn}
}

// Call restarts the delay and remembers v for the eventual call.
func (d *Debounce[T]) Call(v T) {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = AfterFunc(d.delay, func() {
		d.timer = nil
		d.fn(v)
	})
}

// Pending reports whether a call is waiting to fire.
func (d *Debounce[T]) Pending() bool {
	return d.timer != nil
}

// Cancel stops a pending call. fn is not invoked.
func (d *Debounce[T]) Cancel() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
