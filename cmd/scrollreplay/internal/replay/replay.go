// Package replay feeds a recorded trace through a scrollview.View on a
// virtual clock and records everything the view reports back.
package replay

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-drift/scrollkit/cmd/scrollreplay/internal/trace"
	"github.com/go-drift/scrollkit/pkg/errors"
	"github.com/go-drift/scrollkit/pkg/graphics"
	"github.com/go-drift/scrollkit/pkg/refresh"
	"github.com/go-drift/scrollkit/pkg/scroll"
	"github.com/go-drift/scrollkit/pkg/scrollview"
	"github.com/go-drift/scrollkit/pkg/sticky"
	"github.com/go-drift/scrollkit/pkg/timing"
)

// Kind classifies an outbound event.
type Kind string

// Event kinds, in roughly the order a scroll produces them.
const (
	KindInput       Kind = "input"
	KindScrollStart Kind = "scroll-start"
	KindScrollEnd   Kind = "scroll-end"
	KindDirection   Kind = "direction"
	KindEndReached  Kind = "end-reached"
	KindRefresh     Kind = "refresh"
	KindPull        Kind = "pull"
	KindSticky      Kind = "sticky"
	KindAdvisory    Kind = "advisory"
	KindPanic       Kind = "panic"
)

// Event is one line of the replay log.
type Event struct {
	At     time.Duration
	Kind   Kind
	Detail string
}

func (e Event) String() string {
	return fmt.Sprintf("%8s %-12s %s", e.At, e.Kind, e.Detail)
}

// Frame samples the view state after an input.
type Frame struct {
	At         time.Duration
	ScrollTop  float64
	PullHeight float64
	PullPhase  refresh.Phase
	Sticky     []sticky.Position
}

// Result is the outcome of a replay.
type Result struct {
	Events []Event
	Frames []Frame
}

// Count returns the number of events of kind k.
func (r *Result) Count(k Kind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// clock is the virtual time source installed for the duration of a replay.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// hook is a zero-height guard hook spanning the viewport width.
type hook struct {
	y     float64
	width float64
}

func (h hook) Bounds() graphics.Rect {
	return graphics.Rect{Left: 0, Top: h.y, Right: h.width, Bottom: h.y}
}

type runner struct {
	tr        *trace.Trace
	clock     *clock
	epoch     time.Time
	container *scroll.Controller
	view      *scrollview.View
	sections  []*sticky.Section
	result    Result
	direction scroll.Direction
	phase     refresh.Phase
}

// Run replays tr. It installs a virtual clock and discards any pending
// timers, so it must not run concurrently with other users of the timing
// package.
func Run(tr *trace.Trace) (*Result, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	r := &runner{
		tr:    tr,
		clock: &clock{},
		epoch: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	r.clock.set(r.epoch)
	prevClock := timing.SetClock(r.clock)
	prevHandler := errors.SetHandler(r)
	defer func() {
		timing.ResetTimers()
		timing.SetClock(prevClock)
		errors.SetHandler(prevHandler)
	}()

	r.mount()
	for _, e := range tr.Events {
		r.advanceTo(e.At())
		if err := r.apply(e); err != nil {
			return nil, err
		}
		r.snapshot()
	}
	// Let trailing throttle and scroll-end timers settle.
	if timing.HasActiveTimers() {
		for {
			deadline, ok := timing.NextDeadline()
			if !ok {
				break
			}
			r.advanceTo(deadline.Sub(r.epoch))
		}
		r.snapshot()
	}
	r.view.Dispose()
	return &r.result, nil
}

func (r *runner) now() time.Duration {
	return r.clock.Now().Sub(r.epoch)
}

func (r *runner) emit(kind Kind, format string, args ...any) {
	r.result.Events = append(r.result.Events, Event{
		At:     r.now(),
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	})
}

// HandleError implements errors.ErrorHandler.
func (r *runner) HandleError(err *errors.ScrollError) {
	r.emit(KindAdvisory, "%s: %v", err.Op, err.Err)
}

// HandlePanic implements errors.ErrorHandler.
func (r *runner) HandlePanic(err *errors.PanicError) {
	r.emit(KindPanic, "%s: %v", err.Op, err.Value)
}

func (r *runner) mount() {
	r.container = scroll.NewController(r.tr.Viewport.Size())
	r.view = &scrollview.View{
		Options: r.tr.Options.View(),
		OnScrollStart: func(s scroll.Sample) {
			r.emit(KindScrollStart, "top=%v left=%v", s.ScrollTop, s.ScrollLeft)
		},
		OnScrollEnd: func(s scroll.Sample) {
			r.emit(KindScrollEnd, "top=%v left=%v", s.ScrollTop, s.ScrollLeft)
		},
	}
	if r.tr.Handlers.Refresh {
		r.view.OnRefresh = func() { r.emit(KindRefresh, "pull released past the threshold") }
	}
	if r.tr.Handlers.EndReached {
		r.view.OnEndReached = func() { r.emit(KindEndReached, "top=%v", r.container.ScrollTop()) }
	}
	r.view.Mount(r.container)

	for _, s := range r.tr.Sticky {
		height := s.Height
		name := s.Name
		section := sticky.NewSection(
			&hook{y: s.Top, width: r.tr.Viewport.Width},
			&hook{y: s.Bottom, width: r.tr.Viewport.Width},
			func() float64 { return height },
		)
		section.AddListener(func(p sticky.Placement) {
			r.emit(KindSticky, "%s -> %s placeholder=%v", name, p.Position, p.PlaceholderHeight)
		})
		section.Attach(r.view.Observer())
		r.sections = append(r.sections, section)
	}
	if r.tr.Extent != nil {
		r.view.SetContentExtent(*r.tr.Extent)
	}
	r.view.Observer().Refresh()
}

// advanceTo moves the clock forward to at, firing due timers at their own
// deadlines so their timestamps are exact.
func (r *runner) advanceTo(at time.Duration) {
	target := r.epoch.Add(at)
	for {
		deadline, ok := timing.NextDeadline()
		if !ok || deadline.After(target) {
			break
		}
		if deadline.After(r.clock.Now()) {
			r.clock.set(deadline)
		}
		timing.StepTimers()
		r.checkDirection()
	}
	if target.After(r.clock.Now()) {
		r.clock.set(target)
	}
}

func (r *runner) apply(e trace.Event) error {
	switch {
	case e.Scroll != nil:
		r.emit(KindInput, "scroll top=%v left=%v", e.Scroll.Top, e.Scroll.Left)
		r.container.JumpTo(graphics.Offset{X: e.Scroll.Left, Y: e.Scroll.Top})
		r.checkDirection()
	case e.Touch != nil:
		t, err := e.Touch.Sample()
		if err != nil {
			return err
		}
		r.emit(KindInput, "touch %s y=%v", t.Phase, t.ClientY)
		r.view.HandleTouch(t)
		r.checkPull()
	case e.Refreshing != nil:
		r.emit(KindInput, "refreshing=%v", *e.Refreshing)
		r.view.SetRefreshing(*e.Refreshing)
		r.checkPull()
	case e.Extent != nil:
		r.emit(KindInput, "content extent=%v", *e.Extent)
		r.view.SetContentExtent(*e.Extent)
	}
	return nil
}

func (r *runner) checkDirection() {
	if d := r.view.Direction(); d != r.direction {
		r.direction = d
		r.emit(KindDirection, "%s", d)
	}
}

func (r *runner) checkPull() {
	s := r.view.PullState()
	if s.Phase != r.phase {
		r.phase = s.Phase
		r.emit(KindPull, "%s height=%v", s.Phase, s.Height)
	}
}

func (r *runner) snapshot() {
	s := r.view.PullState()
	frame := Frame{
		At:         r.now(),
		ScrollTop:  r.container.ScrollTop(),
		PullHeight: s.Height,
		PullPhase:  s.Phase,
	}
	for _, section := range r.sections {
		frame.Sticky = append(frame.Sticky, section.Position())
	}
	r.result.Frames = append(r.result.Frames, frame)
}
