package sticky

import "github.com/go-drift/scrollkit/pkg/scroll"

// Section attaches a Positioner's guard hooks to an observer.
type Section struct {
	*Positioner

	topHook    scroll.Target
	bottomHook scroll.Target
	observer   *scroll.Observer
}

// NewSection creates a section whose guard hooks are topHook and
// bottomHook. measure reports the sticky content height.
func NewSection(topHook, bottomHook scroll.Target, measure func() float64) *Section {
	return &Section{
		Positioner: NewPositioner(measure),
		topHook:    topHook,
		bottomHook: bottomHook,
	}
}

// Attach registers both guard hooks with observer. Attaching to a second
// observer detaches from the first.
func (s *Section) Attach(observer *scroll.Observer) {
	if s.observer == observer {
		return
	}
	s.Detach()
	s.observer = observer
	if observer == nil {
		return
	}
	observer.Observe(s.topHook, s.TopHook())
	observer.Observe(s.bottomHook, s.BottomHook())
}

// Detach unregisters the guard hooks. Safe to call more than once.
func (s *Section) Detach() {
	if s.observer == nil {
		return
	}
	s.observer.Unobserve(s.topHook)
	s.observer.Unobserve(s.bottomHook)
	s.observer = nil
}
