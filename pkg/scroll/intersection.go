package scroll

import "github.com/go-drift/scrollkit/pkg/errors"

// Target identifies something whose visibility is tracked. Targets are
// compared by identity, so they must be comparable; pointers are typical.
// The observer never owns a target's lifetime.
type Target any

// Intersection binds enter/leave callbacks to a target.
//
// OnEnter runs when the target goes from not visible to visible and
// OnLeave runs on the reverse transition. Both receive the observer's most
// recent direction at dispatch time. Either callback may be nil.
type Intersection struct {
	OnEnter func(Direction)
	OnLeave func(Direction)

	visible bool
}

// Visible reports the last visibility state delivered to this binding.
func (i *Intersection) Visible() bool {
	return i.visible
}

// report applies a visibility report. Repeated reports of the same state
// are dropped. Returns true if a transition occurred.
func (i *Intersection) report(visible bool, dir Direction) bool {
	if visible == i.visible {
		return false
	}
	i.visible = visible
	cb := i.OnLeave
	if visible {
		cb = i.OnEnter
	}
	if cb != nil {
		invoke(cb, dir)
	}
	return true
}

func invoke(cb func(Direction), dir Direction) {
	defer errors.Recover("scroll.Intersection.dispatch")
	cb(dir)
}
