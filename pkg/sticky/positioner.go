// Package sticky decides where a section's sticky header is placed while
// its section scrolls through the viewport.
//
// Two zero-size guard hooks bracket the section: the top hook sits at the
// section's start and the bottom hook at its end. A [Positioner] reacts to
// their visibility transitions together with the scroll direction and
// moves the header between the placements described by [Position].
package sticky

import (
	"slices"

	"github.com/go-drift/scrollkit/pkg/scroll"
)

// Position is where the sticky content is laid out.
type Position int

const (
	// PositionTop keeps the content in flow at the top of its section.
	PositionTop Position = iota
	// PositionFixed detaches the content and pins it to the viewport.
	PositionFixed
	// PositionBottom parks the content at the bottom of its section.
	PositionBottom
)

func (p Position) String() string {
	switch p {
	case PositionFixed:
		return "fixed"
	case PositionBottom:
		return "bottom"
	default:
		return "top"
	}
}

// Placement is the positioner's output to the renderer.
type Placement struct {
	Position Position
	// PlaceholderHeight sizes the in-flow placeholder that stands in for the
	// detached content, keeping the guard hooks at stable positions. It is
	// nonzero only for PositionFixed.
	PlaceholderHeight float64
}

// Positioner is the sticky placement state machine.
//
// Transitions only happen when the crossing agrees with the direction of
// travel; a hook crossing caused by a layout jump in the other direction is
// ignored so the header cannot oscillate.
type Positioner struct {
	measure        func() float64
	placement      Placement
	listeners      []placementListener
	nextListenerID int

	top    *scroll.Intersection
	bottom *scroll.Intersection
}

// NewPositioner creates a positioner in PositionTop. measure reports the
// current height of the sticky content; it is sampled when the content
// becomes fixed. A nil measure yields a zero placeholder.
func NewPositioner(measure func() float64) *Positioner {
	p := &Positioner{measure: measure}
	p.top = &scroll.Intersection{OnEnter: p.HandleTopEnter, OnLeave: p.HandleTopLeave}
	p.bottom = &scroll.Intersection{OnEnter: p.HandleBottomEnter, OnLeave: p.HandleBottomLeave}
	return p
}

// TopHook returns the binding for the top guard hook.
func (p *Positioner) TopHook() *scroll.Intersection {
	return p.top
}

// BottomHook returns the binding for the bottom guard hook.
func (p *Positioner) BottomHook() *scroll.Intersection {
	return p.bottom
}

// Placement returns the current placement.
func (p *Positioner) Placement() Placement {
	return p.placement
}

// Position returns the current position.
func (p *Positioner) Position() Position {
	return p.placement.Position
}

// AddListener registers a callback for placement changes and returns a
// function that removes it.
func (p *Positioner) AddListener(listener func(Placement)) func() {
	if listener == nil {
		return func() {}
	}
	id := p.nextListenerID
	p.nextListenerID++
	p.listeners = append(p.listeners, placementListener{id: id, fn: listener})
	return func() {
		p.listeners = slices.DeleteFunc(p.listeners, func(l placementListener) bool {
			return l.id == id
		})
	}
}

// HandleTopEnter moves back to the top when scrolling up past the section
// start.
func (p *Positioner) HandleTopEnter(dir scroll.Direction) {
	if dir == scroll.DirectionUp && p.placement.Position != PositionTop {
		p.set(PositionTop)
	}
}

// HandleTopLeave fixes the content when scrolling down past the section
// start.
func (p *Positioner) HandleTopLeave(dir scroll.Direction) {
	if dir == scroll.DirectionDown && p.placement.Position != PositionFixed {
		p.set(PositionFixed)
	}
}

// HandleBottomEnter fixes the content again when scrolling up into the
// section from below.
func (p *Positioner) HandleBottomEnter(dir scroll.Direction) {
	if dir == scroll.DirectionUp && p.placement.Position != PositionFixed {
		p.set(PositionFixed)
	}
}

// HandleBottomLeave parks the content at the bottom when scrolling down
// past the section end.
func (p *Positioner) HandleBottomLeave(dir scroll.Direction) {
	if dir == scroll.DirectionDown && p.placement.Position != PositionBottom {
		p.set(PositionBottom)
	}
}

func (p *Positioner) set(pos Position) {
	next := Placement{Position: pos}
	if pos == PositionFixed && p.measure != nil {
		next.PlaceholderHeight = max(0, p.measure())
	}
	p.placement = next
	for _, l := range slices.Clone(p.listeners) {
		l.fn(next)
	}
}

type placementListener struct {
	id int
	fn func(Placement)
}
