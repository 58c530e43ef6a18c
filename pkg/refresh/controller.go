// Package refresh implements the pull-to-refresh gesture for a vertical
// scroll container.
//
// A [Controller] turns a single-pointer touch sequence into a pull height
// and a refresh decision. Pulling is only possible when the sequence starts
// with the container scrolled to the top. While pulling, the container's
// native scrolling is locked and the pull distance is forwarded to the
// [Indicator]. On release the indicator decides whether the pull was armed;
// an armed pull invokes OnRefresh and pins the refreshing display until the
// host reports completion through SetRefreshing(false).
package refresh

import "github.com/go-drift/scrollkit/pkg/errors"

// Phase is the gesture phase of a Controller.
type Phase int

const (
	// PhaseIdle means no pull is in progress and nothing is displayed.
	PhaseIdle Phase = iota
	// PhasePulling means a pull is in progress and native scrolling is locked.
	PhasePulling
	// PhaseArmed means a pull was released past the threshold, or released
	// during a refresh, and the refreshing display is pinned.
	PhaseArmed
)

func (p Phase) String() string {
	switch p {
	case PhasePulling:
		return "pulling"
	case PhaseArmed:
		return "armed"
	default:
		return "idle"
	}
}

// Host is the scroll container the gesture operates on.
type Host interface {
	ScrollTop() float64
	SetScrollLocked(locked bool)
}

// State is a snapshot of the gesture state.
type State struct {
	Phase Phase
	// OriginY is the clientY of an eligible touch start. Valid only when
	// HasOrigin is true.
	OriginY   float64
	HasOrigin bool
	// Height is the current pull height in layout units.
	Height float64
}

// Controller is the pull-to-refresh gesture state machine.
type Controller struct {
	// OnRefresh is invoked when an armed pull is released. A nil OnRefresh
	// disables the gesture entirely.
	OnRefresh func()

	host       Host
	indicator  Indicator
	refreshing bool
	disabled   bool

	phase     Phase
	originY   float64
	hasOrigin bool
	height    float64
}

// NewController creates a controller for host. A nil indicator selects a
// ThresholdIndicator with the default arm distance.
func NewController(host Host, indicator Indicator, onRefresh func()) *Controller {
	if indicator == nil {
		indicator = &ThresholdIndicator{}
	}
	return &Controller{
		OnRefresh: onRefresh,
		host:      host,
		indicator: indicator,
	}
}

// Indicator returns the controller's indicator.
func (c *Controller) Indicator() Indicator {
	return c.indicator
}

// SetDisabled makes the controller inert, as for horizontal containers.
// Disabling mid-gesture collapses the pull and restores native scrolling.
func (c *Controller) SetDisabled(disabled bool) {
	if disabled && !c.disabled {
		if c.phase == PhasePulling {
			c.collapse()
		}
		c.hasOrigin = false
	}
	c.disabled = disabled
}

// Disabled reports whether the controller is inert.
func (c *Controller) Disabled() bool {
	return c.disabled
}

// State returns a snapshot of the gesture state.
func (c *Controller) State() State {
	return State{
		Phase:     c.phase,
		OriginY:   c.originY,
		HasOrigin: c.hasOrigin,
		Height:    c.height,
	}
}

// Refreshing reports the last value passed to SetRefreshing.
func (c *Controller) Refreshing() bool {
	return c.refreshing
}

// HandleTouch routes a touch sample to the matching phase handler.
func (c *Controller) HandleTouch(t Touch) {
	switch t.Phase {
	case TouchStart:
		c.TouchStart(t.ClientY)
	case TouchMove:
		c.TouchMove(t.ClientY)
	case TouchEnd:
		c.TouchEnd()
	}
}

func (c *Controller) enabled() bool {
	return !c.disabled && c.OnRefresh != nil && c.host != nil
}

// TouchStart begins a sequence. The sequence is eligible for pulling only
// if the container is at the top. A start that interrupts an unfinished
// pull resets it first.
func (c *Controller) TouchStart(clientY float64) {
	if !c.enabled() {
		c.reset()
		return
	}
	if c.phase == PhasePulling {
		c.collapse()
	}
	c.hasOrigin = false
	if c.host.ScrollTop() <= 0 {
		c.originY = clientY
		c.hasOrigin = true
	}
}

// TouchMove updates the pull for an eligible sequence.
func (c *Controller) TouchMove(clientY float64) {
	if !c.enabled() {
		c.reset()
		return
	}
	if !c.hasOrigin {
		return
	}
	dy := clientY - c.originY
	switch {
	case dy > 0 && c.phase != PhasePulling:
		c.phase = PhasePulling
		c.indicator.Start()
		c.host.SetScrollLocked(true)
	case dy <= 0 && c.phase == PhasePulling:
		c.collapse()
	}
	if c.phase == PhasePulling {
		c.setHeight(dy)
	}
}

// TouchEnd finishes the sequence. A pull the indicator considers armed
// triggers OnRefresh unless a refresh is already running, and the
// refreshing display is pinned. Otherwise the pull collapses.
func (c *Controller) TouchEnd() {
	if !c.enabled() {
		c.reset()
		return
	}
	c.hasOrigin = false
	if !c.refreshing && c.phase != PhasePulling {
		return
	}
	armed := c.indicator.ShouldRefresh()
	if !c.refreshing && armed {
		c.invokeRefresh()
	}
	c.indicator.End()
	if c.refreshing || armed {
		c.indicator.Show()
		c.phase = PhaseArmed
	} else {
		c.setHeight(0)
		c.phase = PhaseIdle
	}
	c.host.SetScrollLocked(false)
}

// SetRefreshing reports the host's refreshing state. A transition from
// true to false ends the refreshing display and collapses the pull,
// whatever the current phase.
func (c *Controller) SetRefreshing(refreshing bool) {
	was := c.refreshing
	c.refreshing = refreshing
	if was && !refreshing {
		c.indicator.End()
		c.setHeight(0)
		if c.phase == PhasePulling && c.host != nil {
			c.host.SetScrollLocked(false)
		}
		c.phase = PhaseIdle
		c.hasOrigin = false
	}
}

func (c *Controller) invokeRefresh() {
	defer errors.Recover("refresh.Controller.OnRefresh")
	c.OnRefresh()
}

// collapse abandons a pull: height zero, idle, native scrolling restored.
func (c *Controller) collapse() {
	c.setHeight(0)
	c.phase = PhaseIdle
	if c.host != nil {
		c.host.SetScrollLocked(false)
	}
}

// reset returns an inert controller to idle without touching the host
// unless a pull was in progress.
func (c *Controller) reset() {
	c.hasOrigin = false
	if c.phase == PhasePulling {
		c.indicator.End()
		c.collapse()
		return
	}
	if c.phase != PhaseIdle && !c.refreshing {
		c.setHeight(0)
		c.phase = PhaseIdle
	}
}

func (c *Controller) setHeight(height float64) {
	c.height = max(0, height)
	c.indicator.SetHeight(c.height)
}
