package scroll

import (
	"slices"

	"github.com/go-drift/scrollkit/pkg/graphics"
	"github.com/go-drift/scrollkit/pkg/timing"
)

// Container is a scrollable region an Observer can be mounted against.
//
// AddScrollListener registers a callback for position changes and returns
// a function that removes it.
type Container interface {
	Viewport
	AddScrollListener(listener func(Sample)) func()
}

// Controller is an in-process scroll container: it owns a scroll offset
// and a viewport size and notifies listeners when the offset changes.
// Hosts forward their native scroll position into it with JumpTo.
type Controller struct {
	offset         graphics.Offset
	viewport       graphics.Size
	locked         bool
	listeners      []scrollListener
	nextListenerID int
}

type scrollListener struct {
	id int
	fn func(Sample)
}

// NewController creates a controller at offset zero.
func NewController(viewport graphics.Size) *Controller {
	return &Controller{viewport: viewport}
}

// Offset returns the current scroll offset.
func (c *Controller) Offset() graphics.Offset {
	return c.offset
}

// ScrollTop returns the current vertical scroll offset.
func (c *Controller) ScrollTop() float64 {
	return c.offset.Y
}

// ViewportSize returns the current viewport size.
func (c *Controller) ViewportSize() graphics.Size {
	return c.viewport
}

// SetViewportSize updates the viewport size. Listeners are not notified;
// the observer picks up the new visible rect on the next sample.
func (c *Controller) SetViewportSize(size graphics.Size) {
	c.viewport = size
}

// VisibleRect implements Viewport.
func (c *Controller) VisibleRect() graphics.Rect {
	return graphics.RectFromOffsetSize(c.offset, c.viewport)
}

// AddScrollListener implements Container.
func (c *Controller) AddScrollListener(listener func(Sample)) func() {
	if listener == nil {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners = append(c.listeners, scrollListener{id: id, fn: listener})
	return func() {
		c.listeners = slices.DeleteFunc(c.listeners, func(l scrollListener) bool {
			return l.id == id
		})
	}
}

// JumpTo moves to offset and notifies listeners. Programmatic jumps are
// honored even while user scrolling is locked.
func (c *Controller) JumpTo(offset graphics.Offset) {
	c.offset = offset
	c.notifyListeners()
}

// ScrollBy applies a user scroll delta. It is ignored while locked.
func (c *Controller) ScrollBy(dx, dy float64) {
	if c.locked {
		return
	}
	c.JumpTo(graphics.Offset{X: c.offset.X + dx, Y: c.offset.Y + dy})
}

// SetScrollLocked suppresses or restores user scrolling.
func (c *Controller) SetScrollLocked(locked bool) {
	c.locked = locked
}

// ScrollLocked reports whether user scrolling is suppressed.
func (c *Controller) ScrollLocked() bool {
	return c.locked
}

func (c *Controller) notifyListeners() {
	sample := Sample{
		ScrollTop:  c.offset.Y,
		ScrollLeft: c.offset.X,
		Timestamp:  timing.Now(),
	}
	// Listeners may remove themselves while being notified.
	for _, listener := range slices.Clone(c.listeners) {
		listener.fn(sample)
	}
}
