package testing

import (
	"testing"
	"time"

	"github.com/go-drift/scrollkit/pkg/graphics"
	"github.com/go-drift/scrollkit/pkg/scroll"
	"github.com/go-drift/scrollkit/pkg/timing"
)

const (
	// DefaultTestWidth is the default viewport width.
	DefaultTestWidth = 320
	// DefaultTestHeight is the default viewport height.
	DefaultTestHeight = 600
)

// Tester owns a fake clock and a scroll container for one test.
type Tester struct {
	clock     *FakeClock
	restore   func()
	container *scroll.Controller
}

// NewTester creates a tester with a viewport of the given size. A zero size
// selects DefaultTestWidth x DefaultTestHeight.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester(viewport graphics.Size) *Tester {
	if viewport == (graphics.Size{}) {
		viewport = graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}
	}
	clk := NewFakeClock()
	return &Tester{
		clock:     clk,
		restore:   clk.Install(),
		container: scroll.NewController(viewport),
	}
}

// NewTesterWithT creates a tester that cleans up when t finishes.
func NewTesterWithT(t testing.TB, viewport graphics.Size) *Tester {
	t.Helper()
	tester := NewTester(viewport)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the real clock and discards pending timers so they
// cannot leak into the next test.
func (t *Tester) Cleanup() {
	timing.ResetTimers()
	if t.restore != nil {
		t.restore()
		t.restore = nil
	}
}

// Clock returns the tester's fake clock.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Container returns the tester's scroll container.
func (t *Tester) Container() *scroll.Controller {
	return t.container
}

// Advance moves time forward and fires due timers.
func (t *Tester) Advance(d time.Duration) {
	t.clock.Advance(d)
}

// Pump fires timers that are already due without moving time.
func (t *Tester) Pump() {
	timing.StepTimers()
}

// ScrollTo moves the container to vertical offset y, keeping the
// horizontal offset.
func (t *Tester) ScrollTo(y float64) {
	offset := t.container.Offset()
	t.container.JumpTo(graphics.Offset{X: offset.X, Y: y})
}

// ScrollToX moves the container to horizontal offset x.
func (t *Tester) ScrollToX(x float64) {
	offset := t.container.Offset()
	t.container.JumpTo(graphics.Offset{X: x, Y: offset.Y})
}

// Box is a target with explicit bounds in content coordinates.
type Box struct {
	bounds graphics.Rect
}

// NewBox creates a box at (left, top) with the given size.
func NewBox(left, top, width, height float64) *Box {
	return &Box{bounds: graphics.RectFromLTWH(left, top, width, height)}
}

// Bounds implements scroll.Bounded.
func (b *Box) Bounds() graphics.Rect {
	return b.bounds
}

// MoveTo repositions the box, keeping its size.
func (b *Box) MoveTo(left, top float64) {
	b.bounds = graphics.RectFromOffsetSize(graphics.Offset{X: left, Y: top}, b.bounds.Size())
}
