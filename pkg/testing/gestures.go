package testing

import (
	"fmt"

	"github.com/go-drift/scrollkit/pkg/refresh"
)

// TouchDriver simulates single-pointer touch sequences against a touch
// handler such as scrollview.View.HandleTouch or
// refresh.Controller.HandleTouch.
type TouchDriver struct {
	handle func(refresh.Touch)
	y      float64
	down   bool
	sent   []refresh.Touch
}

// NewTouchDriver creates a driver that sends samples to handle.
func NewTouchDriver(handle func(refresh.Touch)) *TouchDriver {
	return &TouchDriver{handle: handle}
}

// Down starts a sequence at clientY.
func (d *TouchDriver) Down(clientY float64) error {
	if d.down {
		return fmt.Errorf("Down: pointer already down at %v", d.y)
	}
	d.down = true
	d.y = clientY
	d.send(refresh.Touch{Phase: refresh.TouchStart, ClientY: clientY})
	return nil
}

// MoveTo moves the pointer to clientY.
func (d *TouchDriver) MoveTo(clientY float64) error {
	if !d.down {
		return fmt.Errorf("MoveTo: pointer is not down")
	}
	d.y = clientY
	d.send(refresh.Touch{Phase: refresh.TouchMove, ClientY: clientY})
	return nil
}

// Up ends the sequence at the last position.
func (d *TouchDriver) Up() error {
	if !d.down {
		return fmt.Errorf("Up: pointer is not down")
	}
	d.down = false
	d.send(refresh.Touch{Phase: refresh.TouchEnd, ClientY: d.y})
	return nil
}

// Drag performs a complete sequence from start to start+delta in steps
// equal moves. steps below 1 is treated as 1.
func (d *TouchDriver) Drag(start, delta float64, steps int) error {
	if err := d.Down(start); err != nil {
		return err
	}
	steps = max(steps, 1)
	for i := 1; i <= steps; i++ {
		if err := d.MoveTo(start + delta*float64(i)/float64(steps)); err != nil {
			return err
		}
	}
	return d.Up()
}

// Pull is Drag from the top of the viewport in a single move.
func (d *TouchDriver) Pull(distance float64) error {
	return d.Drag(0, distance, 1)
}

// IsDown reports whether a sequence is in progress.
func (d *TouchDriver) IsDown() bool {
	return d.down
}

// Sent returns every sample sent so far.
func (d *TouchDriver) Sent() []refresh.Touch {
	return d.sent
}

func (d *TouchDriver) send(t refresh.Touch) {
	d.sent = append(d.sent, t)
	if d.handle != nil {
		d.handle(t)
	}
}
