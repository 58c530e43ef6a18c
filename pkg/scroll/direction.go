package scroll

import "time"

// Direction is the inferred direction of scroll travel.
type Direction int

const (
	// DirectionNone is reported until the first nonzero delta is observed.
	DirectionNone Direction = iota
	// DirectionUp means the vertical offset decreased.
	DirectionUp
	// DirectionDown means the vertical offset increased.
	DirectionDown
	// DirectionLeft means the horizontal offset decreased.
	DirectionLeft
	// DirectionRight means the horizontal offset increased.
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Sample is one scroll position report from the host.
type Sample struct {
	ScrollTop  float64
	ScrollLeft float64
	Timestamp  time.Time
}

// DirectionTracker infers scroll direction from consecutive samples.
//
// The vertical axis takes priority: any vertical movement decides the
// direction even when the sample also moved horizontally. A sample that
// did not move on either axis keeps the previous direction.
type DirectionTracker struct {
	last      Sample
	hasLast   bool
	direction Direction
}

// Update records sample and returns the resulting direction.
// The first sample always yields DirectionNone.
func (t *DirectionTracker) Update(sample Sample) Direction {
	if !t.hasLast {
		t.last = sample
		t.hasLast = true
		return t.direction
	}
	dy := sample.ScrollTop - t.last.ScrollTop
	dx := sample.ScrollLeft - t.last.ScrollLeft
	switch {
	case dy > 0:
		t.direction = DirectionDown
	case dy < 0:
		t.direction = DirectionUp
	case dx > 0:
		t.direction = DirectionRight
	case dx < 0:
		t.direction = DirectionLeft
	}
	t.last = sample
	return t.direction
}

// Direction returns the most recently computed direction.
func (t *DirectionTracker) Direction() Direction {
	return t.direction
}

// Reset forgets all samples.
func (t *DirectionTracker) Reset() {
	*t = DirectionTracker{}
}
