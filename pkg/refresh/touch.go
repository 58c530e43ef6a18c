package refresh

// TouchPhase identifies the stage of a single-pointer touch sequence.
type TouchPhase int

const (
	// TouchStart begins a sequence.
	TouchStart TouchPhase = iota
	// TouchMove reports pointer movement.
	TouchMove
	// TouchEnd ends a sequence, including cancellation.
	TouchEnd
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStart:
		return "start"
	case TouchMove:
		return "move"
	case TouchEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Touch is one touch sample in viewport coordinates.
type Touch struct {
	Phase   TouchPhase
	ClientY float64
}
