package refresh

// DefaultArmDistance is the pull height at which ThresholdIndicator arms.
const DefaultArmDistance = 64

// Indicator is the refresh-indicator collaborator that renders the pull.
//
// The controller calls Start when a pull begins, SetHeight while it moves,
// and End when the touch sequence finishes. Show pins the refreshing
// display. ShouldRefresh is consulted once at release and decides whether
// the pull was armed.
type Indicator interface {
	Start()
	SetHeight(height float64)
	ShouldRefresh() bool
	Show()
	End()
}

// ThresholdIndicator arms once the pull height reaches ArmDistance.
// It records what the controller asked it to display, which is enough for
// a renderer to draw from and for tests to assert against.
type ThresholdIndicator struct {
	// ArmDistance is the arming height. Zero selects DefaultArmDistance.
	ArmDistance float64

	height  float64
	pulling bool
	shown   bool
}

// Start implements Indicator.
func (i *ThresholdIndicator) Start() {
	i.pulling = true
	i.shown = false
}

// SetHeight implements Indicator. Heights are clamped at zero.
func (i *ThresholdIndicator) SetHeight(height float64) {
	i.height = max(0, height)
	if i.height == 0 {
		i.shown = false
	}
}

// ShouldRefresh implements Indicator.
func (i *ThresholdIndicator) ShouldRefresh() bool {
	return i.height >= i.armDistance()
}

// Show implements Indicator. The display is pinned at the arm distance.
func (i *ThresholdIndicator) Show() {
	i.shown = true
	i.height = i.armDistance()
}

// End implements Indicator.
func (i *ThresholdIndicator) End() {
	i.pulling = false
}

// Height returns the displayed height.
func (i *ThresholdIndicator) Height() float64 {
	return i.height
}

// Pulling reports whether a pull is in progress.
func (i *ThresholdIndicator) Pulling() bool {
	return i.pulling
}

// Shown reports whether the refreshing display is pinned.
func (i *ThresholdIndicator) Shown() bool {
	return i.shown
}

// Progress returns how far the pull is toward arming, in [0, 1].
func (i *ThresholdIndicator) Progress() float64 {
	return min(1, i.height/i.armDistance())
}

func (i *ThresholdIndicator) armDistance() float64 {
	if i.ArmDistance <= 0 {
		return DefaultArmDistance
	}
	return i.ArmDistance
}
