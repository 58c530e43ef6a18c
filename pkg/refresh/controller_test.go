package refresh

import "testing"

type fakeHost struct {
	scrollTop float64
	locked    bool
	lockCalls int
}

func (h *fakeHost) ScrollTop() float64 { return h.scrollTop }

func (h *fakeHost) SetScrollLocked(locked bool) {
	h.locked = locked
	h.lockCalls++
}

func newTestController(armDistance float64) (*Controller, *fakeHost, *ThresholdIndicator, *int) {
	host := &fakeHost{}
	indicator := &ThresholdIndicator{ArmDistance: armDistance}
	calls := 0
	c := NewController(host, indicator, func() { calls++ })
	return c, host, indicator, &calls
}

func TestController_StartBelowTopNeverPulls(t *testing.T) {
	for _, dy := range []float64{1, 40, 500} {
		c, host, _, calls := newTestController(30)
		host.scrollTop = 10

		c.TouchStart(100)
		c.TouchMove(100 + dy)
		if c.State().Phase != PhaseIdle {
			t.Errorf("dy=%v: phase = %v, want idle", dy, c.State().Phase)
		}
		if host.locked {
			t.Errorf("dy=%v: native scrolling should not be locked", dy)
		}
		c.TouchEnd()
		if *calls != 0 {
			t.Errorf("dy=%v: OnRefresh called %d times", dy, *calls)
		}
	}
}

func TestController_PullLocksAndTracksHeight(t *testing.T) {
	c, host, indicator, _ := newTestController(30)

	c.TouchStart(100)
	if s := c.State(); !s.HasOrigin || s.OriginY != 100 {
		t.Fatalf("origin not recorded: %+v", s)
	}

	c.TouchMove(110)
	if c.State().Phase != PhasePulling {
		t.Fatalf("phase = %v, want pulling", c.State().Phase)
	}
	if !host.locked {
		t.Error("native scrolling should be locked while pulling")
	}
	if !indicator.Pulling() {
		t.Error("indicator should be started")
	}

	c.TouchMove(125)
	if got := c.State().Height; got != 25 {
		t.Errorf("height = %v, want 25", got)
	}
	if got := indicator.Height(); got != 25 {
		t.Errorf("indicator height = %v, want 25", got)
	}
}

func TestController_PullBackAboveOriginCollapses(t *testing.T) {
	c, host, _, _ := newTestController(30)

	c.TouchStart(100)
	c.TouchMove(120)
	c.TouchMove(95)

	s := c.State()
	if s.Phase != PhaseIdle || s.Height != 0 {
		t.Errorf("state = %+v, want idle with height 0", s)
	}
	if host.locked {
		t.Error("native scrolling should be restored")
	}

	// Pulling down again resumes.
	c.TouchMove(105)
	if c.State().Phase != PhasePulling || c.State().Height != 5 {
		t.Errorf("state = %+v, want pulling with height 5", c.State())
	}
}

func TestController_UnarmedReleaseCollapses(t *testing.T) {
	c, host, indicator, calls := newTestController(30)

	c.TouchStart(100)
	c.TouchMove(120)
	c.TouchEnd()

	s := c.State()
	if s.Phase != PhaseIdle || s.Height != 0 || s.HasOrigin {
		t.Errorf("state = %+v, want idle, height 0, no origin", s)
	}
	if *calls != 0 {
		t.Errorf("OnRefresh called %d times", *calls)
	}
	if host.locked {
		t.Error("native scrolling should be restored")
	}
	if indicator.Shown() {
		t.Error("refreshing display should not be pinned")
	}
}

func TestController_ArmedReleaseRefreshesUntilHostCompletes(t *testing.T) {
	c, host, indicator, calls := newTestController(30)

	c.TouchStart(0)
	c.TouchMove(40)
	c.TouchEnd()

	if *calls != 1 {
		t.Fatalf("OnRefresh called %d times, want 1", *calls)
	}
	if c.State().Phase != PhaseArmed {
		t.Errorf("phase = %v, want armed", c.State().Phase)
	}
	if !indicator.Shown() {
		t.Error("refreshing display should be pinned")
	}
	if host.locked {
		t.Error("native scrolling should be restored after release")
	}

	c.SetRefreshing(true)
	if c.State().Phase != PhaseArmed {
		t.Error("starting the refresh should keep the display pinned")
	}

	c.SetRefreshing(false)
	if s := c.State(); s.Phase != PhaseIdle || s.Height != 0 {
		t.Errorf("state = %+v, want idle with height 0", s)
	}
	if indicator.Height() != 0 || indicator.Shown() {
		t.Error("indicator should collapse on completion")
	}
}

func TestController_ReleaseWhileRefreshingDoesNotRefreshAgain(t *testing.T) {
	c, _, indicator, calls := newTestController(30)
	c.SetRefreshing(true)

	c.TouchStart(0)
	c.TouchMove(80)
	c.TouchEnd()

	if *calls != 0 {
		t.Errorf("OnRefresh called %d times while already refreshing", *calls)
	}
	if c.State().Phase != PhaseArmed || !indicator.Shown() {
		t.Errorf("display should stay pinned, state = %+v", c.State())
	}
}

func TestController_NoCallbackIsInert(t *testing.T) {
	host := &fakeHost{}
	c := NewController(host, nil, nil)

	c.TouchStart(0)
	c.TouchMove(100)
	c.TouchEnd()

	if s := c.State(); s.Phase != PhaseIdle || s.HasOrigin || s.Height != 0 {
		t.Errorf("state = %+v, want idle", s)
	}
	if host.lockCalls != 0 {
		t.Errorf("host touched %d times", host.lockCalls)
	}
}

func TestController_DisabledIsInert(t *testing.T) {
	c, host, _, calls := newTestController(30)
	c.SetDisabled(true)

	for _, touch := range []Touch{
		{Phase: TouchStart, ClientY: 0},
		{Phase: TouchMove, ClientY: 200},
		{Phase: TouchEnd},
	} {
		c.HandleTouch(touch)
	}
	if *calls != 0 || host.locked || c.State().Phase != PhaseIdle {
		t.Errorf("disabled controller reacted: calls=%d locked=%v state=%+v", *calls, host.locked, c.State())
	}
}

func TestController_RestartMidPullResets(t *testing.T) {
	c, host, _, _ := newTestController(30)

	c.TouchStart(0)
	c.TouchMove(20)
	c.TouchStart(300)

	s := c.State()
	if s.Phase != PhaseIdle || s.Height != 0 || s.OriginY != 300 {
		t.Errorf("state = %+v, want idle at new origin", s)
	}
	if host.locked {
		t.Error("native scrolling should be restored on implicit reset")
	}
}

func TestController_PanickingCallbackIsContained(t *testing.T) {
	host := &fakeHost{}
	c := NewController(host, &ThresholdIndicator{ArmDistance: 10}, func() { panic("boom") })

	c.TouchStart(0)
	c.TouchMove(50)
	c.TouchEnd()

	if c.State().Phase != PhaseArmed {
		t.Errorf("phase = %v, want armed", c.State().Phase)
	}
	if host.locked {
		t.Error("native scrolling should be restored")
	}
}

func TestThresholdIndicator(t *testing.T) {
	i := &ThresholdIndicator{}
	i.SetHeight(DefaultArmDistance - 1)
	if i.ShouldRefresh() {
		t.Error("should not arm below the default distance")
	}
	if p := i.Progress(); p <= 0 || p >= 1 {
		t.Errorf("Progress = %v, want (0, 1)", p)
	}
	i.SetHeight(DefaultArmDistance)
	if !i.ShouldRefresh() {
		t.Error("should arm at the default distance")
	}
	i.SetHeight(-10)
	if i.Height() != 0 {
		t.Errorf("negative height should clamp to 0, got %v", i.Height())
	}
}
