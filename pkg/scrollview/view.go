// Package scrollview wires the scroll primitives into one scroll container.
//
// A [View] owns the container's [scroll.Observer], the pull-to-refresh
// [refresh.Controller], the end-reached sentinel and the scroll lifecycle
// callbacks. The host forwards touch samples and the refreshing flag to it
// and reports the content extent after layout; scroll samples arrive
// through the container.
//
//	view := &scrollview.View{
//	    Options:      scrollview.Options{Throttle: 16 * time.Millisecond},
//	    OnEndReached: loadNextPage,
//	    OnRefresh:    reload,
//	}
//	view.Mount(controller)
//	view.SetContentExtent(contentHeight)
//	defer view.Dispose()
//
// Children that track their own visibility, such as sticky sections,
// register with View.Observer.
package scrollview

import (
	"github.com/go-drift/scrollkit/pkg/errors"
	"github.com/go-drift/scrollkit/pkg/graphics"
	"github.com/go-drift/scrollkit/pkg/refresh"
	"github.com/go-drift/scrollkit/pkg/scroll"
	"github.com/go-drift/scrollkit/pkg/timing"
)

// Container is a scroll container that supports both visibility tracking
// and the pull gesture. scroll.Controller implements it.
type Container interface {
	scroll.Container
	refresh.Host
}

// View is the host-facing scroll container behavior.
//
// Configure the exported fields before Mount. Callbacks may be nil.
type View struct {
	Options

	// OnScrollStart is called on the first scroll sample after a quiet
	// period.
	OnScrollStart func(scroll.Sample)
	// OnScroll is called for every scroll sample, unthrottled.
	OnScroll func(scroll.Sample)
	// OnScrollEnd is called once ScrollEndDelay passes without a sample.
	OnScrollEnd func(scroll.Sample)
	// OnEndReached is called each time the end-reached sentinel becomes
	// visible. Vertical only. Use SetOnEndReached after Mount.
	OnEndReached func()
	// OnRefresh is called when an armed pull is released. Vertical only.
	OnRefresh func()
	// OnTouchStart, OnTouchMove and OnTouchEnd receive every touch sample
	// before the pull gesture sees it.
	OnTouchStart func(refresh.Touch)
	OnTouchMove  func(refresh.Touch)
	OnTouchEnd   func(refresh.Touch)

	// Indicator renders the pull. Nil selects a refresh.ThresholdIndicator
	// armed at RefreshArmDistance.
	Indicator refresh.Indicator
	// Watcher is the overlap primitive. Nil selects a scroll.RectWatcher.
	Watcher scroll.GeometryWatcher

	container      Container
	observer       *scroll.Observer
	pull           *refresh.Controller
	scrollEnd      *timing.Debounce[scroll.Sample]
	removeListener func()
	sentinel       *endSentinel
	extent         float64
	hasExtent      bool
	scrolling      bool
	mounted        bool
}

// Mount attaches the view to container. Conflicting options are reported
// as advisories through the errors package and the affected features stay
// inert. Mounting a mounted view is a no-op.
func (v *View) Mount(container Container) {
	if v.mounted || container == nil {
		return
	}
	opts, conflicts := v.Resolve(v.OnRefresh != nil, v.OnEndReached != nil)
	v.Options = opts
	for _, conflict := range conflicts {
		errors.ReportConflict("scrollview.View.Mount", conflict.Feature, conflict.Reason)
	}

	v.container = container
	v.mounted = true
	if v.Disabled {
		container.SetScrollLocked(true)
	}

	v.observer = scroll.NewObserver(v.Watcher)
	v.observer.Mount(container, v.Throttle)

	indicator := v.Indicator
	if indicator == nil {
		indicator = &refresh.ThresholdIndicator{ArmDistance: v.RefreshArmDistance}
	}
	v.pull = refresh.NewController(lockGuard{v}, indicator, v.OnRefresh)
	v.pull.SetDisabled(v.Horizontal)

	v.scrollEnd = timing.NewDebounce(v.ScrollEndDelay, v.handleScrollEnd)
	v.removeListener = container.AddScrollListener(v.handleScroll)

	v.sentinel = &endSentinel{view: v}
	v.observeEndReached()
	v.observer.Refresh()
}

// Dispose detaches the view. Pending scroll-end notifications are canceled
// and never delivered, a pull in progress collapses and the container's
// native scrolling is restored. Events arriving afterwards are ignored.
// Safe to call more than once.
func (v *View) Dispose() {
	if !v.mounted {
		return
	}
	v.mounted = false
	if v.scrollEnd != nil {
		v.scrollEnd.Cancel()
	}
	if v.removeListener != nil {
		v.removeListener()
		v.removeListener = nil
	}
	if v.pull != nil {
		v.pull.SetDisabled(true)
	}
	// Directly, since lockGuard keeps a disabled view locked.
	v.container.SetScrollLocked(false)
	v.observer.Unmount()
	v.scrolling = false
}

// Mounted reports whether the view is mounted.
func (v *View) Mounted() bool {
	return v.mounted
}

// Observer returns the view's observer, or nil before Mount.
func (v *View) Observer() *scroll.Observer {
	return v.observer
}

// Direction returns the current scroll direction.
func (v *View) Direction() scroll.Direction {
	if v.observer == nil {
		return scroll.DirectionNone
	}
	return v.observer.Direction()
}

// Scrolling reports whether a scroll burst is in progress.
func (v *View) Scrolling() bool {
	return v.scrolling
}

// PullState returns the pull-to-refresh gesture state.
func (v *View) PullState() refresh.State {
	if v.pull == nil {
		return refresh.State{}
	}
	return v.pull.State()
}

// SetContentExtent reports the scrollable content length along the scroll
// axis. The end-reached sentinel is positioned relative to it, so hosts
// call this after every layout that changes the content size.
func (v *View) SetContentExtent(extent float64) {
	v.extent = extent
	v.hasExtent = true
	if !v.mounted {
		return
	}
	v.observeEndReached()
	v.observer.Refresh()
}

// SetOnEndReached replaces the end-reached callback. A nil callback stops
// observing the sentinel; a non-nil one starts observing it.
func (v *View) SetOnEndReached(fn func()) {
	v.OnEndReached = fn
	if !v.mounted {
		return
	}
	if fn == nil {
		v.observer.Unobserve(v.sentinel)
		return
	}
	v.observeEndReached()
	v.observer.Refresh()
}

// SetRefreshing forwards the host's refreshing flag. Its transition from
// true to false ends the refreshing display.
func (v *View) SetRefreshing(refreshing bool) {
	if !v.mounted {
		return
	}
	v.pull.SetRefreshing(refreshing)
}

// HandleTouch routes one touch sample to the touch callbacks and the pull
// gesture.
func (v *View) HandleTouch(t refresh.Touch) {
	if !v.mounted {
		return
	}
	var cb func(refresh.Touch)
	switch t.Phase {
	case refresh.TouchStart:
		cb = v.OnTouchStart
	case refresh.TouchMove:
		cb = v.OnTouchMove
	case refresh.TouchEnd:
		cb = v.OnTouchEnd
	}
	if cb != nil {
		callTouch(cb, t)
	}
	v.pull.OnRefresh = v.OnRefresh
	v.pull.HandleTouch(t)
}

func (v *View) observeEndReached() {
	if v.OnEndReached == nil || v.Horizontal || !v.hasExtent {
		return
	}
	if v.observer.Observing(v.sentinel) {
		return
	}
	v.observer.Observe(v.sentinel, &scroll.Intersection{
		OnEnter: func(scroll.Direction) {
			if fn := v.OnEndReached; fn != nil {
				fn()
			}
		},
	})
}

func (v *View) handleScroll(sample scroll.Sample) {
	if !v.mounted {
		return
	}
	if !v.scrolling {
		v.scrolling = true
		if v.OnScrollStart != nil {
			callSample(v.OnScrollStart, sample)
		}
	}
	if v.OnScroll != nil {
		callSample(v.OnScroll, sample)
	}
	v.scrollEnd.Call(sample)
}

func (v *View) handleScrollEnd(sample scroll.Sample) {
	if !v.mounted {
		return
	}
	v.scrolling = false
	if v.OnScrollEnd != nil {
		callSample(v.OnScrollEnd, sample)
	}
}

func callSample(cb func(scroll.Sample), s scroll.Sample) {
	defer errors.Recover("scrollview.View.scroll")
	cb(s)
}

func callTouch(cb func(refresh.Touch), t refresh.Touch) {
	defer errors.Recover("scrollview.View.touch")
	cb(t)
}

// endSentinel is the zero-height end-reached target. It sits
// EndReachedThreshold before the end of the content and spans the visible
// width.
type endSentinel struct {
	view *View
}

func (s *endSentinel) Bounds() graphics.Rect {
	v := s.view
	visible := v.container.VisibleRect()
	top := v.extent - v.EndReachedThreshold
	return graphics.Rect{Left: visible.Left, Top: top, Right: visible.Right, Bottom: top}
}

// lockGuard keeps native scrolling locked while the view is disabled, even
// when the pull gesture releases its own lock.
type lockGuard struct {
	view *View
}

func (g lockGuard) ScrollTop() float64 {
	return g.view.container.ScrollTop()
}

func (g lockGuard) SetScrollLocked(locked bool) {
	g.view.container.SetScrollLocked(locked || g.view.Disabled)
}
