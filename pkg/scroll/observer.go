package scroll

import (
	"slices"
	"time"

	"github.com/go-drift/scrollkit/pkg/timing"
)

// Observer tracks scroll direction for one container and dispatches
// visibility transitions of registered targets to their bindings.
//
// Targets may be observed before Mount; they are handed to the watcher when
// the observer mounts. After Unmount all registrations are released and
// late watcher reports are ignored.
type Observer struct {
	watcher  GeometryWatcher
	tracker  DirectionTracker
	bindings map[Target]*Intersection
	order    []Target

	container      Container
	throttle       *timing.Throttle[Sample]
	removeListener func()
	mounted        bool
}

// NewObserver creates an observer that uses watcher for overlap reports.
// A nil watcher selects a new RectWatcher.
func NewObserver(watcher GeometryWatcher) *Observer {
	if watcher == nil {
		watcher = NewRectWatcher()
	}
	return &Observer{
		watcher:  watcher,
		bindings: make(map[Target]*Intersection),
	}
}

// Mount starts receiving scroll samples from container. Samples are
// throttled to at most one per throttle interval with a trailing call for
// the latest sample; zero disables throttling. Mounting an already mounted
// observer moves it to the new container and resets target visibility.
// Remounting on the same container keeps the last known visibility, so a
// target that stays in view does not enter again.
func (o *Observer) Mount(container Container, throttle time.Duration) {
	if container == nil {
		return
	}
	var keep map[Target]bool
	if o.mounted && o.container == container {
		keep = make(map[Target]bool, len(o.order))
		for _, target := range o.order {
			keep[target] = o.bindings[target].visible
		}
	}
	o.detach()
	o.container = container
	o.mounted = true
	// The mount position is the baseline for the first scroll delta.
	visible := container.VisibleRect()
	o.tracker.Reset()
	o.tracker.Update(Sample{ScrollTop: visible.Top, ScrollLeft: visible.Left, Timestamp: timing.Now()})
	o.throttle = timing.NewThrottle(throttle, o.handleSample)
	o.removeListener = container.AddScrollListener(o.throttle.Call)
	for _, target := range o.order {
		if keep != nil {
			o.bindings[target].visible = keep[target]
		}
		o.watch(target)
	}
}

// Mounted reports whether the observer is mounted.
func (o *Observer) Mounted() bool {
	return o.mounted
}

// Observe registers binding for target. Observing a target that is already
// registered replaces its binding and keeps the existing watcher
// subscription and last known visibility.
func (o *Observer) Observe(target Target, binding *Intersection) {
	if target == nil || binding == nil {
		return
	}
	if existing, ok := o.bindings[target]; ok {
		if existing != binding {
			binding.visible = existing.visible
			o.bindings[target] = binding
		}
		return
	}
	o.bindings[target] = binding
	o.order = append(o.order, target)
	if o.mounted {
		o.watch(target)
	}
}

// Unobserve removes the registration for target. Unknown targets are
// ignored.
func (o *Observer) Unobserve(target Target) {
	if _, ok := o.bindings[target]; !ok {
		return
	}
	delete(o.bindings, target)
	o.order = slices.DeleteFunc(o.order, func(t Target) bool { return t == target })
	if o.mounted {
		o.watcher.Unsubscribe(target)
	}
}

// Observing reports whether target has a registered binding.
func (o *Observer) Observing(target Target) bool {
	_, ok := o.bindings[target]
	return ok
}

// Len returns the number of registered targets.
func (o *Observer) Len() int {
	return len(o.bindings)
}

// UpdateDirection feeds sample to the direction tracker and returns the
// resulting direction, which is passed to every subsequent dispatch.
func (o *Observer) UpdateDirection(sample Sample) Direction {
	return o.tracker.Update(sample)
}

// Direction returns the most recently computed direction.
func (o *Observer) Direction() Direction {
	return o.tracker.Direction()
}

// Refresh asks an on-demand watcher to re-evaluate overlap without a new
// scroll sample. Hosts call it after layout changes such as appended
// content. It is a no-op when unmounted or for asynchronous watchers.
func (o *Observer) Refresh() {
	if !o.mounted {
		return
	}
	if ev, ok := o.watcher.(Evaluator); ok {
		ev.Evaluate()
	}
}

// Unmount stops sample delivery, cancels a pending trailing sample and
// releases every registration. It is safe to call more than once.
func (o *Observer) Unmount() {
	o.detach()
	clear(o.bindings)
	o.order = nil
}

// detach disconnects from the container and watcher but keeps bindings.
func (o *Observer) detach() {
	if !o.mounted {
		return
	}
	o.mounted = false
	if o.removeListener != nil {
		o.removeListener()
		o.removeListener = nil
	}
	if o.throttle != nil {
		o.throttle.Cancel()
		o.throttle = nil
	}
	for _, target := range o.order {
		o.watcher.Unsubscribe(target)
		o.bindings[target].visible = false
	}
	o.container = nil
}

func (o *Observer) handleSample(sample Sample) {
	if !o.mounted {
		return
	}
	o.UpdateDirection(sample)
	o.Refresh()
}

func (o *Observer) watch(target Target) {
	o.watcher.Subscribe(target, o.container, func(visible bool) {
		o.dispatch(target, visible)
	})
}

func (o *Observer) dispatch(target Target, visible bool) {
	if !o.mounted {
		return
	}
	binding, ok := o.bindings[target]
	if !ok {
		return
	}
	binding.report(visible, o.tracker.Direction())
}
