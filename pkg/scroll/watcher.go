package scroll

import (
	"slices"

	"github.com/go-drift/scrollkit/pkg/graphics"
)

// Viewport reports the currently visible region of a scroll container in
// content coordinates.
type Viewport interface {
	VisibleRect() graphics.Rect
}

// GeometryWatcher is the host's overlap-observation capability.
//
// Subscribe starts reporting whether target overlaps viewport; callback may
// be called with the same state more than once. Subscribing a target that
// is already subscribed replaces its viewport and callback. Unsubscribe
// stops reports and is a no-op for unknown targets.
type GeometryWatcher interface {
	Subscribe(target Target, viewport Viewport, callback func(visible bool))
	Unsubscribe(target Target)
}

// Evaluator is implemented by watchers that compute overlap on demand
// rather than on their own schedule. The observer calls Evaluate after each
// dispatched scroll sample.
type Evaluator interface {
	Evaluate()
}

// Bounded is implemented by targets that know their layout bounds in
// content coordinates.
type Bounded interface {
	Bounds() graphics.Rect
}

type rectSubscription struct {
	viewport Viewport
	callback func(bool)
	known    bool
	visible  bool
}

// RectWatcher is a GeometryWatcher that compares a target's Bounds against
// the viewport's visible rect whenever Evaluate is called. Edges count as
// overlapping so zero-height sentinels are detected. Targets that do not
// implement Bounded are never visible.
//
// Reports are issued only on change, plus one initial report per
// subscription. Subscriptions are evaluated in subscription order.
type RectWatcher struct {
	subs  map[Target]*rectSubscription
	order []Target
}

// NewRectWatcher creates an empty RectWatcher.
func NewRectWatcher() *RectWatcher {
	return &RectWatcher{subs: make(map[Target]*rectSubscription)}
}

// Subscribe implements GeometryWatcher.
func (w *RectWatcher) Subscribe(target Target, viewport Viewport, callback func(visible bool)) {
	if sub, ok := w.subs[target]; ok {
		sub.viewport = viewport
		sub.callback = callback
		return
	}
	w.subs[target] = &rectSubscription{viewport: viewport, callback: callback}
	w.order = append(w.order, target)
}

// Unsubscribe implements GeometryWatcher.
func (w *RectWatcher) Unsubscribe(target Target) {
	if _, ok := w.subs[target]; !ok {
		return
	}
	delete(w.subs, target)
	w.order = slices.DeleteFunc(w.order, func(t Target) bool { return t == target })
}

// Len returns the number of subscribed targets.
func (w *RectWatcher) Len() int {
	return len(w.subs)
}

// Evaluate recomputes overlap for every subscription and reports changes.
func (w *RectWatcher) Evaluate() {
	targets := slices.Clone(w.order)
	for _, target := range targets {
		sub, ok := w.subs[target]
		if !ok {
			// Unsubscribed by an earlier callback.
			continue
		}
		visible := false
		if b, ok := target.(Bounded); ok && sub.viewport != nil {
			visible = b.Bounds().Overlaps(sub.viewport.VisibleRect())
		}
		if sub.known && sub.visible == visible {
			continue
		}
		sub.known = true
		sub.visible = visible
		if sub.callback != nil {
			sub.callback(visible)
		}
	}
}
