// Package scroll provides direction-aware visibility tracking for a
// scrolling container.
//
// An [Observer] is mounted against one [Container]. It receives the
// container's scroll samples through a leading-edge throttle, infers the
// scroll [Direction] with a [DirectionTracker], and asks a
// [GeometryWatcher] whether each registered [Target] overlaps the visible
// region. Visibility transitions are dispatched to the target's
// [Intersection] binding together with the current direction:
//
//	controller := scroll.NewController(graphics.Size{Width: 320, Height: 640})
//	observer := scroll.NewObserver(nil) // nil selects a RectWatcher
//	observer.Mount(controller, 16*time.Millisecond)
//	defer observer.Unmount()
//
//	observer.Observe(footer, &scroll.Intersection{
//	    OnEnter: func(dir scroll.Direction) { loadMore() },
//	})
//
// The host supplies the overlap primitive. [RectWatcher] is an in-process
// implementation for targets that know their layout bounds; hosts with a
// native overlap API implement GeometryWatcher directly and may report
// asynchronously.
//
// Everything in this package runs on the host's single event thread.
package scroll
