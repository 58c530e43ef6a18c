// Package testing provides deterministic test helpers for the scroll
// primitives.
//
// # Quick Start
//
// Create a tester, mount something against its container, drive scroll
// positions and time, and make assertions:
//
//	func TestFooter(t *testing.T) {
//	    tester := drifttest.NewTesterWithT(t, graphics.Size{Width: 320, Height: 600})
//	    observer := scroll.NewObserver(nil)
//	    observer.Mount(tester.Container(), 0)
//
//	    footer := drifttest.NewBox(0, 1200, 320, 0)
//	    observer.Observe(footer, &scroll.Intersection{OnEnter: onEnter})
//
//	    tester.ScrollTo(700)
//	}
//
// # Time
//
// The tester installs a [FakeClock] into the timing package. Advancing it
// steps every due throttle and debounce timer:
//
//	tester.Advance(100 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/scrollkit/pkg/testing"
package testing
