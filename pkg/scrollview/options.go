package scrollview

import (
	"time"

	"github.com/go-drift/scrollkit/pkg/errors"
	"github.com/go-drift/scrollkit/pkg/refresh"
)

// DefaultScrollEndDelay is how long after the last scroll sample the
// scroll is considered finished.
const DefaultScrollEndDelay = 100 * time.Millisecond

// Options configures a View.
type Options struct {
	// Throttle limits scroll sample dispatch to one per interval.
	// Zero disables throttling.
	Throttle time.Duration
	// EndReachedThreshold places the end-reached sentinel this far before
	// the end of the content.
	EndReachedThreshold float64
	// Horizontal marks the container as scrolling horizontally. End-reached
	// and pull-to-refresh are not supported horizontally and are disabled.
	Horizontal bool
	// Disabled locks native scrolling.
	Disabled bool
	// RefreshArmDistance is the pull height at which the default indicator
	// arms. Zero selects refresh.DefaultArmDistance.
	RefreshArmDistance float64
	// ScrollEndDelay is the quiet period before OnScrollEnd fires.
	// Zero selects DefaultScrollEndDelay.
	ScrollEndDelay time.Duration
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		RefreshArmDistance: refresh.DefaultArmDistance,
		ScrollEndDelay:     DefaultScrollEndDelay,
	}
}

// withDefaults fills zero values with their defaults.
func (o Options) withDefaults() Options {
	if o.Throttle < 0 {
		o.Throttle = 0
	}
	if o.RefreshArmDistance <= 0 {
		o.RefreshArmDistance = refresh.DefaultArmDistance
	}
	if o.ScrollEndDelay <= 0 {
		o.ScrollEndDelay = DefaultScrollEndDelay
	}
	return o
}

// Resolve fills defaults and returns the advisories for the configured
// callbacks.
func (o Options) Resolve(hasRefresh, hasEndReached bool) (Options, []*errors.ConfigConflictError) {
	return o.withDefaults(), o.Conflicts(hasRefresh, hasEndReached)
}

// Conflicts returns advisories for features these options disable given
// which callbacks are configured. The caller decides whether to report
// them.
func (o Options) Conflicts(hasRefresh, hasEndReached bool) []*errors.ConfigConflictError {
	if !o.Horizontal {
		return nil
	}
	var out []*errors.ConfigConflictError
	if hasRefresh {
		out = append(out, &errors.ConfigConflictError{Feature: "OnRefresh", Reason: "horizontal orientation"})
	}
	if hasEndReached {
		out = append(out, &errors.ConfigConflictError{Feature: "OnEndReached", Reason: "horizontal orientation"})
	}
	return out
}
