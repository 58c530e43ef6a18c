// Package trace loads recorded scroll container sessions.
//
// A trace is a YAML or TOML document describing one scroll container (its
// viewport, options, content extent and sticky sections) and a timestamped
// list of host inputs: scroll positions, touch samples, refreshing flag
// changes and content extent changes.
package trace

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/scrollkit/pkg/graphics"
	"github.com/go-drift/scrollkit/pkg/refresh"
	"github.com/go-drift/scrollkit/pkg/scrollview"
)

// FormatVersion is the trace format this build writes and reads. Traces
// with the same major version are accepted.
const FormatVersion = "v1.0.0"

// Trace is a decoded trace file.
type Trace struct {
	Format   string   `yaml:"format" toml:"format"`
	Name     string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Viewport Viewport `yaml:"viewport" toml:"viewport"`
	Options  Options  `yaml:"options" toml:"options"`
	Handlers Handlers `yaml:"handlers" toml:"handlers"`
	Extent   *float64 `yaml:"content_extent,omitempty" toml:"content_extent,omitempty"`
	Sticky   []Sticky `yaml:"sticky,omitempty" toml:"sticky,omitempty"`
	Events   []Event  `yaml:"events" toml:"events"`
}

// Viewport is the container's visible size.
type Viewport struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Size returns the viewport as a graphics.Size.
func (v Viewport) Size() graphics.Size {
	return graphics.Size{Width: v.Width, Height: v.Height}
}

// Options mirrors scrollview.Options with durations in milliseconds.
type Options struct {
	ThrottleMS          int64   `yaml:"throttle_ms" toml:"throttle_ms"`
	EndReachedThreshold float64 `yaml:"end_reached_threshold" toml:"end_reached_threshold"`
	Horizontal          bool    `yaml:"horizontal" toml:"horizontal"`
	Disabled            bool    `yaml:"disabled" toml:"disabled"`
	RefreshArmDistance  float64 `yaml:"refresh_arm_distance" toml:"refresh_arm_distance"`
	ScrollEndDelayMS    int64   `yaml:"scroll_end_delay_ms" toml:"scroll_end_delay_ms"`
}

// View converts the trace options to view options.
func (o Options) View() scrollview.Options {
	return scrollview.Options{
		Throttle:            time.Duration(o.ThrottleMS) * time.Millisecond,
		EndReachedThreshold: o.EndReachedThreshold,
		Horizontal:          o.Horizontal,
		Disabled:            o.Disabled,
		RefreshArmDistance:  o.RefreshArmDistance,
		ScrollEndDelay:      time.Duration(o.ScrollEndDelayMS) * time.Millisecond,
	}
}

// Handlers selects which optional callbacks the replayed view installs.
type Handlers struct {
	Refresh    bool `yaml:"refresh" toml:"refresh"`
	EndReached bool `yaml:"end_reached" toml:"end_reached"`
}

// Sticky is a sticky section between two guard hooks.
type Sticky struct {
	Name   string  `yaml:"name" toml:"name"`
	Top    float64 `yaml:"top" toml:"top"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
	Height float64 `yaml:"height" toml:"height"`
}

// Event is one host input. Exactly one of Scroll, Touch, Refreshing and
// Extent is set.
type Event struct {
	AtMS       int64    `yaml:"at_ms" toml:"at_ms"`
	Scroll     *Scroll  `yaml:"scroll,omitempty" toml:"scroll,omitempty"`
	Touch      *Touch   `yaml:"touch,omitempty" toml:"touch,omitempty"`
	Refreshing *bool    `yaml:"refreshing,omitempty" toml:"refreshing,omitempty"`
	Extent     *float64 `yaml:"extent,omitempty" toml:"extent,omitempty"`
}

// At returns the event time relative to the start of the trace.
func (e Event) At() time.Duration {
	return time.Duration(e.AtMS) * time.Millisecond
}

// Kind names the input the event carries.
func (e Event) Kind() string {
	switch {
	case e.Scroll != nil:
		return "scroll"
	case e.Touch != nil:
		return "touch"
	case e.Refreshing != nil:
		return "refreshing"
	case e.Extent != nil:
		return "extent"
	default:
		return ""
	}
}

// Scroll is a container position.
type Scroll struct {
	Top  float64 `yaml:"top" toml:"top"`
	Left float64 `yaml:"left" toml:"left"`
}

// Touch is a touch sample. Phase is "start", "move" or "end".
type Touch struct {
	Phase string  `yaml:"phase" toml:"phase"`
	Y     float64 `yaml:"y" toml:"y"`
}

// Sample converts t to a refresh.Touch.
func (t Touch) Sample() (refresh.Touch, error) {
	var phase refresh.TouchPhase
	switch strings.ToLower(strings.TrimSpace(t.Phase)) {
	case "start":
		phase = refresh.TouchStart
	case "move":
		phase = refresh.TouchMove
	case "end", "cancel":
		phase = refresh.TouchEnd
	default:
		return refresh.Touch{}, fmt.Errorf("unknown touch phase %q", t.Phase)
	}
	return refresh.Touch{Phase: phase, ClientY: t.Y}, nil
}

// ErrUnsupportedFormat is returned for traces whose format major version
// does not match FormatVersion.
var ErrUnsupportedFormat = errors.New("unsupported trace format")

// Load reads and validates the trace at path. The decoder is chosen by
// extension: .toml uses TOML, anything else YAML.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}
	var tr *Trace
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		tr, err = ParseTOML(data)
	} else {
		tr, err = ParseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return tr, nil
}

// ParseYAML decodes and validates a YAML trace.
func ParseYAML(data []byte) (*Trace, error) {
	var tr Trace
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tr); err != nil {
		return nil, fmt.Errorf("failed to parse trace: %w", err)
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return &tr, nil
}

// ParseTOML decodes and validates a TOML trace.
func ParseTOML(data []byte) (*Trace, error) {
	var tr Trace
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tr); err != nil {
		return nil, fmt.Errorf("failed to parse trace: %w", err)
	}
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Validate checks the format version, viewport, sticky sections and event
// ordering.
func (t *Trace) Validate() error {
	format := strings.TrimSpace(t.Format)
	if format == "" {
		return fmt.Errorf("%w: missing format version", ErrUnsupportedFormat)
	}
	if !strings.HasPrefix(format, "v") {
		format = "v" + format
	}
	if !semver.IsValid(format) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedFormat, t.Format)
	}
	if semver.Major(format) != semver.Major(FormatVersion) {
		return fmt.Errorf("%w: %s, this build reads %s.x", ErrUnsupportedFormat, format, semver.Major(FormatVersion))
	}
	t.Format = format

	if t.Viewport.Width <= 0 || t.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must have a positive size, got %vx%v", t.Viewport.Width, t.Viewport.Height)
	}
	if t.Options.ThrottleMS < 0 || t.Options.ScrollEndDelayMS < 0 {
		return fmt.Errorf("options: durations must not be negative")
	}
	for i, s := range t.Sticky {
		if s.Bottom < s.Top {
			return fmt.Errorf("sticky[%d] %q: bottom %v is above top %v", i, s.Name, s.Bottom, s.Top)
		}
	}

	var last int64
	for i, e := range t.Events {
		set := 0
		for _, ok := range []bool{e.Scroll != nil, e.Touch != nil, e.Refreshing != nil, e.Extent != nil} {
			if ok {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("events[%d]: want exactly one of scroll, touch, refreshing, extent; got %d", i, set)
		}
		if e.AtMS < last {
			return fmt.Errorf("events[%d]: at_ms %d is before the previous event at %d", i, e.AtMS, last)
		}
		last = e.AtMS
		if e.Touch != nil {
			if _, err := e.Touch.Sample(); err != nil {
				return fmt.Errorf("events[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// Duration returns the time of the last event.
func (t *Trace) Duration() time.Duration {
	if len(t.Events) == 0 {
		return 0
	}
	return t.Events[len(t.Events)-1].At()
}
