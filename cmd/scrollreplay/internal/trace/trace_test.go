package trace

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/scrollkit/pkg/refresh"
)

func TestLoad_YAMLAndTOMLAgree(t *testing.T) {
	fromYAML, err := Load("testdata/feed.yaml")
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	fromTOML, err := Load("testdata/feed.toml")
	if err != nil {
		t.Fatalf("Load toml: %v", err)
	}

	for _, tr := range []*Trace{fromYAML, fromTOML} {
		if tr.Format != "v1.0.0" {
			t.Errorf("format = %q, want v1.0.0", tr.Format)
		}
		if tr.Viewport.Size().Height != 600 {
			t.Errorf("viewport = %+v", tr.Viewport)
		}
		if tr.Extent == nil || *tr.Extent != 2000 {
			t.Errorf("content extent = %v, want 2000", tr.Extent)
		}
		if len(tr.Sticky) != 1 || tr.Sticky[0].Bottom != 1100 {
			t.Errorf("sticky = %+v", tr.Sticky)
		}
		if tr.Duration() != 900*time.Millisecond {
			t.Errorf("duration = %v, want 900ms", tr.Duration())
		}
	}
	if len(fromYAML.Events) != len(fromTOML.Events) {
		t.Fatalf("event counts differ: yaml=%d toml=%d", len(fromYAML.Events), len(fromTOML.Events))
	}
	for i := range fromYAML.Events {
		if a, b := fromYAML.Events[i].Kind(), fromTOML.Events[i].Kind(); a != b {
			t.Errorf("events[%d] kind: yaml=%s toml=%s", i, a, b)
		}
	}
}

func TestOptions_View(t *testing.T) {
	opts := Options{ThrottleMS: 16, ScrollEndDelayMS: 250, EndReachedThreshold: 40, Horizontal: true}.View()
	if opts.Throttle != 16*time.Millisecond || opts.ScrollEndDelay != 250*time.Millisecond {
		t.Errorf("durations = %v/%v", opts.Throttle, opts.ScrollEndDelay)
	}
	if opts.EndReachedThreshold != 40 || !opts.Horizontal {
		t.Errorf("options = %+v", opts)
	}
}

func TestTouch_Sample(t *testing.T) {
	tests := []struct {
		phase string
		want  refresh.TouchPhase
	}{
		{"start", refresh.TouchStart},
		{"Move", refresh.TouchMove},
		{"end", refresh.TouchEnd},
		{"cancel", refresh.TouchEnd},
	}
	for _, tt := range tests {
		got, err := Touch{Phase: tt.phase, Y: 3}.Sample()
		if err != nil {
			t.Errorf("%s: %v", tt.phase, err)
			continue
		}
		if got.Phase != tt.want || got.ClientY != 3 {
			t.Errorf("%s: got %+v", tt.phase, got)
		}
	}
	if _, err := (Touch{Phase: "hover"}).Sample(); err == nil {
		t.Error("expected error for unknown phase")
	}
}

func TestParseYAML_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing format",
			doc:     "viewport: {width: 1, height: 1}\n",
			wantErr: "missing format",
		},
		{
			name:    "future major",
			doc:     "format: v2.0.0\nviewport: {width: 1, height: 1}\n",
			wantErr: "unsupported trace format",
		},
		{
			name:    "not semver",
			doc:     "format: latest\nviewport: {width: 1, height: 1}\n",
			wantErr: "not a semantic version",
		},
		{
			name:    "empty viewport",
			doc:     "format: v1.2.0\n",
			wantErr: "viewport",
		},
		{
			name:    "unknown field",
			doc:     "format: v1.0.0\nviewport: {width: 1, height: 1}\nspeed: 3\n",
			wantErr: "failed to parse",
		},
		{
			name: "two inputs in one event",
			doc: `format: v1.0.0
viewport: {width: 1, height: 1}
events:
  - at_ms: 0
    scroll: {top: 1}
    extent: 10
`,
			wantErr: "exactly one",
		},
		{
			name: "out of order",
			doc: `format: v1.0.0
viewport: {width: 1, height: 1}
events:
  - at_ms: 20
    scroll: {top: 1}
  - at_ms: 10
    scroll: {top: 2}
`,
			wantErr: "before the previous event",
		},
		{
			name: "bad touch phase",
			doc: `format: v1.0.0
viewport: {width: 1, height: 1}
events:
  - at_ms: 0
    touch: {phase: hover, y: 1}
`,
			wantErr: "unknown touch phase",
		},
		{
			name: "inverted sticky",
			doc: `format: v1.0.0
viewport: {width: 1, height: 1}
sticky:
  - {name: a, top: 10, bottom: 5}
`,
			wantErr: "above top",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.doc))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_FormatErrorsWrapSentinel(t *testing.T) {
	_, err := ParseTOML([]byte("format = \"v3.1.0\"\n[viewport]\nwidth = 1.0\nheight = 1.0\n"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}
