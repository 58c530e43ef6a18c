package chart

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/go-drift/scrollkit/cmd/scrollreplay/internal/replay"
	"github.com/go-drift/scrollkit/pkg/refresh"
	"github.com/go-drift/scrollkit/pkg/sticky"
)

func sampleFrames() []replay.Frame {
	return []replay.Frame{
		{At: 0, Sticky: []sticky.Position{sticky.PositionTop}},
		{At: 100 * time.Millisecond, PullHeight: 80, PullPhase: refresh.PhasePulling, Sticky: []sticky.Position{sticky.PositionTop}},
		{At: 200 * time.Millisecond, PullHeight: 64, PullPhase: refresh.PhaseArmed, Sticky: []sticky.Position{sticky.PositionTop}},
		{At: 500 * time.Millisecond, ScrollTop: 400, Sticky: []sticky.Position{sticky.PositionFixed}},
		{At: time.Second, ScrollTop: 1400, Sticky: []sticky.Position{sticky.PositionBottom}},
	}
}

func TestRender_Layout(t *testing.T) {
	cfg := DefaultConfig()
	img, err := Render(sampleFrames(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != cfg.Width || b.Dy() != 3*cfg.LaneHeight {
		t.Errorf("size = %v, want %dx%d", b.Size(), cfg.Width, 3*cfg.LaneHeight)
	}

	// The last frame runs to the right edge; its sticky lane is bottom-colored.
	y := 2*cfg.LaneHeight + cfg.LaneHeight/2
	if got := img.RGBAAt(cfg.Width-1, y); got != positionColors[sticky.PositionBottom] {
		t.Errorf("sticky lane color = %v, want bottom", got)
	}
	// The scroll lane is full height at the maximum offset.
	if got := img.RGBAAt(cfg.Width-1, cfg.LaneHeight-lanePad-1); got != scrollColor {
		t.Errorf("scroll lane color = %v, want scroll color", got)
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render(nil, DefaultConfig()); err == nil {
		t.Error("expected error for no frames")
	}
	if _, err := Render(sampleFrames(), Config{Width: 10, LaneHeight: 60}); err == nil {
		t.Error("expected error for a chart narrower than the labels")
	}
}

func TestEncode_WritesPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sampleFrames(), DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Errorf("output is not a PNG: %v", err)
	}
}
