// Package chart renders a replay timeline to a PNG.
//
// The chart has one lane for the scroll offset, one for the pull height
// (shaded while the refreshing display is pinned) and one per sticky
// section showing its position.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/scrollkit/cmd/scrollreplay/internal/replay"
	"github.com/go-drift/scrollkit/pkg/refresh"
	"github.com/go-drift/scrollkit/pkg/sticky"
)

// Config controls chart layout.
type Config struct {
	Width      int
	LaneHeight int
	Background color.Color
	Foreground color.Color
	Labels     []string // sticky lane labels; missing labels are numbered
}

// DefaultConfig returns a chart layout suitable for terminals and docs.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		LaneHeight: 60,
		Background: color.White,
		Foreground: color.Black,
	}
}

const (
	labelWidth = 90
	lanePad    = 6
)

var (
	scrollColor = color.RGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}
	pullColor   = color.RGBA{R: 0xfb, G: 0x8c, B: 0x00, A: 0xff}
	armedColor  = color.RGBA{R: 0xff, G: 0xe0, B: 0xb2, A: 0xff}
	gridColor   = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}

	positionColors = map[sticky.Position]color.RGBA{
		sticky.PositionTop:    {R: 0xc8, G: 0xe6, B: 0xc9, A: 0xff},
		sticky.PositionFixed:  {R: 0x43, G: 0xa0, B: 0x47, A: 0xff},
		sticky.PositionBottom: {R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
	}
)

// Render draws frames into a new image.
func Render(frames []replay.Frame, cfg Config) (*image.RGBA, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("chart: no frames to render")
	}
	if cfg.Width <= labelWidth || cfg.LaneHeight <= 2*lanePad {
		return nil, fmt.Errorf("chart: %dx%d lanes are too small", cfg.Width, cfg.LaneHeight)
	}
	stickyLanes := len(frames[0].Sticky)
	lanes := 2 + stickyLanes
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, lanes*cfg.LaneHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	end := frames[len(frames)-1].At
	if end <= 0 {
		end = time.Millisecond
	}
	plotWidth := cfg.Width - labelWidth
	xAt := func(at time.Duration) int {
		return labelWidth + int(float64(plotWidth-1)*float64(at)/float64(end))
	}

	var maxTop, maxPull float64
	for _, f := range frames {
		maxTop = max(maxTop, f.ScrollTop)
		maxPull = max(maxPull, f.PullHeight)
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(cfg.Foreground),
		Face: basicfont.Face7x13,
	}
	label := func(lane int, text string) {
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(4),
			Y: fixed.I(lane*cfg.LaneHeight + cfg.LaneHeight/2 + 4),
		}
		drawer.DrawString(text)
	}

	for lane := 0; lane < lanes; lane++ {
		hline(img, labelWidth, cfg.Width, (lane+1)*cfg.LaneHeight-1, gridColor)
	}

	label(0, fmt.Sprintf("scroll %.0f", maxTop))
	label(1, fmt.Sprintf("pull %.0f", maxPull))
	for i := 0; i < stickyLanes; i++ {
		name := fmt.Sprintf("sticky %d", i)
		if i < len(cfg.Labels) && cfg.Labels[i] != "" {
			name = cfg.Labels[i]
		}
		label(2+i, name)
	}

	for i, f := range frames {
		x0 := xAt(f.At)
		x1 := cfg.Width
		if i+1 < len(frames) {
			x1 = max(xAt(frames[i+1].At), x0+1)
		}

		plotBar(img, x0, x1, 0, cfg.LaneHeight, f.ScrollTop, maxTop, scrollColor)

		if f.PullPhase == refresh.PhaseArmed {
			fillRect(img, image.Rect(x0, cfg.LaneHeight+lanePad, x1, 2*cfg.LaneHeight-lanePad), armedColor)
		}
		plotBar(img, x0, x1, 1, cfg.LaneHeight, f.PullHeight, maxPull, pullColor)

		for s, pos := range f.Sticky {
			if s >= stickyLanes {
				break
			}
			top := (2+s)*cfg.LaneHeight + lanePad
			fillRect(img, image.Rect(x0, top, x1, top+cfg.LaneHeight-2*lanePad), positionColors[pos])
		}
	}
	return img, nil
}

// Encode renders frames and writes the PNG to w.
func Encode(w io.Writer, frames []replay.Frame, cfg Config) error {
	img, err := Render(frames, cfg)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// plotBar fills the part of lane proportional to value/maxValue, anchored
// at the bottom of the lane.
func plotBar(img *image.RGBA, x0, x1, lane, laneHeight int, value, maxValue float64, c color.Color) {
	if maxValue <= 0 || value <= 0 {
		return
	}
	usable := laneHeight - 2*lanePad
	h := int(float64(usable) * value / maxValue)
	bottom := (lane+1)*laneHeight - lanePad
	fillRect(img, image.Rect(x0, bottom-h, x1, bottom), c)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

func hline(img *image.RGBA, x0, x1, y int, c color.Color) {
	for x := x0; x < x1; x++ {
		img.Set(x, y, c)
	}
}
