package graphics

import "testing"

func TestRect_Intersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	b := RectFromLTWH(50, 50, 100, 100)

	got := a.Intersect(b)
	want := Rect{Left: 50, Top: 50, Right: 100, Bottom: 100}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}

	if !a.Intersect(RectFromLTWH(200, 200, 10, 10)).IsEmpty() {
		t.Error("disjoint rects should intersect to empty")
	}
}

func TestRect_Overlaps(t *testing.T) {
	viewport := RectFromLTWH(0, 100, 320, 600)

	tests := []struct {
		name   string
		target Rect
		want   bool
	}{
		{"fully inside", RectFromLTWH(0, 200, 320, 50), true},
		{"partially above", RectFromLTWH(0, 50, 320, 100), true},
		{"fully above", RectFromLTWH(0, 0, 320, 50), false},
		{"fully below", RectFromLTWH(0, 800, 320, 50), false},
		{"zero height inside", RectFromLTWH(0, 400, 320, 0), true},
		{"zero height on bottom edge", RectFromLTWH(0, 700, 320, 0), true},
		{"zero height on top edge", RectFromLTWH(0, 100, 320, 0), true},
		{"zero height just below", RectFromLTWH(0, 701, 320, 0), false},
		{"inverted", Rect{Left: 0, Top: 300, Right: 320, Bottom: 200}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.Overlaps(viewport); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := viewport.Overlaps(tt.target); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40).Translate(5, -20)
	if r.TopLeft() != (Offset{X: 15, Y: 0}) {
		t.Errorf("TopLeft = %+v", r.TopLeft())
	}
	if r.Size() != (Size{Width: 30, Height: 40}) {
		t.Errorf("Size = %+v", r.Size())
	}
}
