package ui

import (
	"image"
	"testing"

	"github.com/ingyamilmolinar/popwrap/core/layout"
)

func TestSheetViewHitTesting(t *testing.T) {
	v := NewSheetView(image.Rect(0, 0, 400, 300), layout.Dimensions{Rows: 3, Cols: 4}, 50, 10)
	if v.Size != 50 {
		t.Fatalf("size = %v, want 50", v.Size)
	}
	for i := 0; i < 12; i++ {
		x, y := v.Center(i)
		got, ok := v.BubbleAt(x, y)
		if !ok || got != i {
			t.Fatalf("center of %d resolved to %d,%t", i, got, ok)
		}
	}
	x0, y0 := v.Center(0)
	if _, ok := v.BubbleAt(x0+v.Size/2+v.Gap/2, y0); ok {
		t.Fatalf("gap between bubbles should miss")
	}
	// corner of the bounding square lies outside the circle
	r := v.Rect(0)
	if _, ok := v.BubbleAt(float64(r.Min.X)+1, float64(r.Min.Y)+1); ok {
		t.Fatalf("square corner should miss the round bubble")
	}
	if _, ok := v.BubbleAt(-5, -5); ok {
		t.Fatalf("outside the sheet should miss")
	}
}

func TestSheetViewShrinksAndCenters(t *testing.T) {
	area := image.Rect(10, 20, 210, 120)
	v := NewSheetView(area, layout.Dimensions{Rows: 4, Cols: 10}, 64, 4)
	b := v.Bounds()
	if !b.In(area) {
		t.Fatalf("bounds %v escape area %v", b, area)
	}
	left, right := b.Min.X-area.Min.X, area.Max.X-b.Max.X
	if d := left - right; d < -1 || d > 1 {
		t.Fatalf("sheet not centred: left %d right %d", left, right)
	}
}

func TestSheetViewEmpty(t *testing.T) {
	v := NewSheetView(image.Rect(0, 0, 100, 100), layout.Dimensions{}, 50, 4)
	if _, ok := v.BubbleAt(10, 10); ok {
		t.Fatalf("empty view should never hit")
	}
	if !v.Bounds().Empty() {
		t.Fatalf("empty view has bounds %v", v.Bounds())
	}
}
