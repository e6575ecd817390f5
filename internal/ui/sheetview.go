package ui

import (
	"image"
	"math"

	"github.com/ingyamilmolinar/popwrap/core/layout"
)

const minBubblePx = 8

// SheetView places a rows x cols sheet inside a screen rectangle and
// resolves screen positions back to bubble indices.
type SheetView struct {
	Area   image.Rectangle
	Dims   layout.Dimensions
	Size   float64 // bubble diameter in px
	Gap    float64
	Origin [2]float64 // top-left of bubble 0
}

// NewSheetView fits dims into area. preferred is the bubble size the
// layout calculator estimated; it shrinks when the grid would overflow.
func NewSheetView(area image.Rectangle, dims layout.Dimensions, preferred, gap float64) *SheetView {
	v := &SheetView{Area: area, Dims: dims, Gap: gap}
	if dims.Rows <= 0 || dims.Cols <= 0 {
		return v
	}
	fitW := (float64(area.Dx()) - gap*float64(dims.Cols-1)) / float64(dims.Cols)
	fitH := (float64(area.Dy()) - gap*float64(dims.Rows-1)) / float64(dims.Rows)
	v.Size = math.Max(minBubblePx, math.Floor(math.Min(preferred, math.Min(fitW, fitH))))

	w := v.Size*float64(dims.Cols) + gap*float64(dims.Cols-1)
	h := v.Size*float64(dims.Rows) + gap*float64(dims.Rows-1)
	v.Origin[0] = math.Round(float64(area.Min.X) + (float64(area.Dx())-w)/2)
	v.Origin[1] = math.Round(float64(area.Min.Y) + math.Max(0, (float64(area.Dy())-h)/2))
	return v
}

func (v *SheetView) pitch() float64 { return v.Size + v.Gap }

// Center returns the screen position of bubble i's center.
func (v *SheetView) Center(i int) (x, y float64) {
	row, col := i/v.Dims.Cols, i%v.Dims.Cols
	x = v.Origin[0] + float64(col)*v.pitch() + v.Size/2
	y = v.Origin[1] + float64(row)*v.pitch() + v.Size/2
	return x, y
}

// Rect is the bounding square of bubble i.
func (v *SheetView) Rect(i int) image.Rectangle {
	cx, cy := v.Center(i)
	r := v.Size / 2
	return image.Rect(int(math.Floor(cx-r)), int(math.Floor(cy-r)), int(math.Ceil(cx+r)), int(math.Ceil(cy+r)))
}

// Bounds covers every bubble of the sheet.
func (v *SheetView) Bounds() image.Rectangle {
	if v.Dims.Rows <= 0 || v.Dims.Cols <= 0 {
		return image.Rectangle{}
	}
	return v.Rect(0).Union(v.Rect(v.Dims.Rows*v.Dims.Cols - 1))
}

// BubbleAt resolves a screen position to the bubble under it. Positions in
// the gaps between bubbles, or outside the circle of a bubble, miss.
func (v *SheetView) BubbleAt(x, y float64) (int, bool) {
	if v.Dims.Rows <= 0 || v.Dims.Cols <= 0 || v.Size <= 0 {
		return 0, false
	}
	lx, ly := x-v.Origin[0], y-v.Origin[1]
	if lx < 0 || ly < 0 {
		return 0, false
	}
	col := int(lx / v.pitch())
	row := int(ly / v.pitch())
	if col >= v.Dims.Cols || row >= v.Dims.Rows {
		return 0, false
	}
	i := row*v.Dims.Cols + col
	cx, cy := v.Center(i)
	r := v.Size / 2
	if (x-cx)*(x-cx)+(y-cy)*(y-cy) > r*r {
		return 0, false
	}
	return i, true
}
