package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawRect draws a rectangle. It is defined as a variable so tests can
// override it to capture draw calls.
var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	} else {
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
	}
}

// drawButton fills r and outlines it. Pressed buttons are drawn at half
// brightness. It can be overridden in tests.
var drawButton = func(dst *ebiten.Image, r image.Rectangle, fill, border color.Color, pressed bool) {
	if pressed {
		fill = shade(fill, 0.5)
	}
	x, y, w, h := float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(dst, x, y, w, h, fill, false)
	vector.StrokeRect(dst, x, y, w, h, 1, border, false)
}

// shade scales the colour channels of c by f, keeping alpha.
func shade(c color.Color, f float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.NRGBA{uint8(float64(n.R) * f), uint8(float64(n.G) * f), uint8(float64(n.B) * f), n.A}
}

// drawBubble renders one bubble centred on (cx,cy). Popped bubbles are
// flattened: darker, smaller and creased.
var drawBubble = func(dst *ebiten.Image, cx, cy, size float64, popped bool) {
	x, y, r := float32(cx), float32(cy), float32(size/2)
	if popped {
		vector.DrawFilledCircle(dst, x, y, r*0.9, colPopped, true)
		vector.StrokeLine(dst, x-r*0.45, y-r*0.2, x+r*0.45, y+r*0.2, 2, colPoppedCrease, true)
		vector.StrokeLine(dst, x-r*0.2, y+r*0.4, x+r*0.25, y-r*0.35, 1.5, colPoppedCrease, true)
		return
	}
	vector.DrawFilledCircle(dst, x, y, r, colBubble, true)
	vector.StrokeCircle(dst, x, y, r, 1.5, colBubbleEdge, true)
	vector.DrawFilledCircle(dst, x-r*0.35, y-r*0.35, r*0.22, colBubbleShine, true)
}

func drawFocusRing(dst *ebiten.Image, cx, cy, size float64) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(size/2+3), 3, colFocus, true)
}
