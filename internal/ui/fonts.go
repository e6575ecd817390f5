package ui

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	labelSize = 15
	titleSize = 22
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource
	fontErr    error
)

// face returns the Go regular face at size, or nil if the embedded font
// failed to parse.
func face(size float64) text.Face {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	})
	if fontErr != nil {
		return nil
	}
	return &text.GoTextFace{Source: fontSource, Size: size}
}

// measure returns the advance width and line height of s.
func measure(s string, size float64) (w, h float64) {
	f := face(size)
	if f == nil {
		return float64(len(s) * debugCharW), debugCharH
	}
	return text.Measure(s, f, 0)
}

// drawText draws s with its top-left corner at (x,y).
func drawText(dst *ebiten.Image, s string, x, y, size float64, c color.Color) {
	f := face(size)
	if f == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, f, op)
}
