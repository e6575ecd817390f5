package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// Ebiten's debug font uses a 6x13 glyph.
	debugCharW = 6
	debugCharH = 13
	buttonPad  = 8
)

// ButtonVisual is implemented by styles capable of drawing a button.
type ButtonVisual interface {
	Draw(dst *ebiten.Image, r image.Rectangle, pressed, hovered bool)
}

// ButtonStyle describes rectangular button visuals.
type ButtonStyle struct {
	Fill   color.Color
	Border color.Color
}

func (s ButtonStyle) Draw(dst *ebiten.Image, r image.Rectangle, pressed, hovered bool) {
	border := s.Border
	if hovered && !pressed {
		border = colFocus
	}
	drawButton(dst, r, s.Fill, border, pressed)
}

// Button is a clickable rectangle with a text label. OnClick fires once
// per press, on the frame the press lands inside the button.
type Button struct {
	r       image.Rectangle
	Text    string
	Style   ButtonVisual
	OnClick func()
	pressed bool
	hovered bool
	held    int
}

func NewButton(text string, style ButtonVisual, onClick func()) *Button {
	return &Button{Text: text, Style: style, OnClick: onClick}
}

func (b *Button) Rect() image.Rectangle { return b.r }

func (b *Button) SetRect(r image.Rectangle) { b.r = r }

// Width is the natural width of the button for its label.
func (b *Button) Width() int {
	w, _ := measure(b.Text, labelSize)
	return int(w) + 2*buttonPad
}

func (b *Button) Draw(dst *ebiten.Image) {
	if b.Style != nil {
		b.Style.Draw(dst, b.r, b.pressed, b.hovered)
	}
	w, h := measure(b.Text, labelSize)
	x := float64(b.r.Min.X) + (float64(b.r.Dx())-w)/2
	y := float64(b.r.Min.Y) + (float64(b.r.Dy())-h)/2
	drawText(dst, b.Text, x, y, labelSize, colToolbarTxt)
}

// Handle processes the pointer at (mx,my). It reports whether the button
// captured the pointer.
func (b *Button) Handle(mx, my int, pressed bool) bool {
	inside := image.Pt(mx, my).In(b.r)
	b.hovered = inside
	if pressed && (inside || b.held > 0) {
		b.held++
		if b.held == 1 && b.OnClick != nil {
			b.OnClick()
		}
		b.pressed = inside
		return true
	}
	b.pressed = false
	b.held = 0
	return false
}
