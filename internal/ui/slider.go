package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Slider is a horizontal 0..1 control. OnChange fires whenever a drag
// moves the value.
type Slider struct {
	r        image.Rectangle
	Label    string
	Value    float64
	OnChange func(float64)
	dragging bool
}

func NewSlider(label string, v float64, onChange func(float64)) *Slider {
	return &Slider{Label: label, Value: v, OnChange: onChange}
}

func (s *Slider) SetRect(r image.Rectangle) { s.r = r }

func (s *Slider) Rect() image.Rectangle { return s.r }

// Handle processes pointer interaction and reports whether the slider
// captured the pointer.
func (s *Slider) Handle(mx, my int, pressed bool) bool {
	if pressed {
		if s.dragging || image.Pt(mx, my).In(s.r) {
			s.dragging = true
			s.setFromX(mx)
			return true
		}
	} else if s.dragging {
		s.dragging = false
		return true
	}
	return false
}

func (s *Slider) setFromX(mx int) {
	w := s.r.Dx() - 1
	v := 0.0
	if w > 0 {
		v = max(0, min(float64(mx-s.r.Min.X), float64(w))) / float64(w)
	}
	if v == s.Value {
		return
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

func (s *Slider) Draw(dst *ebiten.Image) {
	trackY := s.r.Min.Y + s.r.Dy()/2 - 2
	drawRect(dst, image.Rect(s.r.Min.X, trackY, s.r.Max.X, trackY+4), colSliderTrack, true)

	knobX := s.r.Min.X + int(s.Value*float64(s.r.Dx()-1))
	drawRect(dst, image.Rect(knobX-3, s.r.Min.Y+4, knobX+3, s.r.Max.Y-4), colSliderKnob, true)

	txt := fmt.Sprintf("%s %d%%", s.Label, int(s.Value*100+0.5))
	_, h := measure(txt, labelSize)
	drawText(dst, txt, float64(s.r.Max.X+buttonPad), float64(s.r.Min.Y)+(float64(s.r.Dy())-h)/2, labelSize, colToolbarTxt)
}
