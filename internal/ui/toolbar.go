package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

const volumeSliderW = 90

// Toolbar is the strip above the sheet: new-sheet button, sound toggle,
// volume slider and the popped counter.
type Toolbar struct {
	Bounds   image.Rectangle
	newSheet *Button
	sound    *Button
	volume   *Slider
	status   string

	// captured is the control that received the current press.
	captured control
	wasDown  bool
}

type control interface {
	Rect() image.Rectangle
	Handle(mx, my int, pressed bool) bool
}

func NewToolbar(onNewSheet, onToggleSound func(), volume float64, onVolume func(float64)) *Toolbar {
	return &Toolbar{
		newSheet: NewButton("New sheet", ButtonStyle{Fill: colNewSheet, Border: colButtonBorder}, onNewSheet),
		sound:    NewButton("Sound: on", ButtonStyle{Fill: colSoundOn, Border: colButtonBorder}, onToggleSound),
		volume:   NewSlider("Vol", volume, onVolume),
	}
}

// SetBounds lays the buttons out left to right inside r.
func (t *Toolbar) SetBounds(r image.Rectangle) {
	t.Bounds = r
	inner := r.Inset(buttonPad)
	x := inner.Min.X
	for _, b := range []*Button{t.newSheet, t.sound} {
		w := max(b.Width(), 96)
		b.SetRect(image.Rect(x, inner.Min.Y, x+w, inner.Max.Y))
		x += w + buttonPad
	}
	t.volume.SetRect(image.Rect(x+buttonPad, inner.Min.Y, x+buttonPad+volumeSliderW, inner.Max.Y))
}

// SetVolume moves the slider without firing its callback.
func (t *Toolbar) SetVolume(v float64) { t.volume.Value = v }

// SetSound updates the toggle's label and colour.
func (t *Toolbar) SetSound(on bool) {
	if on {
		t.sound.Text = "Sound: on"
		t.sound.Style = ButtonStyle{Fill: colSoundOn, Border: colButtonBorder}
	} else {
		t.sound.Text = "Sound: off"
		t.sound.Style = ButtonStyle{Fill: colSoundOff, Border: colButtonBorder}
	}
}

func (t *Toolbar) SetStatus(popped, total int, size string) {
	t.status = fmt.Sprintf("%s  %d/%d popped", size, popped, total)
}

func (t *Toolbar) controls() []control {
	return []control{t.newSheet, t.sound, t.volume}
}

// Handle routes the pointer to the control under the press and reports
// whether that control consumed it. Until release, the other controls only
// see hover.
func (t *Toolbar) Handle(mx, my int, pressed bool) bool {
	if pressed && !t.wasDown {
		t.captured = nil
		for _, c := range t.controls() {
			if image.Pt(mx, my).In(c.Rect()) {
				t.captured = c
				break
			}
		}
	}
	t.wasDown = pressed

	used := false
	for _, c := range t.controls() {
		if c == t.captured {
			used = c.Handle(mx, my, pressed)
		} else {
			c.Handle(mx, my, false)
		}
	}
	if !pressed {
		t.captured = nil
	}
	return used
}

// Contains reports whether (x,y) lies on the toolbar.
func (t *Toolbar) Contains(x, y int) bool { return image.Pt(x, y).In(t.Bounds) }

func (t *Toolbar) Draw(dst *ebiten.Image) {
	drawRect(dst, t.Bounds, colToolbar, true)
	t.newSheet.Draw(dst)
	t.sound.Draw(dst)
	t.volume.Draw(dst)
	w, h := measure(t.status, labelSize)
	x := float64(t.Bounds.Max.X) - w - buttonPad*2
	y := float64(t.Bounds.Min.Y) + (float64(t.Bounds.Dy())-h)/2
	drawText(dst, t.status, x, y, labelSize, colToolbarTxt)
}
