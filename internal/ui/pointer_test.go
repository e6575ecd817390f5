package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestPointerMouseTransitions(t *testing.T) {
	in := installInput(t)
	var p pointer

	if ev := p.poll(); ev.kind != pointerNone {
		t.Fatalf("idle poll = %s", ev.kind)
	}
	in.x, in.y, in.down = 10, 20, true
	if ev := p.poll(); ev.kind != pointerPress || ev.x != 10 || ev.y != 20 {
		t.Fatalf("press = %+v", ev)
	}
	if ev := p.poll(); ev.kind != pointerNone {
		t.Fatalf("held without moving = %s", ev.kind)
	}
	in.x = 30
	ev := p.poll()
	if ev.kind != pointerMove || ev.px != 10 || ev.x != 30 {
		t.Fatalf("move = %+v", ev)
	}
	in.down = false
	if ev := p.poll(); ev.kind != pointerRelease {
		t.Fatalf("release = %s", ev.kind)
	}
}

func TestPointerFollowsFirstTouch(t *testing.T) {
	in := installInput(t)
	var p pointer

	in.order = []ebiten.TouchID{1}
	in.touches[1] = [2]int{5, 5}
	if ev := p.poll(); ev.kind != pointerPress {
		t.Fatalf("touch start = %s", ev.kind)
	}
	// a second finger is ignored
	in.order = []ebiten.TouchID{1, 2}
	in.touches[2] = [2]int{500, 500}
	if ev := p.poll(); ev.kind != pointerNone {
		t.Fatalf("second finger produced %s", ev.kind)
	}
	in.touches[1] = [2]int{8, 5}
	if ev := p.poll(); ev.kind != pointerMove || ev.x != 8 {
		t.Fatalf("tracked finger move = %+v", ev)
	}
	in.order = []ebiten.TouchID{2}
	if ev := p.poll(); ev.kind != pointerRelease || ev.x != 8 {
		t.Fatalf("lift = %+v", ev)
	}
}

func TestPointerCancelOnFocusLoss(t *testing.T) {
	in := installInput(t)
	var p pointer
	in.down = true
	p.poll()
	in.unfocus = true
	if ev := p.poll(); ev.kind != pointerCancel {
		t.Fatalf("focus loss = %s", ev.kind)
	}
	if ev := p.poll(); ev.kind != pointerNone {
		t.Fatalf("unfocused poll after cancel = %s", ev.kind)
	}
}
