package ui

import "github.com/hajimehoshi/ebiten/v2"

type pointerKind int

const (
	pointerNone pointerKind = iota
	pointerPress
	pointerMove
	pointerRelease
	pointerCancel
)

func (k pointerKind) String() string {
	switch k {
	case pointerPress:
		return "press"
	case pointerMove:
		return "move"
	case pointerRelease:
		return "release"
	case pointerCancel:
		return "cancel"
	default:
		return "none"
	}
}

type pointerEvent struct {
	kind pointerKind
	x, y int
	// previous position, valid for moves
	px, py int
}

// pointer follows a single input stream: the left mouse button, or the
// first finger down when touching. Other fingers are ignored until the
// tracked one lifts.
type pointer struct {
	down     bool
	touching bool
	touch    ebiten.TouchID
	x, y     int
}

// poll samples input once per tick and reports the resulting transition.
// Input is ignored while the window is unfocused.
func (p *pointer) poll() pointerEvent {
	if !isFocused() {
		if !p.down {
			return pointerEvent{}
		}
		p.down = false
		p.touching = false
		return pointerEvent{kind: pointerCancel, x: p.x, y: p.y}
	}

	down, touching, id, x, y := p.sample()
	switch {
	case down && !p.down:
		p.down, p.touching, p.touch = true, touching, id
		p.x, p.y = x, y
		return pointerEvent{kind: pointerPress, x: x, y: y}
	case !down && p.down:
		p.down, p.touching = false, false
		return pointerEvent{kind: pointerRelease, x: p.x, y: p.y}
	case down && (x != p.x || y != p.y):
		ev := pointerEvent{kind: pointerMove, x: x, y: y, px: p.x, py: p.y}
		p.x, p.y = x, y
		return ev
	}
	return pointerEvent{}
}

func (p *pointer) sample() (down, touching bool, id ebiten.TouchID, x, y int) {
	ids := touchIDs()
	if p.down && p.touching {
		for _, t := range ids {
			if t == p.touch {
				x, y = touchPosition(t)
				return true, true, t, x, y
			}
		}
		// tracked finger lifted; report its last position
		return false, true, p.touch, p.x, p.y
	}
	if !p.down && len(ids) > 0 {
		x, y = touchPosition(ids[0])
		return true, true, ids[0], x, y
	}
	x, y = cursorPosition()
	return isMouseButtonPressed(ebiten.MouseButtonLeft), false, 0, x, y
}
