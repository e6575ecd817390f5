package ui

import "github.com/hajimehoshi/ebiten/v2"

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	isKeyPressed         = ebiten.IsKeyPressed
	touchIDs             = func() []ebiten.TouchID { return ebiten.AppendTouchIDs(nil) }
	touchPosition        = ebiten.TouchPosition
	isFocused            = ebiten.IsFocused
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	key func(ebiten.Key) bool,
	touches func() []ebiten.TouchID,
	touchPos func(ebiten.TouchID) (int, int),
	focused func() bool,
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldKey := isKeyPressed
	oldTouches := touchIDs
	oldTouchPos := touchPosition
	oldFocused := isFocused
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	isKeyPressed = key
	touchIDs = touches
	touchPosition = touchPos
	isFocused = focused
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		isKeyPressed = oldKey
		touchIDs = oldTouches
		touchPosition = oldTouchPos
		isFocused = oldFocused
	}
}

// keyEdges turns level-triggered key state into press edges.
type keyEdges struct {
	prev map[ebiten.Key]bool
}

// update samples keys and returns those that went down since the last call.
func (k *keyEdges) update(keys ...ebiten.Key) map[ebiten.Key]bool {
	if k.prev == nil {
		k.prev = make(map[ebiten.Key]bool, len(keys))
	}
	down := make(map[ebiten.Key]bool)
	for _, key := range keys {
		now := isKeyPressed(key)
		if now && !k.prev[key] {
			down[key] = true
		}
		k.prev[key] = now
	}
	return down
}

func ctrlHeld() bool {
	return isKeyPressed(ebiten.KeyControl) || isKeyPressed(ebiten.KeyMeta)
}
