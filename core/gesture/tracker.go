// Package gesture turns a press-drag-release pointer stream into bubble
// toggles, at most one per bubble per gesture.
package gesture

// Toggler flips a bubble and reports its new state. ok is false for
// indices that do not address a bubble.
type Toggler interface {
	Toggle(i int) (popped, ok bool)
}

// HitTester resolves a pointer position to a bubble index.
type HitTester interface {
	BubbleAt(x, y float64) (int, bool)
}

// Source tells observers why a bubble was toggled.
type Source int

const (
	SourcePress Source = iota
	SourceDrag
	SourceClick
)

func (s Source) String() string {
	switch s {
	case SourcePress:
		return "press"
	case SourceDrag:
		return "drag"
	case SourceClick:
		return "click"
	default:
		return "unknown"
	}
}

// Tracker is the Idle/Active gesture state machine. It is not safe for
// concurrent use; it expects a single pointer stream.
type Tracker struct {
	bubbles Toggler
	hit     HitTester
	visited visitSet
	active  bool

	// OnToggle, when set, is called after each successful toggle.
	OnToggle func(i int, popped bool, src Source)
}

func NewTracker(bubbles Toggler, hit HitTester) *Tracker {
	return &Tracker{bubbles: bubbles, hit: hit}
}

// Reset points the tracker at a freshly rendered sheet. Any active
// gesture is dropped.
func (t *Tracker) Reset(bubbles Toggler, hit HitTester) {
	t.bubbles = bubbles
	t.hit = hit
	t.end()
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool { return t.active }

// Press starts a gesture on bubble b and toggles it. A press while a
// gesture is already active starts a new one.
func (t *Tracker) Press(b int) {
	t.end()
	t.active = true
	t.visit(b, SourcePress)
}

// Move feeds a pointer position. Outside a gesture, or when the position
// misses every bubble, it does nothing.
func (t *Tracker) Move(x, y float64) {
	if !t.active || t.hit == nil {
		return
	}
	b, ok := t.hit.BubbleAt(x, y)
	if !ok {
		return
	}
	t.visit(b, SourceDrag)
}

func (t *Tracker) Release() { t.end() }

func (t *Tracker) Cancel() { t.end() }

// Click toggles b once without touching the gesture session.
func (t *Tracker) Click(b int) {
	t.toggle(b, SourceClick)
}

func (t *Tracker) visit(b int, src Source) {
	if b < 0 || t.visited.has(b) {
		return
	}
	if t.toggle(b, src) {
		t.visited.add(b)
	}
}

func (t *Tracker) toggle(b int, src Source) bool {
	if t.bubbles == nil {
		return false
	}
	popped, ok := t.bubbles.Toggle(b)
	if !ok {
		return false
	}
	if t.OnToggle != nil {
		t.OnToggle(b, popped, src)
	}
	return true
}

func (t *Tracker) end() {
	t.active = false
	t.visited.clear()
}
