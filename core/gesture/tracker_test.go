package gesture

import (
	"math"
	"testing"

	"github.com/ingyamilmolinar/popwrap/core/layout"
	"github.com/ingyamilmolinar/popwrap/core/sheet"
)

// rowHit maps x to a bubble in a single row of 10px cells; y outside
// [0,10) misses.
type rowHit struct{ n int }

func (h rowHit) BubbleAt(x, y float64) (int, bool) {
	if y < 0 || y >= 10 || x < 0 {
		return 0, false
	}
	i := int(math.Floor(x / 10))
	if i >= h.n {
		return 0, false
	}
	return i, true
}

func newRow(n int) (*sheet.Sheet, *Tracker, *[]int) {
	s := sheet.New(layout.Dimensions{Rows: 1, Cols: n})
	tr := NewTracker(s, rowHit{n: n})
	var toggled []int
	tr.OnToggle = func(i int, _ bool, _ Source) { toggled = append(toggled, i) }
	return s, tr, &toggled
}

func TestPressTogglesImmediately(t *testing.T) {
	s, tr, toggled := newRow(4)
	tr.Press(2)
	if !tr.Active() {
		t.Fatalf("tracker should be active after press")
	}
	if !s.Popped(2) || len(*toggled) != 1 {
		t.Fatalf("press should pop bubble 2 once, toggled=%v", *toggled)
	}
	tr.Release()
	if tr.Active() {
		t.Fatalf("tracker should be idle after release")
	}
	if !s.Popped(2) || s.PoppedCount() != 1 {
		t.Fatalf("release must not toggle again")
	}
}

func TestRevisitTogglesOnce(t *testing.T) {
	s, tr, toggled := newRow(5)
	tr.Press(0)
	// sweep right, back left, right again, hovering on bubble 3 repeatedly
	xs := []float64{5, 15, 25, 35, 36, 37, 25, 15, 5, 15, 25, 35, 38}
	for _, x := range xs {
		tr.Move(x, 5)
	}
	tr.Release()

	want := []int{0, 1, 2, 3}
	if len(*toggled) != len(want) {
		t.Fatalf("toggled %v, want %v", *toggled, want)
	}
	for i, b := range want {
		if (*toggled)[i] != b {
			t.Fatalf("toggled %v, want %v", *toggled, want)
		}
		if !s.Popped(b) {
			t.Fatalf("bubble %d should be popped", b)
		}
	}
	if s.Popped(4) {
		t.Fatalf("bubble 4 was never touched")
	}
}

func TestDragUnpopsAlreadyPopped(t *testing.T) {
	s, tr, _ := newRow(3)
	s.Toggle(1)
	tr.Press(0)
	tr.Move(15, 5)
	tr.Move(15, 6)
	tr.Release()
	if s.Popped(1) {
		t.Fatalf("dragging over a popped bubble should flip it back exactly once")
	}
}

func TestMissesAreIgnored(t *testing.T) {
	s, tr, toggled := newRow(3)
	tr.Press(0)
	tr.Move(15, -3)  // above the row
	tr.Move(500, 5)  // past the end
	tr.Move(-20, 50) // nowhere
	tr.Release()
	if len(*toggled) != 1 || s.PoppedCount() != 1 {
		t.Fatalf("misses toggled bubbles: %v", *toggled)
	}
}

func TestMoveWhileIdleDoesNothing(t *testing.T) {
	s, tr, _ := newRow(3)
	tr.Move(15, 5)
	if s.PoppedCount() != 0 {
		t.Fatalf("move outside a gesture toggled a bubble")
	}
}

func TestCancelEndsSession(t *testing.T) {
	s, tr, _ := newRow(3)
	tr.Press(0)
	tr.Cancel()
	tr.Move(15, 5)
	if tr.Active() || s.Popped(1) {
		t.Fatalf("moves after cancel must be ignored")
	}
}

func TestNewGestureCanRevisit(t *testing.T) {
	s, tr, _ := newRow(2)
	tr.Press(0)
	tr.Move(15, 5)
	tr.Release()
	tr.Press(1)
	tr.Move(5, 5)
	tr.Release()
	if s.Popped(0) || s.Popped(1) {
		t.Fatalf("second gesture should flip both back")
	}
}

func TestClickBypassesSession(t *testing.T) {
	s, tr, toggled := newRow(3)
	s.Toggle(2)
	var sources []Source
	tr.OnToggle = func(i int, _ bool, src Source) {
		*toggled = append(*toggled, i)
		sources = append(sources, src)
	}
	tr.Click(2)
	if s.Popped(2) {
		t.Fatalf("click on a popped bubble should unpop it")
	}
	if tr.Active() {
		t.Fatalf("click must not start a gesture")
	}
	if len(sources) != 1 || sources[0] != SourceClick {
		t.Fatalf("sources = %v", sources)
	}
}

func TestPressOutOfRangeStillStartsGesture(t *testing.T) {
	s, tr, toggled := newRow(2)
	tr.Press(7)
	if !tr.Active() {
		t.Fatalf("press should start a gesture even off the sheet")
	}
	tr.Move(5, 5)
	if len(*toggled) != 1 || !s.Popped(0) {
		t.Fatalf("drag onto the sheet should toggle, got %v", *toggled)
	}
}

func TestVisitSetEpochs(t *testing.T) {
	var v visitSet
	v.add(3)
	v.add(100)
	if !v.has(3) || !v.has(100) || v.has(4) || v.len() != 2 {
		t.Fatalf("unexpected membership after add")
	}
	v.clear()
	if v.has(3) || v.has(100) || v.len() != 0 {
		t.Fatalf("clear left members behind")
	}
	v.epoch = math.MaxUint32
	v.stamp[5] = math.MaxUint32
	v.clear()
	if v.epoch != 1 || v.has(5) {
		t.Fatalf("epoch wrap not handled: epoch=%d", v.epoch)
	}
}
