// Package sheet holds the bubble states of one rendered sheet.
package sheet

import (
	"fmt"

	"github.com/ingyamilmolinar/popwrap/core/layout"
)

// Sheet is a rows x cols grid of bubbles addressed by a zero-based index in
// row-major order. Indices are only meaningful for the lifetime of a Sheet.
type Sheet struct {
	dims   layout.Dimensions
	popped []bool
	count  int
}

// New returns a sheet of unpopped bubbles. Non-positive sizes yield an
// empty sheet.
func New(d layout.Dimensions) *Sheet {
	n := 0
	if d.Rows > 0 && d.Cols > 0 {
		n = d.Rows * d.Cols
	}
	return &Sheet{dims: d, popped: make([]bool, n)}
}

func (s *Sheet) Dimensions() layout.Dimensions { return s.dims }

// Len is the number of bubbles.
func (s *Sheet) Len() int { return len(s.popped) }

// Contains reports whether i addresses a bubble of this sheet.
func (s *Sheet) Contains(i int) bool { return i >= 0 && i < len(s.popped) }

// Toggle flips bubble i and returns its new state. ok is false when i is
// out of range, in which case nothing changes.
func (s *Sheet) Toggle(i int) (popped, ok bool) {
	if !s.Contains(i) {
		return false, false
	}
	s.popped[i] = !s.popped[i]
	if s.popped[i] {
		s.count++
	} else {
		s.count--
	}
	return s.popped[i], true
}

func (s *Sheet) Popped(i int) bool {
	return s.Contains(i) && s.popped[i]
}

func (s *Sheet) PoppedCount() int { return s.count }

// Complete reports whether every bubble is popped.
func (s *Sheet) Complete() bool { return len(s.popped) > 0 && s.count == len(s.popped) }

// Reset unpops every bubble.
func (s *Sheet) Reset() {
	clear(s.popped)
	s.count = 0
}

// Cell converts an index to its (row, col) position.
func (s *Sheet) Cell(i int) (row, col int) {
	if s.dims.Cols <= 0 {
		return 0, 0
	}
	return i / s.dims.Cols, i % s.dims.Cols
}

// Index converts (row, col) to an index, or -1 when off the sheet.
func (s *Sheet) Index(row, col int) int {
	if row < 0 || col < 0 || row >= s.dims.Rows || col >= s.dims.Cols {
		return -1
	}
	return row*s.dims.Cols + col
}

// Size is the compact "RxC" form.
func (s *Sheet) Size() string { return s.dims.String() }

// Label is the human readable description of the sheet.
func (s *Sheet) Label() string {
	return fmt.Sprintf("Bubble wrap sheet %d by %d", s.dims.Rows, s.dims.Cols)
}

// Summary describes progress on the sheet.
func (s *Sheet) Summary() string {
	return fmt.Sprintf("Popped %d of %d bubbles on a %s sheet", s.count, s.Len(), s.Size())
}
