// Package layout derives the bubble grid that fits the current window.
package layout

import (
	"errors"
	"fmt"
	"math"
)

// MinCols is the floor for the column count regardless of viewport size.
const MinCols = 4

var ErrInvalidDimensions = errors.New("layout: preferred dimensions must be positive")

// Dimensions is a sheet size in bubbles.
type Dimensions struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

func (d Dimensions) String() string { return fmt.Sprintf("%dx%d", d.Rows, d.Cols) }

// Viewport is the window geometry sampled at layout time, in device
// independent pixels. Top is where the sheet starts (below the toolbar).
type Viewport struct {
	Width  float64
	Height float64
	Top    float64
}

// Breakpoint caps the column count for viewports up to MaxWidth wide.
// A MaxWidth of 0 or less means unbounded.
type Breakpoint struct {
	MaxWidth float64 `json:"maxWidth"`
	Cols     int     `json:"cols"`
}

// Config holds the tunables of the sizing algorithm.
type Config struct {
	// Ordered narrowest first; the last entry is used when nothing matches.
	Breakpoints []Breakpoint `json:"breakpoints"`

	BubbleMin      float64 `json:"bubbleMin"`      // px
	BubbleMax      float64 `json:"bubbleMax"`      // px
	BubbleFraction float64 `json:"bubbleFraction"` // of viewport width
	Gap            float64 `json:"gap"`            // px between bubbles
	SidePadding    float64 `json:"sidePadding"`    // px left and right of the sheet
	BottomMargin   float64 `json:"bottomMargin"`   // px below the sheet

	// MinHeightFraction floors the vertical space available to the sheet.
	MinHeightFraction float64 `json:"minHeightFraction"`
	MinRows           int     `json:"minRows"`
}

// DefaultConfig mirrors the stylesheet values the sheet was designed against.
func DefaultConfig() Config {
	return Config{
		Breakpoints: []Breakpoint{
			{MaxWidth: 360, Cols: 4},
			{MaxWidth: 520, Cols: 6},
			{MaxWidth: 768, Cols: 9},
			{MaxWidth: 1024, Cols: 12},
			{MaxWidth: 0, Cols: 16},
		},
		BubbleMin:         42,
		BubbleMax:         64,
		BubbleFraction:    0.12,
		Gap:               8,
		SidePadding:       16,
		BottomMargin:      48,
		MinHeightFraction: 0.4,
		MinRows:           6,
	}
}

// BreakpointCap returns the column cap for a viewport width.
func (c Config) BreakpointCap(width float64) int {
	if len(c.Breakpoints) == 0 {
		return math.MaxInt
	}
	for _, bp := range c.Breakpoints {
		if bp.MaxWidth > 0 && width <= bp.MaxWidth {
			return bp.Cols
		}
	}
	return c.Breakpoints[len(c.Breakpoints)-1].Cols
}

// BubbleSize estimates the on-screen bubble diameter for a viewport width.
func (c Config) BubbleSize(width float64) float64 {
	s := width * c.BubbleFraction
	if s < c.BubbleMin {
		s = c.BubbleMin
	}
	if s > c.BubbleMax {
		s = c.BubbleMax
	}
	return s
}

// ColumnCap is how many bubbles fit across the viewport, never below MinCols.
func (c Config) ColumnCap(vp Viewport) int {
	avail := vp.Width - 2*c.SidePadding
	n := fit(avail, c.BubbleSize(vp.Width)+c.Gap)
	if n < MinCols {
		return MinCols
	}
	return n
}

// RowCap is how many bubbles fit below vp.Top, never below MinRows.
// The bubble size is re-estimated from the width, the same way the columns
// are; no attempt is made to keep the cells square.
func (c Config) RowCap(vp Viewport) int {
	avail := vp.Height - vp.Top - c.BottomMargin
	if floor := vp.Height * c.MinHeightFraction; avail < floor {
		avail = floor
	}
	n := fit(avail, c.BubbleSize(vp.Width)+c.Gap)
	return max(n, c.minRows())
}

func (c Config) minRows() int { return max(c.MinRows, 1) }

func fit(avail, step float64) int {
	if avail <= 0 || step <= 0 {
		return 0
	}
	return int(math.Floor(avail / step))
}

// Compute returns the sheet size for preferred on viewport vp.
// The result always has Rows >= cfg.MinRows and Cols >= MinCols.
func Compute(preferred Dimensions, vp Viewport, cfg Config) (Dimensions, error) {
	if preferred.Rows <= 0 || preferred.Cols <= 0 {
		return Dimensions{}, fmt.Errorf("%w: got %s", ErrInvalidDimensions, preferred)
	}

	cols := min(preferred.Cols, cfg.BreakpointCap(vp.Width), cfg.ColumnCap(vp))
	cols = max(cols, cfg.minRows(), MinCols)

	scale := float64(cols) / float64(preferred.Cols)
	rows := int(math.Round(float64(preferred.Rows) * scale))
	rows = max(rows, cfg.minRows())
	rows = min(rows, cfg.RowCap(vp))

	return Dimensions{Rows: rows, Cols: cols}, nil
}
