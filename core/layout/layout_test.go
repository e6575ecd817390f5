package layout

import (
	"errors"
	"testing"
)

func TestComputeNarrowViewportExample(t *testing.T) {
	cfg := DefaultConfig()
	vp := Viewport{Width: 500, Height: 900, Top: 60}

	if got := cfg.BreakpointCap(vp.Width); got != 6 {
		t.Fatalf("breakpoint cap for 500px = %d, want 6", got)
	}
	if got := cfg.ColumnCap(vp); got < 6 {
		t.Fatalf("geometric cap for 500px = %d, want >= 6", got)
	}

	got, err := Compute(Dimensions{Rows: 10, Cols: 14}, vp, cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	want := Dimensions{Rows: 6, Cols: 6}
	if got != want {
		t.Fatalf("Compute = %v, want %v", got, want)
	}
}

func TestComputeWideViewportKeepsPreferred(t *testing.T) {
	cfg := DefaultConfig()
	vp := Viewport{Width: 1600, Height: 1200, Top: 40}
	got, err := Compute(Dimensions{Rows: 10, Cols: 14}, vp, cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got.Cols != 14 || got.Rows != 10 {
		t.Fatalf("Compute = %v, want 10x14", got)
	}
}

func TestComputeRowsLimitedByHeight(t *testing.T) {
	cfg := DefaultConfig()
	// 64px bubbles + 8px gap; 400 - 40 - 48 = 312 -> 4 rows, floored at MinRows.
	vp := Viewport{Width: 1600, Height: 400, Top: 40}
	got, err := Compute(Dimensions{Rows: 12, Cols: 16}, vp, cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got.Rows != cfg.MinRows {
		t.Fatalf("rows = %d, want %d", got.Rows, cfg.MinRows)
	}
	if got.Cols != 16 {
		t.Fatalf("cols = %d, want 16", got.Cols)
	}
}

func TestComputeRejectsNonPositivePreferred(t *testing.T) {
	for _, d := range []Dimensions{{Rows: 10, Cols: 0}, {Rows: 0, Cols: 10}, {Rows: -1, Cols: -1}} {
		if _, err := Compute(d, Viewport{Width: 800, Height: 600}, DefaultConfig()); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("Compute(%v) err = %v, want ErrInvalidDimensions", d, err)
		}
	}
}

func TestZeroWidthFloorsColumnCap(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ColumnCap(Viewport{}); got != MinCols {
		t.Fatalf("ColumnCap(0) = %d, want %d", got, MinCols)
	}
	got, err := Compute(Dimensions{Rows: 10, Cols: 14}, Viewport{}, cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got.Rows < cfg.MinRows || got.Cols < MinCols {
		t.Fatalf("Compute on empty viewport = %v", got)
	}
}

func TestComputeBoundsHoldEverywhere(t *testing.T) {
	cfg := DefaultConfig()
	prefs := []Dimensions{{10, 14}, {8, 12}, {12, 16}, {1, 1}, {1, 40}, {50, 3}}
	for _, p := range prefs {
		for w := 0.0; w <= 2600; w += 37 {
			for h := 0.0; h <= 1800; h += 53 {
				vp := Viewport{Width: w, Height: h, Top: 40}
				got, err := Compute(p, vp, cfg)
				if err != nil {
					t.Fatalf("Compute(%v, %+v): %v", p, vp, err)
				}
				if got.Rows < cfg.MinRows || got.Cols < MinCols {
					t.Fatalf("Compute(%v, %+v) = %v violates floors", p, vp, got)
				}
				again, _ := Compute(p, vp, cfg)
				if again != got {
					t.Fatalf("Compute(%v, %+v) not deterministic: %v vs %v", p, vp, got, again)
				}
			}
		}
	}
}

func TestBreakpointCapPicksFirstMatch(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		width float64
		want  int
	}{
		{0, 4},
		{360, 4},
		{361, 6},
		{520, 6},
		{700, 9},
		{1024, 12},
		{1025, 16},
		{5000, 16},
	}
	for _, c := range cases {
		if got := cfg.BreakpointCap(c.width); got != c.want {
			t.Errorf("BreakpointCap(%v) = %d, want %d", c.width, got, c.want)
		}
	}
}

func TestBubbleSizeClamped(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.BubbleSize(100); got != cfg.BubbleMin {
		t.Fatalf("BubbleSize(100) = %v, want %v", got, cfg.BubbleMin)
	}
	if got := cfg.BubbleSize(4000); got != cfg.BubbleMax {
		t.Fatalf("BubbleSize(4000) = %v, want %v", got, cfg.BubbleMax)
	}
	if got := cfg.BubbleSize(450); got != 54 {
		t.Fatalf("BubbleSize(450) = %v, want 54", got)
	}
}
