package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ingyamilmolinar/popwrap/core/debounce"
	"github.com/ingyamilmolinar/popwrap/core/layout"
	"github.com/ingyamilmolinar/popwrap/core/sheet"
)

var ErrInvalid = errors.New("config: invalid")

// Config is the root configuration structure.
type Config struct {
	Window WindowConfig  `json:"window"`
	Sheet  SheetConfig   `json:"sheet"`
	Sound  SoundConfig   `json:"sound"`
	Layout layout.Config `json:"layout"`
	Log    LogConfig     `json:"log"`
}

// WindowConfig configures the initial window.
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	// ToolbarHeight is the sheet's top offset in px.
	ToolbarHeight int `json:"toolbarHeight"`
}

// SheetConfig configures the preset rotation and resize handling.
type SheetConfig struct {
	Presets        []layout.Dimensions `json:"presets"`
	ResizeDebounce time.Duration       `json:"resizeDebounce"`
}

// SoundConfig configures the pop sound.
type SoundConfig struct {
	Enabled bool    `json:"enabled"`
	Volume  float64 `json:"volume"`
	// SamplePath, when set, replaces the synthesized pop with a WAV file.
	SamplePath string `json:"samplePath,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `json:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:         960,
			Height:        720,
			Title:         "Bubble Wrap",
			ToolbarHeight: 48,
		},
		Sheet: SheetConfig{
			Presets:        append([]layout.Dimensions(nil), sheet.DefaultPresets...),
			ResizeDebounce: debounce.DefaultWindow,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  1,
		},
		Layout: layout.DefaultConfig(),
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate repairs out-of-range values and returns an error for values that
// cannot be repaired.
func (c *Config) Validate() error {
	d := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Window.ToolbarHeight < 0 {
		c.Window.ToolbarHeight = d.Window.ToolbarHeight
	}
	if c.Sheet.ResizeDebounce <= 0 {
		c.Sheet.ResizeDebounce = d.Sheet.ResizeDebounce
	}
	if len(c.Sheet.Presets) == 0 {
		c.Sheet.Presets = d.Sheet.Presets
	}
	for i, p := range c.Sheet.Presets {
		if p.Rows <= 0 || p.Cols <= 0 {
			return fmt.Errorf("%w: preset %d has size %s", ErrInvalid, i, p)
		}
	}
	c.Sound.Volume = max(0, min(c.Sound.Volume, 1))

	l := &c.Layout
	if l.BubbleMin <= 0 || l.BubbleMax < l.BubbleMin {
		return fmt.Errorf("%w: bubble bounds [%v,%v]", ErrInvalid, l.BubbleMin, l.BubbleMax)
	}
	if l.Gap < 0 || l.SidePadding < 0 || l.BottomMargin < 0 {
		return fmt.Errorf("%w: negative spacing", ErrInvalid)
	}
	if l.MinRows <= 0 {
		l.MinRows = d.Layout.MinRows
	}
	if l.BubbleFraction <= 0 {
		l.BubbleFraction = d.Layout.BubbleFraction
	}
	if l.MinHeightFraction < 0 || l.MinHeightFraction > 1 {
		l.MinHeightFraction = d.Layout.MinHeightFraction
	}
	if len(l.Breakpoints) == 0 {
		l.Breakpoints = d.Layout.Breakpoints
	}
	for i, bp := range l.Breakpoints {
		if bp.Cols <= 0 {
			return fmt.Errorf("%w: breakpoint %d has %d columns", ErrInvalid, i, bp.Cols)
		}
		if i > 0 && bp.MaxWidth > 0 && bp.MaxWidth < l.Breakpoints[i-1].MaxWidth {
			return fmt.Errorf("%w: breakpoints must be ordered narrowest first", ErrInvalid)
		}
	}
	return nil
}
