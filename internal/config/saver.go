package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ingyamilmolinar/popwrap/core/layout"
)

// fileConfig is the on-disk shape; durations are strings like "200ms" and
// pointers tell missing fields apart from zero values.
type fileConfig struct {
	Window WindowConfig  `json:"window"`
	Sheet  fileSheet     `json:"sheet"`
	Sound  fileSound     `json:"sound"`
	Layout layout.Config `json:"layout"`
	Log    LogConfig     `json:"log"`
}

type fileSheet struct {
	Presets        []layout.Dimensions `json:"presets,omitempty"`
	ResizeDebounce string              `json:"resizeDebounce,omitempty"`
}

type fileSound struct {
	Enabled    *bool    `json:"enabled,omitempty"`
	Volume     *float64 `json:"volume,omitempty"`
	SamplePath string   `json:"samplePath,omitempty"`
}

// DefaultPath is where the config lives unless overridden.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "popwrap.json"
	}
	return filepath.Join(dir, "popwrap", "config.json")
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	fc := fileConfig{Window: cfg.Window, Layout: cfg.Layout, Log: cfg.Log}
	// Unmarshal reuses existing slice elements, so a listed breakpoint
	// would inherit fields from the default table.
	fc.Layout.Breakpoints = nil
	if err := json.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Window = fc.Window
	cfg.Layout = fc.Layout
	cfg.Log = fc.Log
	if len(fc.Sheet.Presets) > 0 {
		cfg.Sheet.Presets = fc.Sheet.Presets
	}
	if fc.Sheet.ResizeDebounce != "" {
		d, err := time.ParseDuration(fc.Sheet.ResizeDebounce)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: resizeDebounce: %w", path, err)
		}
		cfg.Sheet.ResizeDebounce = d
	}
	if fc.Sound.Enabled != nil {
		cfg.Sound.Enabled = *fc.Sound.Enabled
	}
	if fc.Sound.Volume != nil {
		cfg.Sound.Volume = *fc.Sound.Volume
	}
	cfg.Sound.SamplePath = fc.Sound.SamplePath
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *Config) error {
	fc := fileConfig{
		Window: cfg.Window,
		Sheet: fileSheet{
			Presets:        cfg.Sheet.Presets,
			ResizeDebounce: cfg.Sheet.ResizeDebounce.String(),
		},
		Sound: fileSound{
			Enabled:    &cfg.Sound.Enabled,
			Volume:     &cfg.Sound.Volume,
			SamplePath: cfg.Sound.SamplePath,
		},
		Layout: cfg.Layout,
		Log:    cfg.Log,
	}
	b, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
