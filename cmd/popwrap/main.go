package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/popwrap/core/layout"
	"github.com/ingyamilmolinar/popwrap/internal/audio"
	"github.com/ingyamilmolinar/popwrap/internal/config"
	game_log "github.com/ingyamilmolinar/popwrap/internal/log"
	"github.com/ingyamilmolinar/popwrap/internal/ui"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath(), "path to the JSON config file")
	logLevel := flag.String("log-level", "", "debug, info, warn, error or none (overrides config and POPWRAP_LOG)")
	width := flag.Int("width", 0, "initial window width")
	height := flag.Int("height", 0, "initial window height")
	mute := flag.Bool("mute", false, "start with sound off")
	sample := flag.String("sample", "", "WAV file to use as the pop sound")
	size := flag.String("size", "", "preferred sheet size, e.g. 10x14")
	panel := flag.Bool("panel", false, "open the control panel (fyne builds only)")
	writeCfg := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	logger := game_log.New(os.Stderr, game_log.LevelInfo)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}
	level := cfg.Log.Level
	if env := os.Getenv("POPWRAP_LOG"); env != "" {
		level = env
	}
	if *logLevel != "" {
		level = *logLevel
	}
	if lv, ok := game_log.LevelFromString(strings.TrimSpace(level)); ok {
		logger.SetLevel(lv)
	} else {
		logger.Warnf("[MAIN] unknown log level %q, using info", level)
	}

	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *mute {
		cfg.Sound.Enabled = false
	}
	if *sample != "" {
		cfg.Sound.SamplePath = *sample
	}
	var pref *layout.Dimensions
	if *size != "" {
		d, err := layout.ParseDimensions(*size)
		if err != nil {
			logger.Errorf("[MAIN] -size: %v", err)
			os.Exit(2)
		}
		pref = &d
	}

	if *writeCfg {
		if pref != nil {
			cfg.Sheet.Presets = append([]layout.Dimensions{*pref}, cfg.Sheet.Presets...)
		}
		if err := config.Save(*cfgPath, cfg); err != nil {
			logger.Errorf("[MAIN] %v", err)
			os.Exit(1)
		}
		logger.Infof("[MAIN] wrote %s", *cfgPath)
		return
	}

	sound := audio.NewEngine(logger)
	sound.SetVolume(cfg.Sound.Volume)
	if cfg.Sound.SamplePath != "" {
		s, err := audio.LoadSample(cfg.Sound.SamplePath)
		if err != nil {
			logger.Warnf("[MAIN] pop sample: %v", err)
		} else {
			sound.SetInstrument(s)
		}
	}

	g := ui.New(cfg, logger, sound)
	if pref != nil {
		g.SetCustomSize(*pref)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if ch, err := config.Watch(ctx, *cfgPath, logger); err != nil {
		logger.Warnf("[MAIN] config reload disabled: %v", err)
	} else {
		g.WatchConfig(ch)
	}
	if *panel {
		ui.RunFynePanel(g)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}
}
