package ui

import (
	"errors"

	"github.com/ingyamilmolinar/popwrap/core/layout"
	"github.com/ingyamilmolinar/popwrap/internal/audio"
)

// errPromptCancelled is returned by askSheetSize when the prompt is dismissed.
var errPromptCancelled = errors.New("prompt cancelled")

// Native dialogs block, so they run off the game loop and post their
// result back through g.commands.
var (
	chooseSample   = audio.PickSample
	loadSampleFile = audio.LoadSample
)

// runAsync is replaced in tests to run dialogs inline.
var runAsync = func(f func()) { go f() }

func (g *Game) copySummary() {
	summary := g.state.Sheet.Summary()
	if err := writeClipboard(summary); err != nil {
		g.logger.Warnf("[UI] clipboard: %v", err)
		return
	}
	g.logger.Infof("[UI] copied %q", summary)
}

func (g *Game) promptCustomSize() {
	current := g.state.Rotation.Current().String()
	runAsync(func() {
		s, err := askSheetSize(current)
		if errors.Is(err, errPromptCancelled) {
			return
		}
		if err != nil {
			g.logger.Warnf("[UI] size prompt: %v", err)
			return
		}
		d, err := layout.ParseDimensions(s)
		if err != nil {
			g.logger.Warnf("[UI] %v", err)
			return
		}
		g.Do(func(g *Game) { g.SetCustomSize(d) })
	})
}

func (g *Game) pickSample() {
	runAsync(func() {
		s, err := chooseSample()
		if errors.Is(err, audio.ErrCancelled) {
			return
		}
		if err != nil {
			g.logger.Warnf("[AUDIO] sample: %v", err)
			return
		}
		g.Do(func(g *Game) {
			g.logger.Infof("[AUDIO] pop sound is now %s (%.2fs)", s.Name, s.Duration())
			g.SetInstrument(s)
		})
	})
}
