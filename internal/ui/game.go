package ui

import (
	"fmt"
	"image"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ingyamilmolinar/popwrap/core/debounce"
	"github.com/ingyamilmolinar/popwrap/core/gesture"
	"github.com/ingyamilmolinar/popwrap/core/layout"
	"github.com/ingyamilmolinar/popwrap/core/sheet"
	"github.com/ingyamilmolinar/popwrap/internal/audio"
	"github.com/ingyamilmolinar/popwrap/internal/config"
	game_log "github.com/ingyamilmolinar/popwrap/internal/log"
	"github.com/ingyamilmolinar/popwrap/internal/utils"
)

// Sounder plays the pop feedback.
type Sounder interface {
	Pop()
	SetEnabled(on bool)
}

type resumer interface{ Resume() }

type instrumentSetter interface {
	SetInstrument(audio.Instrument)
}

type volumeSetter interface{ SetVolume(float64) }

type nopSounder struct{}

func (nopSounder) Pop()            {}
func (nopSounder) SetEnabled(bool) {}

// State is everything a sheet session owns.
type State struct {
	Rotation     *sheet.Rotation
	Dims         layout.Dimensions
	Sheet        *sheet.Sheet
	Tracker      *gesture.Tracker
	SoundEnabled bool
	// Focus is the keyboard-focused bubble.
	Focus int
}

type Game struct {
	cfg     *config.Config
	logger  *game_log.Logger
	sound   Sounder
	state   State
	view    *SheetView
	toolbar *Toolbar
	resize  *debounce.Debouncer

	winW, winH   int
	laidOut      bool
	ptr          pointer
	keys         keyEdges
	focusVisible bool
	relayouts    int

	commands chan func(*Game)
	configCh <-chan *config.Config
	onStatus func(string)
}

// New builds a game for cfg. sound may be nil for silent play.
func New(cfg *config.Config, logger *game_log.Logger, sound Sounder) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	if sound == nil {
		sound = nopSounder{}
	}
	g := &Game{
		cfg:      cfg,
		logger:   logger,
		sound:    sound,
		view:     &SheetView{},
		commands: make(chan func(*Game), 8),
	}
	g.state = State{
		Rotation:     sheet.NewRotation(cfg.Sheet.Presets),
		SoundEnabled: cfg.Sound.Enabled,
	}
	g.state.Tracker = gesture.NewTracker(nil, g.view)
	g.state.Tracker.OnToggle = g.onToggle
	g.resize = debounce.New(cfg.Sheet.ResizeDebounce, g.relayout)
	g.toolbar = NewToolbar(g.NewSheet, g.ToggleSound, cfg.Sound.Volume, g.setVolume)
	g.toolbar.SetSound(g.state.SoundEnabled)
	sound.SetEnabled(g.state.SoundEnabled)
	g.initJS()
	return g
}

// State exposes the current session for inspection.
func (g *Game) State() *State { return &g.state }

// View is the current on-screen placement of the sheet.
func (g *Game) View() *SheetView { return g.view }

// Relayouts counts layout passes, for tests and the debug HUD.
func (g *Game) Relayouts() int { return g.relayouts }

// WatchConfig applies every config received on ch.
func (g *Game) WatchConfig(ch <-chan *config.Config) { g.configCh = ch }

// Do runs f on the game loop. It is safe to call from any goroutine.
func (g *Game) Do(f func(*Game)) { g.commands <- f }

/* ───────────────────────── layout ───────────────────────── */

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	if outsideW != g.winW || outsideH != g.winH {
		g.winW, g.winH = outsideW, outsideH
		if !g.laidOut {
			g.laidOut = true
			g.relayout()
		} else {
			g.resize.Trigger()
		}
	}
	return outsideW, outsideH
}

func (g *Game) viewport() layout.Viewport {
	return layout.Viewport{
		Width:  float64(g.winW),
		Height: float64(g.winH),
		Top:    float64(g.cfg.Window.ToolbarHeight),
	}
}

// relayout fits the preferred size to the window. The sheet is replaced
// only when the resulting dimensions change.
func (g *Game) relayout() {
	g.relayouts++
	dims, err := layout.Compute(g.state.Rotation.Current(), g.viewport(), g.cfg.Layout)
	if err != nil {
		g.logger.Warnf("[UI] layout %dx%d: %v", g.winW, g.winH, err)
		return
	}
	if g.state.Sheet == nil || dims != g.state.Dims {
		g.logger.Infof("[UI] sheet %s -> %s for %dx%d window", g.state.Dims, dims, g.winW, g.winH)
		g.rebuild(dims)
		return
	}
	g.place()
}

// rebuild renders a fresh, fully unpopped sheet of dims.
func (g *Game) rebuild(dims layout.Dimensions) {
	g.state.Dims = dims
	g.state.Sheet = sheet.New(dims)
	g.state.Focus = 0
	g.place()
	g.state.Tracker.Reset(g.state.Sheet, g.view)
	g.updateStatus()
}

// place positions the toolbar and the bubbles for the current window.
func (g *Game) place() {
	lc := g.cfg.Layout
	top := g.cfg.Window.ToolbarHeight
	g.toolbar.SetBounds(image.Rect(0, 0, g.winW, top))
	area := image.Rect(
		int(lc.SidePadding), top+int(lc.Gap),
		g.winW-int(lc.SidePadding), g.winH-int(lc.BottomMargin),
	)
	if area.Dy() <= 0 || area.Dx() <= 0 {
		area = image.Rect(0, top, max(g.winW, 1), max(g.winH, top+1))
	}
	*g.view = *NewSheetView(area, g.state.Dims, lc.BubbleSize(float64(g.winW)), lc.Gap)
}

/* ───────────────────────── actions ───────────────────────── */

// NewSheet advances the preset rotation and always renders a fresh sheet.
func (g *Game) NewSheet() {
	pref := g.state.Rotation.Next()
	g.logger.Debugf("[UI] new sheet, preferred %s", pref)
	g.forceLayout()
}

// SetCustomSize uses d as the preferred size until the next NewSheet.
// Before the first layout it only records the preference.
func (g *Game) SetCustomSize(d layout.Dimensions) {
	g.state.Rotation.SetCustom(d)
	g.logger.Infof("[UI] custom preferred size %s", d)
	if g.laidOut {
		g.forceLayout()
	}
}

func (g *Game) forceLayout() {
	g.resize.Stop()
	g.relayouts++
	dims, err := layout.Compute(g.state.Rotation.Current(), g.viewport(), g.cfg.Layout)
	if err != nil {
		g.logger.Warnf("[UI] layout: %v", err)
		return
	}
	g.rebuild(dims)
}

func (g *Game) ToggleSound() {
	g.state.SoundEnabled = !g.state.SoundEnabled
	g.sound.SetEnabled(g.state.SoundEnabled)
	g.toolbar.SetSound(g.state.SoundEnabled)
	g.logger.Infof("[UI] sound %t", g.state.SoundEnabled)
}

// resumeSound opens the audio device on a user gesture. Muted games never
// open it.
func (g *Game) resumeSound() {
	if !g.state.SoundEnabled {
		return
	}
	if r, ok := g.sound.(resumer); ok {
		r.Resume()
	}
}

// SoundSettings reports whether sound is on and the volume slider value.
// Call it on the game goroutine, or before the game starts running.
func (g *Game) SoundSettings() (bool, float64) {
	return g.state.SoundEnabled, g.toolbar.volume.Value
}

func (g *Game) setVolume(v float64) {
	if s, ok := g.sound.(volumeSetter); ok {
		s.SetVolume(v)
	}
}

// loadSample makes the WAV at path the pop sound. An empty path restores
// the synthesized pop.
func (g *Game) loadSample(path string) {
	if path == "" {
		g.SetInstrument(nil)
		return
	}
	s, err := loadSampleFile(path)
	if err != nil {
		g.logger.Warnf("[AUDIO] %v", err)
		return
	}
	g.SetInstrument(s)
}

// SetInstrument swaps the pop sound when the sounder supports it.
func (g *Game) SetInstrument(inst audio.Instrument) {
	if s, ok := g.sound.(instrumentSetter); ok {
		s.SetInstrument(inst)
	}
}

func (g *Game) onToggle(i int, popped bool, src gesture.Source) {
	g.logger.Debugf("[UI] bubble %d popped=%t via %s", i, popped, src)
	if popped && g.state.SoundEnabled {
		g.sound.Pop()
	}
	g.updateStatus()
	if g.state.Sheet.Complete() {
		g.logger.Infof("[UI] sheet %s complete", g.state.Dims)
	}
}

func (g *Game) updateStatus() {
	s := g.state.Sheet
	if s == nil {
		return
	}
	g.toolbar.SetStatus(s.PoppedCount(), s.Len(), s.Size())
	if g.onStatus != nil {
		g.onStatus(s.Summary())
	}
}

func (g *Game) applyConfig(c *config.Config) {
	g.logger.Infof("[CONFIG] reloaded")
	old := g.cfg
	g.cfg = c
	if !slices.Equal(c.Sheet.Presets, old.Sheet.Presets) {
		g.state.Rotation = sheet.NewRotation(c.Sheet.Presets)
	}
	if c.Sound.SamplePath != old.Sound.SamplePath {
		g.loadSample(c.Sound.SamplePath)
	}
	if lvl, ok := game_log.LevelFromString(c.Log.Level); ok {
		g.logger.SetLevel(lvl)
	}
	g.resize.Window = c.Sheet.ResizeDebounce
	g.setVolume(c.Sound.Volume)
	g.toolbar.SetVolume(c.Sound.Volume)
	if c.Sound.Enabled != g.state.SoundEnabled {
		g.ToggleSound()
	}
	if g.laidOut {
		g.relayout()
	}
}

func (g *Game) moveFocus(dr, dc int) {
	s := g.state.Sheet
	row, col := s.Cell(g.state.Focus)
	row = utils.Clamp(row+dr, 0, g.state.Dims.Rows-1)
	col = utils.Clamp(col+dc, 0, g.state.Dims.Cols-1)
	g.state.Focus = s.Index(row, col)
	g.focusVisible = true
}

/* ───────────────────────── update ───────────────────────── */

func (g *Game) Update() error {
	g.drain()
	g.resize.Poll()
	if g.state.Sheet == nil {
		return nil
	}

	ev := g.ptr.poll()
	hx, hy := g.ptr.x, g.ptr.y
	if !g.ptr.down {
		hx, hy = cursorPosition()
	}
	if !g.state.Tracker.Active() {
		g.toolbar.Handle(hx, hy, g.ptr.down)
	}
	g.handlePointer(ev)
	g.handleKeys()
	g.reportStateJS()
	return nil
}

func (g *Game) drain() {
	for {
		select {
		case f := <-g.commands:
			f(g)
		case c, ok := <-g.configCh:
			if !ok {
				g.configCh = nil
				continue
			}
			g.applyConfig(c)
		default:
			return
		}
	}
}

func (g *Game) handlePointer(ev pointerEvent) {
	t := g.state.Tracker
	switch ev.kind {
	case pointerPress:
		if g.toolbar.Contains(ev.x, ev.y) {
			return
		}
		g.resumeSound()
		g.focusVisible = false
		b, ok := g.view.BubbleAt(float64(ev.x), float64(ev.y))
		if !ok {
			b = -1
		} else {
			g.state.Focus = b
		}
		t.Press(b)
	case pointerMove:
		if !t.Active() {
			return
		}
		for _, p := range utils.SegmentPoints(float64(ev.px), float64(ev.py), float64(ev.x), float64(ev.y), g.view.Size/2) {
			t.Move(p.X, p.Y)
		}
	case pointerRelease:
		t.Release()
	case pointerCancel:
		g.logger.Debugf("[UI] gesture cancelled")
		t.Cancel()
	}
}

func (g *Game) handleKeys() {
	down := g.keys.update(
		ebiten.KeyN, ebiten.KeyM, ebiten.KeySpace, ebiten.KeyEnter,
		ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyArrowUp, ebiten.KeyArrowDown,
		ebiten.KeyC, ebiten.KeyO, ebiten.KeyR,
	)
	if len(down) == 0 {
		return
	}
	if ctrlHeld() {
		switch {
		case down[ebiten.KeyC]:
			g.copySummary()
		case down[ebiten.KeyO]:
			g.pickSample()
		case down[ebiten.KeyR]:
			g.promptCustomSize()
		}
		return
	}
	switch {
	case down[ebiten.KeyN]:
		g.NewSheet()
	case down[ebiten.KeyM]:
		g.ToggleSound()
	case down[ebiten.KeySpace], down[ebiten.KeyEnter]:
		g.focusVisible = true
		g.state.Tracker.Click(g.state.Focus)
	case down[ebiten.KeyArrowLeft]:
		g.moveFocus(0, -1)
	case down[ebiten.KeyArrowRight]:
		g.moveFocus(0, 1)
	case down[ebiten.KeyArrowUp]:
		g.moveFocus(-1, 0)
	case down[ebiten.KeyArrowDown]:
		g.moveFocus(1, 0)
	}
}

/* ───────────────────────── draw ───────────────────────── */

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	s := g.state.Sheet
	if s == nil {
		return
	}
	v := g.view
	drawRect(screen, v.Bounds().Inset(-int(v.Gap)), colSheet, true)
	for i := 0; i < s.Len(); i++ {
		cx, cy := v.Center(i)
		drawBubble(screen, cx, cy, v.Size, s.Popped(i))
	}
	if g.focusVisible && s.Contains(g.state.Focus) {
		cx, cy := v.Center(g.state.Focus)
		drawFocusRing(screen, cx, cy, v.Size)
	}
	g.toolbar.Draw(screen)

	if s.Complete() {
		msg := "All popped! Press N for a new sheet"
		w, h := measure(msg, titleSize)
		x := (float64(g.winW) - w) / 2
		y := float64(g.winH) - float64(g.cfg.Layout.BottomMargin)/2 - h/2
		drawText(screen, msg, x, y, titleSize, colComplete)
	}
	if g.logger.Level() == game_log.LevelDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  TPS %0.1f  layouts %d", s.Label(), ebiten.ActualTPS(), g.relayouts), 4, g.winH-debugCharH-4)
	}
}
