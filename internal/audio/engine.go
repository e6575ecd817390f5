// Package audio synthesizes and plays the pop sound.
package audio

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	game_log "github.com/ingyamilmolinar/popwrap/internal/log"
)

const (
	SampleRate          = 44100
	bufferSizeBytes10ms = SampleRate / 100 * 2 // 10ms of 16-bit mono audio
)

// Engine plays pop sounds through a lazily opened oto context. When no
// audio device can be opened every call is a no-op.
type Engine struct {
	logger *game_log.Logger

	once   sync.Once
	ctx    *oto.Context
	player *oto.Player
	mix    *mixer

	mu      sync.Mutex
	enabled bool
	volume  float64
	pop     Instrument
}

func NewEngine(logger *game_log.Logger) *Engine {
	return &Engine{logger: logger, enabled: true, volume: 1, pop: Pop}
}

func (e *Engine) init() {
	c, err := platformInitContext(SampleRate)
	if err != nil {
		e.logger.Warnf("[AUDIO] sound unavailable: %v", err)
		return
	}
	e.ctx = c
	e.mix = &mixer{}
	e.player = c.NewPlayer(e.mix)
	e.player.SetBufferSize(bufferSizeBytes10ms)
	e.player.Play()
	e.logger.Infof("[AUDIO] context ready at %dHz", SampleRate)
}

// Pop plays the current pop instrument once.
func (e *Engine) Pop() {
	e.mu.Lock()
	enabled, vol, inst := e.enabled, e.volume, e.pop
	e.mu.Unlock()
	if !enabled || inst == nil {
		return
	}
	e.once.Do(e.init)
	if e.ctx == nil {
		return
	}
	_ = e.ctx.Resume()
	v := inst.NewVoice(SampleRate)
	if vol != 1 {
		v = &scaledVoice{v: v, gain: vol}
	}
	e.mix.Schedule(v, 0)
}

// Resume opens or resumes the audio context without playing anything.
// Browsers only allow this from within a user gesture.
func (e *Engine) Resume() {
	e.once.Do(e.init)
	if e.ctx != nil {
		_ = e.ctx.Resume()
	}
}

func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

func (e *Engine) SetEnabled(on bool) {
	e.mu.Lock()
	e.enabled = on
	e.mu.Unlock()
	e.logger.Debugf("[AUDIO] sound enabled=%t", on)
}

// SetVolume scales every pop; values are clamped to [0,1].
func (e *Engine) SetVolume(v float64) {
	v = max(0, min(v, 1))
	e.mu.Lock()
	e.volume = v
	e.mu.Unlock()
}

// SetInstrument replaces the pop sound. nil restores the synthesized pop.
func (e *Engine) SetInstrument(inst Instrument) {
	if inst == nil {
		inst = Pop
	}
	e.mu.Lock()
	e.pop = inst
	e.mu.Unlock()
}
