package ui

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/popwrap/core/layout"
	"github.com/ingyamilmolinar/popwrap/internal/audio"
	"github.com/ingyamilmolinar/popwrap/internal/config"
)

// stubDialogs runs dialogs inline and restores the real ones afterwards.
func stubDialogs(t *testing.T) {
	t.Helper()
	oldClip, oldAsk, oldChoose, oldAsync := writeClipboard, askSheetSize, chooseSample, runAsync
	runAsync = func(f func()) { f() }
	t.Cleanup(func() {
		writeClipboard, askSheetSize, chooseSample, runAsync = oldClip, oldAsk, oldChoose, oldAsync
	})
}

func TestCtrlCCopiesSummary(t *testing.T) {
	stubDialogs(t)
	var copied string
	writeClipboard = func(s string) error { copied = s; return nil }

	g, in, _, _ := newTestGame(t, 960, 720)
	at(g, in, 0, true)
	at(g, in, 0, false)
	tap(g, in, ebiten.KeyControl, ebiten.KeyC)

	if want := g.State().Sheet.Summary(); copied != want {
		t.Fatalf("copied %q, want %q", copied, want)
	}
	if g.State().Dims.Rows == 0 {
		t.Fatalf("ctrl+c should not affect the sheet")
	}
}

func TestCustomSizePrompt(t *testing.T) {
	stubDialogs(t)
	var offered string
	askSheetSize = func(cur string) (string, error) {
		offered = cur
		return "6 x 8", nil
	}

	g, in, _, _ := newTestGame(t, 1600, 1200)
	tap(g, in, ebiten.KeyControl, ebiten.KeyR)
	g.Update()

	if offered != "10x14" {
		t.Fatalf("prompt offered %q", offered)
	}
	want := layout.Dimensions{Rows: 6, Cols: 8}
	if got := g.State().Rotation.Current(); got != want {
		t.Fatalf("preferred = %s, want %s", got, want)
	}
	if g.State().Dims != want {
		t.Fatalf("sheet = %s, want %s", g.State().Dims, want)
	}
}

func TestCustomSizePromptCancelAndGarbage(t *testing.T) {
	stubDialogs(t)
	replies := []struct {
		s   string
		err error
	}{
		{"", errPromptCancelled},
		{"lots", nil},
		{"", errors.New("no display")},
	}
	for _, r := range replies {
		askSheetSize = func(string) (string, error) { return r.s, r.err }
		g, in, _, _ := newTestGame(t, 960, 720)
		before := g.State().Dims
		tap(g, in, ebiten.KeyControl, ebiten.KeyR)
		g.Update()
		if g.State().Dims != before {
			t.Fatalf("reply %q/%v changed the sheet", r.s, r.err)
		}
	}
}

func TestPickSampleSetsInstrument(t *testing.T) {
	stubDialogs(t)
	sample := &audio.Sample{Name: "snap.wav"}
	chooseSample = func() (*audio.Sample, error) { return sample, nil }

	g, in, snd, _ := newTestGame(t, 960, 720)
	tap(g, in, ebiten.KeyControl, ebiten.KeyO)
	g.Update()
	if snd.inst != audio.Instrument(sample) {
		t.Fatalf("instrument = %v, want the picked sample", snd.inst)
	}

	snd.inst = nil
	chooseSample = func() (*audio.Sample, error) { return nil, audio.ErrCancelled }
	tap(g, in, ebiten.KeyControl, ebiten.KeyO)
	g.Update()
	if snd.inst != nil {
		t.Fatalf("cancelled pick changed the instrument")
	}
}

func TestConfigReloadSwapsSample(t *testing.T) {
	stubDialogs(t)
	oldLoad := loadSampleFile
	t.Cleanup(func() { loadSampleFile = oldLoad })
	sample := &audio.Sample{Name: "pop.wav"}
	loadSampleFile = func(path string) (*audio.Sample, error) {
		if path != "pop.wav" {
			t.Fatalf("loaded %q", path)
		}
		return sample, nil
	}

	g, _, snd, _ := newTestGame(t, 960, 720)
	ch := make(chan *config.Config, 1)
	g.WatchConfig(ch)

	c := config.Default()
	c.Sound.SamplePath = "pop.wav"
	ch <- c
	g.Update()
	if snd.inst != audio.Instrument(sample) {
		t.Fatalf("sample not applied on reload")
	}

	c2 := config.Default()
	snd.inst = sample
	ch <- c2
	g.Update()
	if snd.inst != nil {
		t.Fatalf("clearing samplePath should restore the default pop")
	}
}
