//go:build fyne

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ingyamilmolinar/popwrap/core/layout"
	"github.com/ingyamilmolinar/popwrap/internal/audio"
)

// RunFynePanel launches a control window implemented with Fyne. Every
// action is posted to the game loop with g.Do.
func RunFynePanel(g *Game) {
	status := binding.NewString()
	soundOn, vol := g.SoundSettings()
	g.Do(func(g *Game) {
		g.onStatus = func(s string) { _ = status.Set(s) }
		g.updateStatus()
	})

	go func() {
		a := app.New()
		w := a.NewWindow("Bubble Wrap Controls")

		newBtn := widget.NewButton("New sheet", func() { g.Do((*Game).NewSheet) })

		sound := widget.NewCheck("Sound", func(on bool) {
			g.Do(func(g *Game) {
				if on != g.state.SoundEnabled {
					g.ToggleSound()
				}
			})
		})
		sound.SetChecked(soundOn)

		volume := widget.NewSlider(0, 1)
		volume.Step = 0.05
		volume.SetValue(vol)
		volume.OnChanged = func(v float64) {
			g.Do(func(g *Game) {
				g.setVolume(v)
				g.toolbar.SetVolume(v)
			})
		}

		size := widget.NewEntry()
		size.SetPlaceHolder("rows x cols")
		size.OnSubmitted = func(s string) {
			d, err := layout.ParseDimensions(s)
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			g.Do(func(g *Game) { g.SetCustomSize(d) })
		}

		copyBtn := widget.NewButton("Copy summary", func() { g.Do((*Game).copySummary) })

		sampleBtn := widget.NewButton("Pop sound from WAV", func() {
			fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
				if err != nil || r == nil {
					return
				}
				defer r.Close()
				s, err := audio.DecodeSample(r.URI().Name(), r)
				if err != nil {
					dialog.ShowError(err, w)
					return
				}
				g.Do(func(g *Game) { g.SetInstrument(s) })
			}, w)
			fd.SetFilter(storage.NewExtensionFileFilter([]string{".wav"}))
			fd.Show()
		})
		resetSound := widget.NewButton("Default pop", func() {
			g.Do(func(g *Game) { g.SetInstrument(nil) })
		})

		w.SetContent(container.NewVBox(
			widget.NewLabelWithData(status),
			newBtn,
			sound,
			volume,
			size,
			copyBtn,
			container.NewHBox(sampleBtn, resetSound),
		))
		w.ShowAndRun()
	}()
}
