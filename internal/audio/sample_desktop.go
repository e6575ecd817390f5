//go:build !js

package audio

import (
	"errors"

	"github.com/ncruces/zenity"
	"github.com/sqweek/dialog"
)

// PickSample opens a native file chooser and loads the chosen WAV. When
// the platform dialog is unavailable it falls back to zenity.
func PickSample() (*Sample, error) {
	path, err := dialog.File().Title("Choose a pop sound").Filter("WAV files", "wav").Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return nil, ErrCancelled
	}
	if err != nil {
		path, err = zenity.SelectFile(
			zenity.Title("Choose a pop sound"),
			zenity.FileFilter{Name: "WAV files", Patterns: []string{"*.wav"}},
		)
		if errors.Is(err, zenity.ErrCanceled) {
			return nil, ErrCancelled
		}
		if err != nil {
			return nil, err
		}
	}
	return LoadSample(path)
}
