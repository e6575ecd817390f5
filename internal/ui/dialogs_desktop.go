//go:build !js

package ui

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/ncruces/zenity"
)

var (
	writeClipboard = clipboard.WriteAll
	askSheetSize   = func(current string) (string, error) {
		s, err := zenity.Entry("Rows x columns, e.g. 10x14",
			zenity.Title("Custom sheet"), zenity.EntryText(current))
		if errors.Is(err, zenity.ErrCanceled) {
			return "", errPromptCancelled
		}
		return s, err
	}
)
