//go:build js

package ui

import (
	"syscall/js"

	"github.com/ingyamilmolinar/popwrap/internal/webclip"
)

var (
	writeClipboard = func(s string) error {
		return webclip.Write(s, func(err error) {
			js.Global().Get("console").Call("warn", err.Error())
		})
	}
	askSheetSize = func(current string) (string, error) {
		prompt := js.Global().Get("prompt")
		if prompt.Type() != js.TypeFunction {
			return "", errPromptCancelled
		}
		v := prompt.Invoke("Rows x columns, e.g. 10x14", current)
		if v.IsNull() || v.IsUndefined() {
			return "", errPromptCancelled
		}
		return v.String(), nil
	}
)
