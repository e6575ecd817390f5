//go:build js

package ui

import "syscall/js"

// initJS exposes the sheet to the page for browser tests and screen readers.
func (g *Game) initJS() {
	js.Global().Set("newSheet", js.FuncOf(func(js.Value, []js.Value) any {
		g.Do((*Game).NewSheet)
		return nil
	}))
	js.Global().Set("toggleSound", js.FuncOf(func(js.Value, []js.Value) any {
		g.Do((*Game).ToggleSound)
		return nil
	}))
}

// reportStateJS publishes the sheet label and progress.
func (g *Game) reportStateJS() {
	s := g.state.Sheet
	if s == nil {
		return
	}
	js.Global().Set("__sheet", js.ValueOf(map[string]any{
		"label":  s.Label(),
		"size":   s.Size(),
		"popped": s.PoppedCount(),
		"total":  s.Len(),
	}))
}
