//go:build js

package webclip

import (
	"errors"
	"syscall/js"
)

// ErrUnavailable is returned when the page has no async clipboard, as on
// plain-HTTP origins.
var ErrUnavailable = errors.New("clipboard unavailable")

// Write starts copying text to the clipboard. The browser settles the
// request later; if it refuses, onReject is called from the JS event loop.
func Write(text string, onReject func(error)) error {
	nav := js.Global().Get("navigator")
	if !nav.Truthy() {
		return ErrUnavailable
	}
	clip := nav.Get("clipboard")
	if !clip.Truthy() || clip.Get("writeText").Type() != js.TypeFunction {
		return ErrUnavailable
	}
	p := clip.Call("writeText", text)
	if p.Type() != js.TypeObject || p.Get("then").Type() != js.TypeFunction {
		return nil
	}

	var ok, fail js.Func
	release := func() {
		ok.Release()
		fail.Release()
	}
	ok = js.FuncOf(func(js.Value, []js.Value) any {
		release()
		return nil
	})
	fail = js.FuncOf(func(_ js.Value, args []js.Value) any {
		release()
		if onReject != nil {
			onReject(rejection(args))
		}
		return nil
	})
	p.Call("then", ok, fail)
	return nil
}

func rejection(args []js.Value) error {
	if len(args) == 0 {
		return errors.New("clipboard write rejected")
	}
	r := args[0]
	if m := r.Get("message"); r.Type() == js.TypeObject && m.Type() == js.TypeString {
		return errors.New("clipboard write rejected: " + m.String())
	}
	return errors.New("clipboard write rejected: " + r.String())
}
