//go:build js

package webclip

import (
	"errors"
	"syscall/js"
	"testing"
	"time"
)

func withNavigator(t *testing.T, v any) {
	t.Helper()
	g := js.Global()
	old := g.Get("navigator")
	g.Set("navigator", v)
	t.Cleanup(func() { g.Set("navigator", old) })
}

func TestWriteWithoutNavigator(t *testing.T) {
	withNavigator(t, js.Undefined())
	if err := Write("10x14", nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestWriteWithoutClipboard(t *testing.T) {
	withNavigator(t, map[string]any{})
	if err := Write("10x14", nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func fakeClipboard(t *testing.T, settle func(text string) js.Value) *[]string {
	t.Helper()
	var got []string
	writeText := js.FuncOf(func(_ js.Value, args []js.Value) any {
		got = append(got, args[0].String())
		return settle(args[0].String())
	})
	t.Cleanup(writeText.Release)
	withNavigator(t, map[string]any{"clipboard": map[string]any{"writeText": writeText}})
	return &got
}

func TestWriteResolved(t *testing.T) {
	got := fakeClipboard(t, func(string) js.Value {
		return js.Global().Get("Promise").Call("resolve")
	})
	if err := Write("10x14 sheet", func(err error) { t.Errorf("unexpected reject: %v", err) }); err != nil {
		t.Fatalf("Write: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if len(*got) != 1 || (*got)[0] != "10x14 sheet" {
		t.Fatalf("writeText got %q", *got)
	}
}

func TestWriteRejectedCallsBack(t *testing.T) {
	fakeClipboard(t, func(string) js.Value {
		return js.Global().Get("Promise").Call("reject", js.Global().Get("Error").New("denied"))
	})
	rejected := make(chan error, 1)
	if err := Write("10x14", func(err error) { rejected <- err }); err != nil {
		t.Fatalf("Write: %v", err)
	}
	select {
	case err := <-rejected:
		if err == nil || err.Error() != "clipboard write rejected: denied" {
			t.Fatalf("reject err = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("rejection handler never ran")
	}
}
