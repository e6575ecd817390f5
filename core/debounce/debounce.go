// Package debounce collapses bursts of events into a single callback that
// fires once the burst has been quiet for a fixed window.
package debounce

import "time"

// DefaultWindow is the quiescence window used for resize bursts.
const DefaultWindow = 200 * time.Millisecond

// Debouncer is polled from the game loop rather than driven by its own
// timer goroutine, so the callback always runs on the caller's goroutine.
type Debouncer struct {
	Window time.Duration
	Fire   func()

	now     func() time.Time
	last    time.Time
	pending bool
	fired   int
}

func New(window time.Duration, fire func()) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{Window: window, Fire: fire, now: time.Now}
}

// Trigger records an event and restarts the quiescence window.
func (d *Debouncer) Trigger() {
	d.last = d.now()
	d.pending = true
}

// Poll runs Fire if the window has elapsed since the last Trigger. It
// reports whether it fired.
func (d *Debouncer) Poll() bool {
	if !d.pending || d.now().Sub(d.last) < d.Window {
		return false
	}
	d.pending = false
	d.fired++
	if d.Fire != nil {
		d.Fire()
	}
	return true
}

// Stop drops a pending burst without firing.
func (d *Debouncer) Stop() { d.pending = false }

// Fired counts how many times the callback has run.
func (d *Debouncer) Fired() int { return d.fired }

// SetNowFunc replaces the clock.
func (d *Debouncer) SetNowFunc(f func() time.Time) { d.now = f }
