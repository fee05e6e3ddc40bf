// Package watcher reloads page content when its file changes on disk.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is how long the content file must stay quiet before
// it is reloaded. A single editor save arrives as a burst of events
// (truncate, write, chmod, rename) and must produce one reload, not four.
const DefaultDebounceDuration = 150 * time.Millisecond

// Debouncer turns bursts of content file events into one reload. Each
// Trigger replaces the reload scheduled before it; only the reload from the
// last event in a burst runs, once the file has been quiet for the window.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

// NewDebouncer creates a debouncer with a quiet window of duration.
// A non-positive duration selects DefaultDebounceDuration.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDebounceDuration
	}
	return &Debouncer{
		duration: duration,
	}
}

// Trigger schedules reload after the quiet window, superseding a reload
// that is still waiting. It reports whether one was superseded.
func (d *Debouncer) Trigger(reload func()) (superseded bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
		superseded = true
	}
	d.timer = time.AfterFunc(d.duration, func() {
		if d.claim(seq) {
			reload()
		}
	})
	return superseded
}

// claim reports whether seq is still the latest scheduled reload. A timer
// that already fired cannot be stopped, so a superseded reload checks here.
func (d *Debouncer) claim(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		return false
	}
	d.timer = nil
	return true
}

// Pending reports whether a reload is waiting for the file to go quiet
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Cancel drops the waiting reload, if any. Used when the watcher stops.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the quiet window
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
