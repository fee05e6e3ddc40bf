// Package likes implements the like counter and its transient
// acknowledgement banner.
package likes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultAckDelay is how long the acknowledgement stays visible after a like.
const DefaultAckDelay = 3 * time.Second

// ClearAckMsg asks the counter to hide the acknowledgement scheduled by the
// like with the same sequence number.
type ClearAckMsg struct {
	Seq uint64
}

// Counter counts likes. It never decrements.
type Counter struct {
	count    int
	acked    bool
	seq      uint64
	ackDelay time.Duration
}

// NewCounter creates a counter at zero. A non-positive delay falls back to
// DefaultAckDelay.
func NewCounter(ackDelay time.Duration) Counter {
	if ackDelay <= 0 {
		ackDelay = DefaultAckDelay
	}
	return Counter{ackDelay: ackDelay}
}

// Count returns the number of likes so far
func (c Counter) Count() int { return c.count }

// Acknowledged reports whether the acknowledgement banner should show
func (c Counter) Acknowledged() bool { return c.acked }

// AckDelay returns the acknowledgement lifetime
func (c Counter) AckDelay() time.Duration { return c.ackDelay }

// Increment records a like, raises the acknowledgement and returns the
// command that clears it after the delay. Every like reschedules the clear;
// only the most recent one takes effect.
func (c *Counter) Increment() tea.Cmd {
	c.count++
	c.acked = true
	c.seq++
	seq := c.seq
	return tea.Tick(c.ackDelay, func(time.Time) tea.Msg {
		return ClearAckMsg{Seq: seq}
	})
}

// Update hides the acknowledgement when the latest scheduled clear arrives.
func (c Counter) Update(msg tea.Msg) (Counter, tea.Cmd) {
	if m, ok := msg.(ClearAckMsg); ok && m.Seq == c.seq {
		c.acked = false
	}
	return c, nil
}
