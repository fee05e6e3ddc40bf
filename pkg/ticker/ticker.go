// Package ticker drives the rotating "fact of the moment": a recurring tick
// fills a progress bar and, once it is full, moves on to the next fact.
package ticker

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultInterval is the tick period.
	DefaultInterval = 50 * time.Millisecond

	// MaxProgress is the progress value at which the current fact is done.
	MaxProgress = 100
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// State is the observable ticker position.
type State struct {
	FactIndex int
	Progress  int
}

// Step applies one tick to s over a list of facts entries. A fact is shown for
// exactly MaxProgress ticks: the tick that would fill the bar moves to the
// next fact (wrapping) and resets progress to zero.
func Step(s State, facts int) State {
	if facts <= 0 {
		return State{}
	}
	idx := ((s.FactIndex % facts) + facts) % facts
	next := s.Progress + 1
	if next < 0 {
		next = 0
	}
	if next >= MaxProgress {
		return State{FactIndex: (idx + 1) % facts}
	}
	return State{FactIndex: idx, Progress: next}
}

// TickMsg is delivered on every tick of a running Ticker.
type TickMsg struct {
	ID   int
	Time time.Time

	gen int
}

// Ticker is the scheduled task that owns a State. It only advances while
// started; Stop invalidates every tick already in flight so a torn-down view
// is never updated.
type Ticker struct {
	id       int
	gen      int
	interval time.Duration
	facts    int
	state    State
	running  bool
}

// New creates a stopped ticker over facts entries. A non-positive interval
// falls back to DefaultInterval.
func New(facts int, interval time.Duration) Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if facts < 0 {
		facts = 0
	}
	return Ticker{
		id:       nextID(),
		interval: interval,
		facts:    facts,
	}
}

// ID identifies the ticker's messages
func (t Ticker) ID() int { return t.id }

// State returns the current position
func (t Ticker) State() State { return t.state }

// Interval returns the tick period
func (t Ticker) Interval() time.Duration { return t.interval }

// Running reports whether ticks are being scheduled
func (t Ticker) Running() bool { return t.running }

// Percent returns progress as a fraction in [0, 1] for progress bars.
func (t Ticker) Percent() float64 {
	return float64(t.state.Progress) / float64(MaxProgress)
}

// Start begins scheduling ticks and returns the command for the first one.
// Starting a running ticker restarts its schedule.
func (t *Ticker) Start() tea.Cmd {
	if t.facts == 0 {
		return nil
	}
	t.gen++
	t.running = true
	return t.tick()
}

// Stop cancels the schedule. Pending ticks are dropped when they arrive.
func (t *Ticker) Stop() {
	t.gen++
	t.running = false
}

// Toggle pauses a running ticker or resumes a stopped one.
func (t *Ticker) Toggle() tea.Cmd {
	if t.running {
		t.Stop()
		return nil
	}
	return t.Start()
}

// Skip jumps straight to the next fact with an empty progress bar.
func (t *Ticker) Skip() {
	if t.facts == 0 {
		return
	}
	t.state = State{FactIndex: (t.state.FactIndex + 1) % t.facts}
}

// SetFactCount adjusts the ticker to a new fact list, keeping the current
// fact when it still exists and restarting from the first one otherwise.
func (t *Ticker) SetFactCount(facts int) {
	if facts < 0 {
		facts = 0
	}
	t.facts = facts
	if facts == 0 {
		t.state = State{}
		t.Stop()
		return
	}
	if t.state.FactIndex >= facts {
		t.state = State{}
	}
}

// Update consumes this ticker's TickMsg and schedules the next one.
func (t Ticker) Update(msg tea.Msg) (Ticker, tea.Cmd) {
	tm, ok := msg.(TickMsg)
	if !ok {
		return t, nil
	}
	if tm.ID != t.id || tm.gen != t.gen || !t.running {
		return t, nil
	}
	t.state = Step(t.state, t.facts)
	return t, t.tick()
}

func (t Ticker) tick() tea.Cmd {
	id, gen := t.id, t.gen
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now, gen: gen}
	})
}
