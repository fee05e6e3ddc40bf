package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(s State, facts, ticks int) State {
	for i := 0; i < ticks; i++ {
		s = Step(s, facts)
	}
	return s
}

func TestStepInvariants(t *testing.T) {
	s := State{}
	for i := 0; i < 5000; i++ {
		s = Step(s, 7)
		require.GreaterOrEqual(t, s.FactIndex, 0)
		require.Less(t, s.FactIndex, 7)
		require.GreaterOrEqual(t, s.Progress, 0)
		require.LessOrEqual(t, s.Progress, MaxProgress)
	}
}

func TestHundredTicksAdvanceOneFact(t *testing.T) {
	assert.Equal(t, State{FactIndex: 0, Progress: 99}, run(State{}, 4, 99))
	assert.Equal(t, State{FactIndex: 1, Progress: 0}, run(State{}, 4, 100))
}

func TestFullCycle(t *testing.T) {
	for _, facts := range []int{1, 2, 3, 8} {
		got := run(State{}, facts, MaxProgress*facts)
		assert.Equal(t, 0, got.FactIndex, "facts=%d", facts)
		assert.Equal(t, 0, got.Progress, "facts=%d", facts)
	}
}

func TestEightFactsScenario(t *testing.T) {
	s := run(State{}, 8, 799)
	assert.Equal(t, State{FactIndex: 7, Progress: 99}, s)
	assert.Equal(t, State{FactIndex: 0, Progress: 0}, Step(s, 8))
}

func TestStepWithoutFacts(t *testing.T) {
	assert.Equal(t, State{}, Step(State{FactIndex: 3, Progress: 50}, 0))
}

func tickFor(tk Ticker) TickMsg {
	return TickMsg{ID: tk.id, gen: tk.gen, Time: time.Now()}
}

func TestTickerOnlyAdvancesWhileRunning(t *testing.T) {
	tk := New(3, time.Millisecond)
	assert.False(t, tk.Running())

	// A stopped ticker ignores ticks.
	tk, cmd := tk.Update(tickFor(tk))
	assert.Nil(t, cmd)
	assert.Equal(t, State{}, tk.State())

	require.NotNil(t, tk.Start())
	tk, cmd = tk.Update(tickFor(tk))
	assert.NotNil(t, cmd, "running ticker schedules the next tick")
	assert.Equal(t, State{Progress: 1}, tk.State())
	assert.InDelta(t, 0.01, tk.Percent(), 1e-9)
}

func TestStopDropsInFlightTicks(t *testing.T) {
	tk := New(3, time.Millisecond)
	tk.Start()
	stale := tickFor(tk)

	tk.Stop()
	tk, cmd := tk.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, State{}, tk.State())

	// Restarting does not revive ticks from the earlier schedule.
	tk.Start()
	tk, cmd = tk.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, State{}, tk.State())
}

func TestTickerIgnoresForeignMessages(t *testing.T) {
	a := New(3, time.Millisecond)
	b := New(3, time.Millisecond)
	a.Start()
	b.Start()

	a, cmd := a.Update(tickFor(b))
	assert.Nil(t, cmd)
	assert.Equal(t, State{}, a.State())

	a, cmd = a.Update("not a tick")
	assert.Nil(t, cmd)
	assert.Equal(t, State{}, a.State())
}

func TestStartCommandDeliversTick(t *testing.T) {
	tk := New(2, time.Millisecond)
	cmd := tk.Start()
	require.NotNil(t, cmd)

	msg := cmd()
	tm, ok := msg.(TickMsg)
	require.True(t, ok, "expected TickMsg, got %T", msg)
	assert.Equal(t, tk.ID(), tm.ID)

	tk, _ = tk.Update(tm)
	assert.Equal(t, 1, tk.State().Progress)
}

func TestToggleAndSkip(t *testing.T) {
	tk := New(2, 0)
	assert.Equal(t, DefaultInterval, tk.Interval())

	require.NotNil(t, tk.Toggle())
	assert.True(t, tk.Running())
	assert.Nil(t, tk.Toggle())
	assert.False(t, tk.Running())

	tk.Skip()
	assert.Equal(t, State{FactIndex: 1}, tk.State())
	tk.Skip()
	assert.Equal(t, State{FactIndex: 0}, tk.State())
}

func TestSetFactCount(t *testing.T) {
	tk := New(5, time.Millisecond)
	tk.Start()
	for i := 0; i < 4; i++ {
		tk.Skip()
	}
	require.Equal(t, 4, tk.State().FactIndex)

	tk.SetFactCount(6)
	assert.Equal(t, 4, tk.State().FactIndex)

	tk.SetFactCount(2)
	assert.Equal(t, State{}, tk.State())
	assert.True(t, tk.Running())

	tk.SetFactCount(0)
	assert.False(t, tk.Running())
	assert.Nil(t, tk.Start(), "no facts means nothing to schedule")
}
