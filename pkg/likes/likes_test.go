package likes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementCounts(t *testing.T) {
	for _, k := range []int{0, 1, 2, 10, 250} {
		c := NewCounter(time.Second)
		for i := 0; i < k; i++ {
			require.NotNil(t, c.Increment())
		}
		assert.Equal(t, k, c.Count(), "after %d increments", k)
	}
}

func TestAcknowledgementClears(t *testing.T) {
	c := NewCounter(time.Millisecond)
	assert.False(t, c.Acknowledged())

	cmd := c.Increment()
	assert.True(t, c.Acknowledged())

	msg := cmd()
	clearMsg, ok := msg.(ClearAckMsg)
	require.True(t, ok, "expected ClearAckMsg, got %T", msg)

	c, _ = c.Update(clearMsg)
	assert.False(t, c.Acknowledged())
	assert.Equal(t, 1, c.Count(), "clearing never touches the count")
}

func TestOnlyLatestClearWins(t *testing.T) {
	c := NewCounter(time.Second)
	c.Increment()
	first := ClearAckMsg{Seq: c.seq}
	c.Increment()
	second := ClearAckMsg{Seq: c.seq}

	c, _ = c.Update(first)
	assert.True(t, c.Acknowledged(), "stale clear must be ignored")

	c, _ = c.Update(second)
	assert.False(t, c.Acknowledged())

	// A late duplicate is a harmless no-op.
	c, _ = c.Update(second)
	assert.False(t, c.Acknowledged())
	assert.Equal(t, 2, c.Count())
}

func TestDefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultAckDelay, NewCounter(0).AckDelay())
	assert.Equal(t, 3*time.Second, DefaultAckDelay)
}
