package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for i := 0; i < n; i++ {
			assert.Equal(t, i, Retreat(Advance(i, n), n), "advance then retreat n=%d i=%d", n, i)
			assert.Equal(t, i, Advance(Retreat(i, n), n), "retreat then advance n=%d i=%d", n, i)
		}
	}
}

func TestCycleClosure(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for start := 0; start < n; start++ {
			idx := start
			for k := 0; k < n; k++ {
				idx = Advance(idx, n)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, n)
			}
			assert.Equal(t, start, idx, "n=%d start=%d", n, start)
		}
	}
}

func TestWraparoundScenario(t *testing.T) {
	nav, err := New(3)
	require.NoError(t, err)
	require.Equal(t, 0, nav.Index())

	var seen []int
	for i := 0; i < 3; i++ {
		nav = nav.Next()
		seen = append(seen, nav.Index())
	}
	assert.Equal(t, []int{1, 2, 0}, seen)

	nav = nav.Prev()
	assert.Equal(t, 2, nav.Index())
}

func TestEmptyIsConfigurationError(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrEmpty)

	// Pure functions stay total and never divide by zero.
	assert.Equal(t, 0, Advance(4, 0))
	assert.Equal(t, 0, Retreat(4, -1))
}

func TestOutOfRangeIndexIsNormalized(t *testing.T) {
	assert.Equal(t, 4, Advance(-2, 5))
	assert.Equal(t, 2, Advance(-4, 5))
	assert.Equal(t, 3, Retreat(-1, 5))
	assert.Equal(t, 1, Retreat(7, 5))
}

func TestResize(t *testing.T) {
	nav, err := New(5)
	require.NoError(t, err)
	nav = nav.Prev() // 4

	shrunk, err := nav.Resize(3)
	require.NoError(t, err)
	assert.Equal(t, 2, shrunk.Index())
	assert.Equal(t, 3, shrunk.Len())

	grown, err := shrunk.Resize(10)
	require.NoError(t, err)
	assert.Equal(t, 2, grown.Index())

	same, err := grown.Resize(0)
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, grown, same)
}
