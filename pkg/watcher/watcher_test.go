package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Dicklesworthstone/cats_viewer/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDebouncer_RapidTriggersRunOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	var called, last int32
	d := NewDebouncer(30 * time.Millisecond)
	var superseded int
	for i := 1; i <= 5; i++ {
		v := int32(i)
		if d.Trigger(func() {
			atomic.StoreInt32(&last, v)
			atomic.AddInt32(&called, 1)
		}) {
			superseded++
		}
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, 4, superseded, "every trigger after the first replaces a waiting reload")
	assert.True(t, d.Pending())

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&called))
	assert.Equal(t, int32(5), atomic.LoadInt32(&last))
	assert.False(t, d.Pending())
}

func TestDebouncer_Cancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	var called int32
	d := NewDebouncer(30 * time.Millisecond)
	d.Trigger(func() { atomic.AddInt32(&called, 1) })
	d.Cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&called))
}

func TestDebouncer_DefaultDuration(t *testing.T) {
	assert.Equal(t, DefaultDebounceDuration, NewDebouncer(0).Duration())
}

type reloadResult struct {
	content model.Content
	err     error
}

func startWatcher(t *testing.T, path string) (chan reloadResult, context.CancelFunc, chan error) {
	t.Helper()
	results := make(chan reloadResult, 8)
	w, err := NewContentWatcher(path, func(c model.Content, err error) {
		results <- reloadResult{content: c, err: err}
	}, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case err := <-done:
		cancel()
		t.Fatalf("watcher exited early: %v", err)
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("watcher never became ready")
	}
	return results, cancel, done
}

func waitResult(t *testing.T, results chan reloadResult) reloadResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	return reloadResult{}
}

func TestContentWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "cats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Before\n"), 0644))

	results, cancel, done := startWatcher(t, path)
	require.NoError(t, os.WriteFile(path, []byte("title: After\n"), 0644))

	r := waitResult(t, results)
	require.NoError(t, r.err)
	assert.Equal(t, "After", r.content.Title)

	cancel()
	require.NoError(t, <-done)
}

func TestContentWatcher_ReportsInvalidContent(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "cats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Fine\n"), 0644))

	results, cancel, done := startWatcher(t, path)
	require.NoError(t, os.WriteFile(path, []byte("facts: []\n"), 0644))

	r := waitResult(t, results)
	assert.ErrorIs(t, r.err, model.ErrNoFacts)

	cancel()
	require.NoError(t, <-done)
}

func TestContentWatcher_IgnoresSiblings(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "cats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Fine\n"), 0644))

	results, cancel, done := startWatcher(t, path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))

	select {
	case r := <-results:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestNewContentWatcherNeedsCallback(t *testing.T) {
	_, err := NewContentWatcher("cats.yaml", nil)
	assert.Error(t, err)
}
