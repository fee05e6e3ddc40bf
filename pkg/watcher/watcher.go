package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/Dicklesworthstone/cats_viewer/pkg/loader"
	"github.com/Dicklesworthstone/cats_viewer/pkg/model"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadFunc receives the result of every reload. On error the content is
// the zero value and the caller should keep what it has.
type ReloadFunc func(model.Content, error)

// Option configures a ContentWatcher
type Option func(*ContentWatcher)

// WithDebounce sets the quiet period before a change is reloaded.
func WithDebounce(d time.Duration) Option {
	return func(w *ContentWatcher) {
		w.debouncer = NewDebouncer(d)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *ContentWatcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// ContentWatcher reloads a content file whenever it changes.
type ContentWatcher struct {
	path      string
	onReload  ReloadFunc
	debouncer *Debouncer
	logger    *zap.Logger

	readyOnce sync.Once
	ready     chan struct{}
}

// NewContentWatcher creates a watcher for the content file at path.
func NewContentWatcher(path string, onReload ReloadFunc, opts ...Option) (*ContentWatcher, error) {
	if onReload == nil {
		return nil, errors.New("content watcher needs a reload callback")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	w := &ContentWatcher{
		path:      abs,
		onReload:  onReload,
		debouncer: NewDebouncer(0),
		logger:    zap.NewNop(),
		ready:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the absolute path being watched
func (w *ContentWatcher) Path() string { return w.path }

// Ready is closed once the file system watch is established.
func (w *ContentWatcher) Ready() <-chan struct{} { return w.ready }

// Run watches until ctx is cancelled. The parent directory is watched rather
// than the file itself so that editors which replace the file on save keep
// being tracked.
func (w *ContentWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()
	defer w.debouncer.Cancel()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	w.readyOnce.Do(func() { close(w.ready) })
	w.logger.Debug("watching content", zap.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				if w.debouncer.Trigger(w.reload) {
					w.logger.Debug("coalescing content events", zap.String("op", ev.Op.String()))
				}
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", zap.Error(err))
		}
	}
}

func (w *ContentWatcher) reload() {
	c, err := loader.LoadContent(w.path)
	if err != nil {
		w.logger.Warn("content reload failed", zap.String("path", w.path), zap.Error(err))
		w.onReload(model.Content{}, err)
		return
	}
	w.logger.Info("content reloaded",
		zap.String("path", w.path),
		zap.Int("images", len(c.Images)),
		zap.Int("facts", len(c.Facts)),
		zap.Int("breeds", len(c.Breeds)),
	)
	w.onReload(c, nil)
}
