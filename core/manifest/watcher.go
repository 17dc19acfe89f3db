package manifest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/observer/core/observer"
	"github.com/dmitrymomot/observer/core/signal"
	"github.com/dmitrymomot/observer/pkg/logger"
)

// Watcher re-applies the manifest whenever the file changes, so channels
// added to the declarative file appear in the running registry without a
// restart. Channels removed from the file are never destroyed: live
// subscribers outlive configuration edits.
type Watcher struct {
	path   string
	reg    *observer.Registry
	hub    *signal.Hub
	logger *slog.Logger
	done   chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherLogger configures structured logging for the watcher.
func WithWatcherLogger(log *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if log != nil {
			w.logger = log
		}
	}
}

// NewWatcher creates a watcher for the manifest file at path that declares
// channels into reg and hub.
func NewWatcher(path string, reg *observer.Registry, hub *signal.Hub, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:   path,
		reg:    reg,
		hub:    hub,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Start begins watching and returns immediately. The watch goroutine exits
// when ctx is cancelled; Done unblocks once it has fully stopped.
//
// The parent directory is watched rather than the file itself, because
// editors and config tooling commonly replace files via rename.
func (w *Watcher) Start(ctx context.Context) error {
	if w.reg == nil || w.hub == nil {
		return ErrNilTarget
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return err
	}

	w.done = make(chan struct{})
	go func() {
		defer close(w.done)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-fsw.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if filepath.Clean(evt.Name) != filepath.Clean(w.path) {
					continue
				}
				w.apply()
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				w.logger.Error("manifest watch failed", logger.Error(err))
			}
		}
	}()

	w.logger.Debug("manifest watcher started", logger.Path(w.path))
	return nil
}

// Done returns a channel closed once the watch goroutine has exited.
// It returns nil before Start.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) apply() {
	m, err := Load(w.path)
	if err != nil {
		w.logger.Error("manifest reload failed",
			logger.Path(w.path),
			logger.Error(err))
		return
	}

	if err := m.Apply(w.reg, w.hub); err != nil {
		w.logger.Error("manifest apply failed",
			logger.Path(w.path),
			logger.Error(err))
		return
	}

	w.logger.Debug("manifest applied",
		logger.Path(w.path),
		logger.Count("channels", len(m.Channels)))
}
