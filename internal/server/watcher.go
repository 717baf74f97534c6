package server

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ResourceWatcher watches the currently resolved sound and icon
// override paths while the server runs. Resolution itself re-reads the
// environment on every request, so the watcher changes nothing about
// delivery; it exists to explain a silent fallback before it happens
// by logging when an override file disappears or is replaced.
type ResourceWatcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	mu    sync.Mutex
	paths map[string]bool

	done    chan struct{}
	running bool
}

// NewResourceWatcher creates a watcher for the given resource paths.
// Paths that cannot be watched are skipped with a debug log.
func NewResourceWatcher(logger *slog.Logger, paths ...string) (*ResourceWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	rw := &ResourceWatcher{
		watcher: watcher,
		logger:  logger,
		paths:   make(map[string]bool),
		done:    make(chan struct{}),
	}

	// Watch the containing directories: watching the files directly
	// breaks on editors and tools that replace rather than rewrite.
	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		rw.paths[p] = true
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			logger.Debug("cannot watch resource directory", "dir", dir, "error", err)
		}
	}

	return rw, nil
}

// Start begins watching. Safe to call once.
func (rw *ResourceWatcher) Start() {
	rw.mu.Lock()
	if rw.running {
		rw.mu.Unlock()
		return
	}
	rw.running = true
	rw.mu.Unlock()

	go rw.watch()
	rw.logger.Debug("resource watcher started", "paths", len(rw.paths))
}

// Stop stops watching and releases the underlying watcher.
func (rw *ResourceWatcher) Stop() {
	rw.mu.Lock()
	if !rw.running {
		rw.mu.Unlock()
		return
	}
	rw.running = false
	rw.mu.Unlock()

	_ = rw.watcher.Close()
	<-rw.done
}

func (rw *ResourceWatcher) watch() {
	defer close(rw.done)

	for {
		select {
		case event, ok := <-rw.watcher.Events:
			if !ok {
				return
			}
			if !rw.paths[event.Name] {
				continue
			}
			switch {
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				rw.logger.Warn("configured resource disappeared; next notification falls back to defaults",
					"path", event.Name)
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				rw.logger.Debug("configured resource changed", "path", event.Name)
			}
		case err, ok := <-rw.watcher.Errors:
			if !ok {
				return
			}
			rw.logger.Debug("resource watcher error", "error", err)
		}
	}
}
