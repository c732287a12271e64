// Package watcher reloads bridgemon's configuration when the config or
// extensions file changes on disk, using fsnotify with debouncing.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned when operations are called on a closed watcher.
var ErrClosed = errors.New("watcher: watcher is closed")

// ReloadHandler is called after a debounced change to any watched file.
// changed holds the files that triggered the reload.
type ReloadHandler func(changed []string)

// ErrorHandler is called when the underlying watch reports an error.
type ErrorHandler func(err error)

// ConfigWatcher watches a small fixed set of files for changes. It watches
// the parent directories rather than the files themselves so that
// atomic-rename saves (the way most editors write) still produce events.
type ConfigWatcher struct {
	fs           *fsnotify.Watcher
	debouncer    *Debouncer
	handler      ReloadHandler
	errorHandler ErrorHandler

	mu      sync.Mutex
	files   map[string]bool // absolute file paths we care about
	dirs    map[string]bool // directories added to fsnotify
	pending []string
	closed  bool
}

// Option configures a ConfigWatcher.
type Option func(*ConfigWatcher)

// WithDebouncer sets a custom debouncer.
func WithDebouncer(d *Debouncer) Option {
	return func(w *ConfigWatcher) {
		if d != nil {
			w.debouncer = d
		}
	}
}

// WithErrorHandler sets the error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(w *ConfigWatcher) {
		w.errorHandler = handler
	}
}

// New creates a ConfigWatcher delivering debounced reloads to handler.
func New(handler ReloadHandler, opts ...Option) (*ConfigWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &ConfigWatcher{
		fs:        fs,
		debouncer: NewDebouncer(DefaultDebounceDuration),
		handler:   handler,
		files:     make(map[string]bool),
		dirs:      make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w, nil
}

// Watch adds a file to the watched set. The file does not need to exist
// yet; creating it later still triggers a reload.
func (w *ConfigWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if w.files[abs] {
		return nil
	}

	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if _, err := os.Stat(dir); err != nil {
			return err
		}
		if err := w.fs.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	return nil
}

// Files returns the watched file paths.
func (w *ConfigWatcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := make([]string, 0, len(w.files))
	for f := range w.files {
		files = append(files, f)
	}
	return files
}

// Close stops the watcher and releases resources.
func (w *ConfigWatcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	w.debouncer.Cancel()
	return w.fs.Close()
}

func (w *ConfigWatcher) run() {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			if w.errorHandler != nil {
				w.errorHandler(err)
			}
		}
	}
}

func (w *ConfigWatcher) handleEvent(event fsnotify.Event) {
	// Chmod alone never changes content.
	if event.Op == fsnotify.Chmod {
		return
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}

	w.mu.Lock()
	if w.closed || !w.files[abs] {
		w.mu.Unlock()
		return
	}
	w.pending = append(w.pending, abs)
	w.mu.Unlock()

	w.debouncer.Trigger(func() {
		w.mu.Lock()
		if w.closed {
			w.mu.Unlock()
			return
		}
		changed := dedupe(w.pending)
		w.pending = nil
		w.mu.Unlock()

		if len(changed) > 0 && w.handler != nil {
			w.handler(changed)
		}
	})
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
