// Package watch reloads a single file when it changes on disk. Bursts of
// events are debounced into one notification.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
)

// DefaultDelay is how long the file must stay quiet before a change is
// reported.
const DefaultDelay = 150 * time.Millisecond

// EventType classifies a change.
type EventType int

const (
	EventTypeModified EventType = iota
	EventTypeCreated
	EventTypeRemoved
)

// String returns the string representation of the EventType.
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeRemoved:
		return "removed"
	default:
		return "modified"
	}
}

// ChangeEvent describes the last change in a debounced burst.
type ChangeEvent struct {
	Type  EventType
	Path  string
	Count int
}

// Options configures a Watcher.
type Options struct {
	Path      string
	Delay     time.Duration
	Scheduler gallery.Scheduler
	Logger    *logger.Logger
}

// Watcher reports changes to one file. The parent directory is watched so
// editors that replace the file through a rename are still seen.
type Watcher struct {
	path      string
	delay     time.Duration
	scheduler gallery.Scheduler
	log       *logger.Logger
	onChange  func(ChangeEvent)

	fs *fsnotify.Watcher

	mu      sync.Mutex
	timer   gallery.Timer
	gen     uint64
	pending ChangeEvent
	closed  bool
}

// New creates a watcher for opts.Path. onChange runs on a timer goroutine and
// must hand work to its owner rather than touch UI state.
func New(opts Options, onChange func(ChangeEvent)) (*Watcher, error) {
	if opts.Path == "" {
		return nil, errors.New("watch: path is required")
	}
	if onChange == nil {
		return nil, errors.New("watch: change handler is required")
	}
	abs, err := filepath.Abs(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", opts.Path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = gallery.SystemScheduler{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Watcher{
		path:      abs,
		delay:     delay,
		scheduler: scheduler,
		log:       log.WithComponent("watch").WithFields(map[string]any{"path": abs}),
		onChange:  onChange,
	}, nil
}

// Start begins watching until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err := fs.Add(filepath.Dir(w.path)); err != nil {
		fs.Close()
		return fmt.Errorf("watch: add %s: %w", filepath.Dir(w.path), err)
	}

	w.mu.Lock()
	w.fs = fs
	w.mu.Unlock()

	go w.loop(ctx, fs)
	w.log.Debug("watching for changes")
	return nil
}

func (w *Watcher) loop(ctx context.Context, fs *fsnotify.Watcher) {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return
		case event, ok := <-fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-fs.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "file watcher error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}

	kind := EventTypeModified
	switch {
	case event.Has(fsnotify.Create):
		kind = EventTypeCreated
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		kind = EventTypeRemoved
	case event.Has(fsnotify.Write):
	default:
		// chmod only
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	w.pending.Type = kind
	w.pending.Path = w.path
	w.pending.Count++

	if w.timer != nil {
		w.timer.Stop()
	}
	w.gen++
	gen := w.gen
	w.timer = w.scheduler.AfterFunc(w.delay, func() { w.flush(gen) })
}

func (w *Watcher) flush(gen uint64) {
	w.mu.Lock()
	if w.closed || w.gen != gen || w.pending.Count == 0 {
		w.mu.Unlock()
		return
	}
	event := w.pending
	w.pending = ChangeEvent{}
	w.timer = nil
	w.mu.Unlock()

	w.log.WithFields(map[string]any{"type": event.Type.String(), "events": event.Count}).Debug("change detected")
	w.onChange(event)
}

// Close stops watching and drops any pending notification. It is safe to
// call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.fs != nil {
		return w.fs.Close()
	}
	return nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}
