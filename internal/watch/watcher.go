// Package watch re-triggers work when puzzle input files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"gearscan/internal/logging"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher watches a directory for writes to .txt input files and calls onChange once
// per file after the writes have settled for the debounce interval.
type Watcher struct {
	fsw      *fsnotify.Watcher
	dir      string
	debounce time.Duration
	onChange func(path string)
	logger   *zap.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long a file must stay quiet before onChange fires.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the parent logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) { w.logger = logging.For(l, logging.CategoryWatch) }
}

// New creates a Watcher on dir. onChange runs on the goroutine calling Run.
func New(dir string, onChange func(path string), opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:      fsw,
		dir:      dir,
		debounce: 250 * time.Millisecond,
		onChange: onChange,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run delivers change notifications until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	d := newDebouncer(w.debounce, done)
	defer d.stop()

	w.logger.Info("watching inputs", zap.String("dir", w.dir), zap.Duration("debounce", w.debounce))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			w.logger.Debug("input event", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			d.schedule(ev.Name)

		case f := <-d.fired:
			if !d.accept(f) {
				w.logger.Debug("dropping superseded change", zap.String("path", f.path))
				continue
			}
			w.onChange(f.path)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	return filepath.Ext(ev.Name) == ".txt"
}

// firing is a debounce timer reporting that path has been quiet since generation gen
// was scheduled.
type firing struct {
	path string
	gen  uint64
}

type pendingChange struct {
	timer *time.Timer
	gen   uint64
}

// debouncer keeps one timer per path. A timer that already fired but was superseded
// before its firing was accepted is recognised by its stale generation.
type debouncer struct {
	delay   time.Duration
	done    <-chan struct{}
	fired   chan firing
	pending map[string]*pendingChange
	gen     uint64
}

func newDebouncer(delay time.Duration, done <-chan struct{}) *debouncer {
	return &debouncer{
		delay:   delay,
		done:    done,
		fired:   make(chan firing),
		pending: make(map[string]*pendingChange),
	}
}

func (d *debouncer) schedule(path string) {
	if p, ok := d.pending[path]; ok {
		p.timer.Stop()
	}
	d.gen++
	f := firing{path: path, gen: d.gen}
	d.pending[path] = &pendingChange{
		gen: f.gen,
		timer: time.AfterFunc(d.delay, func() {
			select {
			case d.fired <- f:
			case <-d.done:
			}
		}),
	}
}

// accept reports whether f is the latest firing for its path, and forgets the path
// if so.
func (d *debouncer) accept(f firing) bool {
	p, ok := d.pending[f.path]
	if !ok || p.gen != f.gen {
		return false
	}
	delete(d.pending, f.path)
	return true
}

func (d *debouncer) stop() {
	for _, p := range d.pending {
		p.timer.Stop()
	}
}
