// ============================================================================
// koy - Configuration Language Toolchain
// ============================================================================
//
// Package:     watch
// Description: Re-evaluates a koy file whenever it changes on disk
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	koyerror "github.com/msto63/koy/foundation/core/error"
	koylog "github.com/msto63/koy/foundation/core/log"
	"github.com/msto63/koy/foundation/koy"
	"github.com/msto63/koy/foundation/koy/interp"
)

// DefaultDebounce is the quiet period after the last change before a file
// is evaluated again
const DefaultDebounce = 200 * time.Millisecond

// Result is the outcome of one evaluation
type Result struct {
	Path     string
	Value    interp.Value
	Err      error
	Duration time.Duration
	Time     time.Time
}

// Options configures a Watcher
type Options struct {
	Engine   *koy.Engine
	Logger   *koylog.Logger
	Debounce time.Duration

	// OnResult receives every evaluation, including the initial one
	OnResult func(Result)
}

// Watcher evaluates a single .koy file and re-evaluates it on change
type Watcher struct {
	mu       sync.Mutex
	path     string
	dir      string
	engine   *koy.Engine
	logger   *koylog.Logger
	debounce time.Duration
	onResult func(Result)
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	stopOnce sync.Once
	running  bool
}

// New creates a watcher for path. A missing .koy suffix is appended.
func New(path string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(koy.ResolvePath(path))
	if err != nil {
		return nil, koyerror.Wrap(err, "failed to resolve watch path").
			WithCode(koyerror.CodeInvalidInput).
			WithDetail("path", path)
	}

	logger := opts.Logger
	if logger == nil {
		logger = koylog.Nop()
	}
	engine := opts.Engine
	if engine == nil {
		engine = koy.NewEngine(koy.Options{Logger: logger})
	}
	debounce := opts.Debounce
	if debounce < 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		engine:   engine,
		logger:   logger.WithFields(koylog.Fields{"component": "watch", "file": filepath.Base(abs)}),
		debounce: debounce,
		onResult: opts.OnResult,
		stopCh:   make(chan struct{}),
	}, nil
}

// Path returns the absolute path of the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Evaluate runs the file once and reports the result
func (w *Watcher) Evaluate() Result {
	start := time.Now()
	value, err := w.engine.RunFile(w.path)
	result := Result{
		Path:     w.path,
		Value:    value,
		Err:      err,
		Duration: time.Since(start),
		Time:     time.Now(),
	}

	if err != nil {
		w.logger.Debug("Evaluation failed", koylog.Err(err))
	} else {
		w.logger.Debug("Evaluated", koylog.String("type", value.TypeName()))
	}
	if w.onResult != nil {
		w.onResult(result)
	}
	return result
}

// Start begins watching. The directory is watched rather than the file so
// that editors replacing the file on save are still seen.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return koyerror.Wrap(err, "failed to create watcher").WithCode(koyerror.CodeInternal)
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return koyerror.Wrap(err, "failed to watch directory").
			WithCode(koyerror.CodeInternal).
			WithDetail("dir", w.dir)
	}

	w.watcher = watcher
	w.running = true
	w.logger.Info("Started watching", koylog.String("dir", w.dir))

	go w.watchLoop(ctx)
	return nil
}

// Run evaluates the file, then watches it until ctx is cancelled or Stop is
// called
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	w.Evaluate()

	select {
	case <-ctx.Done():
	case <-w.stopCh:
	}
	return nil
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

// IsRunning reports whether the watch loop is active
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// watchLoop handles file system events. Events are coalesced until the file
// has been quiet for the debounce period.
func (w *Watcher) watchLoop(ctx context.Context) {
	defer func() {
		w.mu.Lock()
		w.running = false
		w.watcher.Close()
		w.mu.Unlock()
	}()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping watcher (context cancelled)")
			return

		case <-w.stopCh:
			w.logger.Info("Stopping watcher (stop signal)")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Trace("File event", koylog.String("op", event.Op.String()))

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.Evaluate()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.ErrorWithErr("Watcher error", err)
		}
	}
}

// relevant reports whether event concerns the watched file's content
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
