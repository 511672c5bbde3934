package watcher

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file using fsnotify.
type FileWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	config  Config
	handler Handler

	// path is the watched file; dir is its directory, the fsnotify watch.
	path string
	dir  string

	// pending coalesces operations until the timer fires.
	pending *pendingEvent

	totalEvents atomic.Int64
	totalErrors atomic.Int64
	lastError   error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// pendingEvent tracks a debounced event.
type pendingEvent struct {
	event Event
	timer *time.Timer
}

// New creates a watcher that delivers changes to handler.
func New(handler Handler, opts ...Option) (*FileWatcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &FileWatcher{
		watcher: fsw,
		config:  config,
		handler: handler,
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch follows path, replacing any file watched before. The file itself
// need not exist yet, but its directory must.
func (w *FileWatcher) Watch(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	if dir != w.dir {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
		}
	}

	w.cancelPending()
	w.path = absPath
	w.dir = dir
	return nil
}

// Unwatch stops following the current file.
func (w *FileWatcher) Unwatch() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.dir == "" {
		return ErrNotWatching
	}

	w.cancelPending()
	err := w.watcher.Remove(w.dir)
	w.path, w.dir = "", ""
	return err
}

// Path returns the watched file, or "".
func (w *FileWatcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Close stops the watcher. Pending events are dropped.
func (w *FileWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.cancelPending()
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

// Stats returns watcher statistics.
func (w *FileWatcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Stats{
		Path:        w.path,
		TotalEvents: w.totalEvents.Load(),
		Errors:      w.totalErrors.Load(),
		LastError:   w.lastError,
	}
}

// processLoop handles incoming fsnotify events.
func (w *FileWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.recordError(err)
		}
	}
}

// handleFSEvent filters events down to the watched file and debounces
// them. Permission changes alone are ignored.
func (w *FileWatcher) handleFSEvent(fsEvent fsnotify.Event) {
	op := convertOp(fsEvent.Op)
	if op == 0 || op == OpChmod {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || filepath.Clean(fsEvent.Name) != w.path {
		return
	}

	now := time.Now()
	if p := w.pending; p != nil {
		p.event.Op |= op
		p.event.Timestamp = now
		p.timer.Reset(w.config.DebounceDelay)
		return
	}

	p := &pendingEvent{event: Event{Path: w.path, Op: op, Timestamp: now}}
	p.timer = time.AfterFunc(w.config.DebounceDelay, func() { w.fire(p) })
	w.pending = p
}

// fire delivers p unless it was cancelled or superseded.
func (w *FileWatcher) fire(p *pendingEvent) {
	w.mu.Lock()
	if w.closed || w.pending != p {
		w.mu.Unlock()
		return
	}
	w.pending = nil
	event := p.event
	w.mu.Unlock()

	w.totalEvents.Add(1)
	if w.handler != nil {
		w.handler(event)
	}
}

// cancelPending drops a pending event. Callers hold mu.
func (w *FileWatcher) cancelPending() {
	if w.pending != nil {
		w.pending.timer.Stop()
		w.pending = nil
	}
}

// convertOp converts fsnotify.Op to watcher.Op.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	if fsOp.Has(fsnotify.Chmod) {
		op |= OpChmod
	}
	return op
}

// recordError records an error in stats.
func (w *FileWatcher) recordError(err error) {
	w.totalErrors.Add(1)
	w.mu.Lock()
	w.lastError = err
	w.mu.Unlock()
}
