// Package app provides the main application structure and coordination
// for the az editor. It wires the editing engine, file I/O, the terminal
// backend and the renderer together and runs the event loop.
package app

import (
	"io"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dshills/az/internal/engine"
	"github.com/dshills/az/internal/engine/clipboard"
	"github.com/dshills/az/internal/fileio"
	"github.com/dshills/az/internal/fileio/watcher"
	"github.com/dshills/az/internal/input/mouse"
	"github.com/dshills/az/internal/renderer"
	"github.com/dshills/az/internal/renderer/backend"
	"github.com/dshills/az/internal/renderer/core"
	"github.com/google/uuid"
)

// Application is the central coordinator for one editing session.
// It owns the editor and runs the main event loop.
type Application struct {
	mu sync.RWMutex

	// Editor components
	editor   *engine.Editor
	mouse    *mouse.Handler
	files    *fileio.Files
	renderer *renderer.Renderer
	backend  backend.Backend
	theme    core.Theme
	watcher  *watcher.FileWatcher

	// diskLines is the file content as last loaded or saved, used to tell
	// our own writes from other programs'.
	diskLines []string

	// Interaction state, touched only by the event loop
	prompt    *prompt
	quitArmed bool
	pasting   bool

	// Observability
	session   string
	logger    *Logger
	logCloser io.Closer
	metrics   *Metrics

	// State
	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// Filename is the file to edit. Empty starts an unnamed document.
	Filename string

	// Debug enables debug logging to LogPath.
	Debug bool

	// LogPath is the debug log file. Defaults to DefaultLogPath() when
	// Debug is set.
	LogPath string

	// LogLevel sets the logging verbosity when logging is enabled.
	LogLevel string

	// ReadOnly refuses edits and saves.
	ReadOnly bool

	// TabSize, UndoDepth and StatusTTL override the editor defaults when
	// positive.
	TabSize   int
	UndoDepth int
	StatusTTL int

	// Watch reports changes other programs make to the file on disk.
	Watch bool

	// Colors overrides theme colors by name (gutter, selection, status,
	// error) with hex values.
	Colors map[string]string

	// FS is the file system documents are loaded from and saved to.
	// Nil uses the OS.
	FS fileio.FS

	// Clipboard receives copies. Nil uses the OS clipboard when one is
	// available.
	Clipboard clipboard.SystemClipboard

	// Logger overrides the logger built from Debug and LogPath.
	Logger *Logger
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		metrics: NewMetrics(),
	}

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Logging
	if err := app.setupLogging(); err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.session = uuid.NewString()
	app.logger = app.logger.WithField("session", app.session)
	log := app.Logger().WithComponent("app")
	log.Info("=== az started ===")

	// 2. Theme
	theme, err := core.DefaultTheme().WithColors(app.opts.Colors)
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}
	app.theme = theme

	// 3. Document
	app.files = fileio.New(app.opts.FS)
	lines := []string{""}
	if name := app.opts.Filename; name != "" {
		lines, err = fileio.LoadOrEmpty(app.files, name)
		switch {
		case err == nil:
			app.diskLines = slices.Clone(lines)
			log.Info("loaded %s: %d lines", name, len(lines))
		case fileio.IsNotExist(err):
			log.Info("new file %s", name)
		default:
			log.Warn("%v", NewOperationError("load", name, err).WithContext("starting empty"))
		}
	}

	// 4. Editor
	editorOpts := []engine.Option{
		engine.WithLines(lines),
		engine.WithFilename(app.opts.Filename),
		engine.WithLogger(app.Logger().WithComponent("engine")),
		engine.WithTabSize(app.opts.TabSize),
		engine.WithUndoDepth(app.opts.UndoDepth),
		engine.WithStatusTTL(app.opts.StatusTTL),
	}
	if sink := app.clipboardSink(); sink != nil {
		editorOpts = append(editorOpts, engine.WithSystemClipboard(sink))
	}
	if app.opts.ReadOnly {
		editorOpts = append(editorOpts, engine.WithReadOnly())
	}
	app.editor = engine.New(editorOpts...)

	// 5. Mouse
	app.mouse = mouse.NewHandler(mouse.DefaultConfig())

	return nil
}

// setupLogging picks the logger: an explicit one, a debug log file, or
// nothing.
func (app *Application) setupLogging() error {
	if app.opts.Logger != nil {
		app.logger = app.opts.Logger
		return nil
	}
	if !app.opts.Debug && app.opts.LogPath == "" {
		app.logger = NullLogger
		return nil
	}

	path := app.opts.LogPath
	if path == "" {
		path = DefaultLogPath()
	}
	level := ParseLogLevel(app.opts.LogLevel)
	if app.opts.Debug {
		level = LogLevelDebug
	}
	logger, closer, err := OpenLogFile(path, level)
	if err != nil {
		return err
	}
	app.logger = logger
	app.logCloser = closer
	return nil
}

// clipboardSink returns where copies are mirrored, or nil.
func (app *Application) clipboardSink() clipboard.SystemClipboard {
	if app.opts.Clipboard != nil {
		return app.opts.Clipboard
	}
	if clipboard.SystemAvailable() {
		return clipboard.OSClipboard{}
	}
	app.LogDebug("no system clipboard; copies stay in the editor")
	return nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until the user quits (ErrQuit) or Shutdown is called (nil).
func (app *Application) Run() error {
	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil {
		return ErrNoBackend
	}

	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()
	defer app.stop()

	if app.opts.Watch {
		app.startWatcher(b)
		defer app.stopWatcher()
	}

	app.renderer = renderer.New(b, renderer.Options{Theme: app.theme})
	w, h := b.Size()
	app.editor.Resize(w, h)
	app.LogDebug("screen %dx%d", w, h)

	err := app.eventLoop()
	app.LogInfo("exiting: %s", app.metrics.Snapshot())
	return err
}

// Shutdown asks a running event loop to return.
func (app *Application) Shutdown() {
	if !app.running.Load() {
		return
	}
	app.stop()
}

// Quit ends the session. Unless force is set it refuses with
// ErrUnsavedChanges while the document is modified.
func (app *Application) Quit(force bool) error {
	if !force && app.editor.Modified() {
		return ErrUnsavedChanges
	}
	app.Shutdown()
	return nil
}

// Interrupt delivers an OS signal to the event loop, which ends the
// session. Safe to call from another goroutine.
func (app *Application) Interrupt(sig os.Signal) {
	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil {
		return
	}
	b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: sig})
}

// Close releases the debug log. It is safe to call more than once.
func (app *Application) Close() error {
	if app.logCloser == nil {
		return nil
	}
	err := app.logCloser.Close()
	app.logCloser = nil
	app.logger = NullLogger
	return err
}

// stop closes the done channel once.
func (app *Application) stop() {
	app.doneOnce.Do(func() { close(app.done) })
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Session returns the identifier tagged on every log line of this run.
func (app *Application) Session() string {
	return app.session
}

// Editor returns the editing session.
func (app *Application) Editor() *engine.Editor {
	return app.editor
}

// Theme returns the colors in use.
func (app *Application) Theme() core.Theme {
	return app.theme
}
