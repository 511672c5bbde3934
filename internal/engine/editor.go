package engine

import (
	"fmt"

	"github.com/dshills/az/internal/engine/buffer"
	"github.com/dshills/az/internal/engine/clipboard"
	"github.com/dshills/az/internal/engine/cursor"
	"github.com/dshills/az/internal/engine/history"
	"github.com/dshills/az/internal/renderer/viewport"
)

// Re-export commonly used types for convenience.
type (
	// Point represents a row/column position.
	Point = buffer.Point

	// Selection represents the anchor/head selection.
	Selection = cursor.Selection
)

// Logger is the subset of the application logger the editor traces to.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}

// Editor is the state of one editing session over a single document.
type Editor struct {
	// Core components
	buf  *buffer.Buffer
	cur  cursor.Cursor
	sel  cursor.Selection
	clip *clipboard.Clipboard
	cut  clipboard.CutBuffer
	hist *history.History
	view *viewport.Viewport
	sink clipboard.SystemClipboard
	log  Logger

	filename string
	modified bool

	status    string
	statusTTL int
	statusAge int

	// Configuration
	tabSize      int
	undoDepth    int
	screenWidth  int
	screenHeight int
	readOnly     bool

	// Initialization
	initLines []string
}

// New creates an Editor with the given options.
func New(opts ...Option) *Editor {
	e := &Editor{
		tabSize:      DefaultTabSize,
		undoDepth:    DefaultUndoDepth,
		statusTTL:    DefaultStatusTTL,
		screenWidth:  80,
		screenHeight: 24,
		log:          nopLogger{},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.NewBufferFromLines(e.initLines)
	e.initLines = nil
	e.clip = clipboard.New(e.sink)
	e.hist = history.New(e.undoDepth)
	e.view = viewport.NewViewport(1, 1)
	e.Resize(e.screenWidth, e.screenHeight)

	return e
}

// ============================================================================
// Document
// ============================================================================

// Lines returns a copy of the document lines.
func (e *Editor) Lines() []string {
	return e.buf.Lines()
}

// Text returns the document joined with newlines.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// LineCount returns the number of lines. It is always at least 1.
func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

// LineText returns the content of the line at row.
func (e *Editor) LineText(row int) string {
	return e.buf.LineText(row)
}

// LineLen returns the length in bytes of the line at row.
func (e *Editor) LineLen(row int) int {
	return e.buf.LineLen(row)
}

// Load replaces the document, for example with the content of a freshly
// opened file. History and selection are reset and the document is clean.
func (e *Editor) Load(lines []string) {
	e.buf.SetLines(lines)
	e.cur = cursor.Cursor{}
	e.sel = cursor.Selection{}
	e.hist.Clear()
	e.view.ScrollTo(0, e.buf.LineCount())
	e.modified = false
	e.log.Debug("loaded %d lines", e.buf.LineCount())
}

// Filename returns the document's file name, or "" for a new file.
func (e *Editor) Filename() string {
	return e.filename
}

// SetFilename names the document.
func (e *Editor) SetFilename(name string) {
	e.filename = name
}

// Modified reports whether the document has unsaved changes.
func (e *Editor) Modified() bool {
	return e.modified
}

// MarkSaved clears the modified flag after a successful save.
func (e *Editor) MarkSaved() {
	e.modified = false
}

// ReadOnly reports whether mutations are refused.
func (e *Editor) ReadOnly() bool {
	return e.readOnly
}

// ============================================================================
// Cursor & Selection State
// ============================================================================

// Cursor returns the cursor position.
func (e *Editor) Cursor() Point {
	return e.cur.Point()
}

// PreferredColumn returns the column vertical movement aims for.
func (e *Editor) PreferredColumn() int {
	return e.cur.Preferred
}

// Selection returns the current selection. It is only meaningful when
// Active is true.
func (e *Editor) Selection() Selection {
	return e.sel
}

// HasSelection reports whether a selection is active.
func (e *Editor) HasSelection() bool {
	return e.sel.Active
}

// ClipboardFragments returns a copy of the clipboard content.
func (e *Editor) ClipboardFragments() []string {
	return e.clip.Fragments()
}

// CutBufferLen returns the number of fragments waiting in the cut buffer.
func (e *Editor) CutBufferLen() int {
	return e.cut.Len()
}

// UndoCount returns the number of undo steps available.
func (e *Editor) UndoCount() int {
	return e.hist.UndoCount()
}

// RedoCount returns the number of redo steps available.
func (e *Editor) RedoCount() int {
	return e.hist.RedoCount()
}

// ============================================================================
// Status Message
// ============================================================================

// SetStatus shows msg for the configured number of redraws.
func (e *Editor) SetStatus(msg string) {
	e.status = msg
	e.statusAge = e.statusTTL
}

// Statusf formats and shows a status message.
func (e *Editor) Statusf(format string, args ...any) {
	e.SetStatus(fmt.Sprintf(format, args...))
}

// Status returns the current status message and whether it is still
// visible.
func (e *Editor) Status() (string, bool) {
	if e.statusAge <= 0 {
		return "", false
	}
	return e.status, true
}

// TickStatus ages the status message by one redraw.
func (e *Editor) TickStatus() {
	if e.statusAge > 0 {
		e.statusAge--
	}
}

// ============================================================================
// Internal helpers
// ============================================================================

// writable reports ErrReadOnly (and says so) when mutation is refused.
func (e *Editor) writable() error {
	if e.readOnly {
		e.SetStatus("Read-only")
		return ErrReadOnly
	}
	return nil
}

// snapshot captures the document for the undo history.
func (e *Editor) snapshot() history.Snapshot {
	return history.Capture(e.buf, e.cur.Point())
}

// checkpoint takes an undo snapshot ahead of a structural edit.
func (e *Editor) checkpoint() {
	e.hist.BeforeEdit(e.snapshot)
	e.log.Debug("undo saved: %d states", e.hist.UndoCount())
}

// setCursor moves the cursor to p, resets the preferred column and keeps
// it on screen.
func (e *Editor) setCursor(p Point) {
	e.cur = e.cur.MoveTo(e.buf, p)
	e.follow()
}

// follow scrolls the viewport so the cursor is visible.
func (e *Editor) follow() {
	e.cur = e.cur.Clamp(e.buf)
	e.view.EnsureVisible(e.buf, e.cur.Point())
}

// clearSelection drops the selection.
func (e *Editor) clearSelection() {
	e.sel = e.cur.ToSelection()
}

// touch marks the document modified.
func (e *Editor) touch() {
	e.modified = true
}
