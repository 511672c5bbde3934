package engine

import (
	"github.com/dshills/az/internal/engine/clipboard"
	"github.com/dshills/az/internal/engine/history"
)

// Default configuration values.
const (
	DefaultTabSize   = 4
	DefaultUndoDepth = history.DefaultDepth
	DefaultStatusTTL = 4

	// GutterWidth is the line number label (four digits and a space)
	// plus one separator column.
	GutterWidth = 6

	// ChromeHeight is the number of screen rows below the text area: the
	// status bar and the help line.
	ChromeHeight = 2
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithLines sets the initial content of the document.
func WithLines(lines []string) Option {
	return func(e *Editor) {
		e.initLines = lines
	}
}

// WithFilename names the document. The name selects the syntax checker
// and is the default save target.
func WithFilename(name string) Option {
	return func(e *Editor) {
		e.filename = name
	}
}

// WithTabSize sets how many spaces the tab key inserts.
func WithTabSize(size int) Option {
	return func(e *Editor) {
		if size > 0 {
			e.tabSize = size
		}
	}
}

// WithUndoDepth sets the maximum number of undo snapshots kept.
func WithUndoDepth(depth int) Option {
	return func(e *Editor) {
		if depth > 0 {
			e.undoDepth = depth
		}
	}
}

// WithStatusTTL sets how many redraws a status message stays visible.
func WithStatusTTL(redraws int) Option {
	return func(e *Editor) {
		if redraws > 0 {
			e.statusTTL = redraws
		}
	}
}

// WithViewport sets the initial screen size, including the gutter and the
// two rows below the text area.
func WithViewport(screenWidth, screenHeight int) Option {
	return func(e *Editor) {
		e.screenWidth = screenWidth
		e.screenHeight = screenHeight
	}
}

// WithSystemClipboard mirrors every copy to sink.
func WithSystemClipboard(sink clipboard.SystemClipboard) Option {
	return func(e *Editor) {
		e.sink = sink
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithReadOnly creates a read-only editor.
// Mutating operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Editor) {
		e.readOnly = true
	}
}
