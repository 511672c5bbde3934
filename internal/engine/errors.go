package engine

import (
	"errors"

	"github.com/dshills/az/internal/engine/clipboard"
	"github.com/dshills/az/internal/engine/history"
	"github.com/dshills/az/internal/engine/search"
)

// Errors returned by editor operations.
var (
	// ErrReadOnly indicates a mutation was attempted on a read-only editor.
	ErrReadOnly = errors.New("editor is read-only")
)

// Re-exported sub-package errors, so callers need only import engine.
var (
	ErrNothingToUndo  = history.ErrNothingToUndo
	ErrNothingToRedo  = history.ErrNothingToRedo
	ErrNothingToCopy  = clipboard.ErrNothingToCopy
	ErrClipboardEmpty = clipboard.ErrClipboardEmpty
	ErrCutBufferEmpty = clipboard.ErrCutBufferEmpty
	ErrEmptyQuery     = search.ErrEmptyQuery
	ErrNotFound       = search.ErrNotFound
	ErrInvalidMode    = search.ErrInvalidMode
)
