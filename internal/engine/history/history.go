package history

import "errors"

// DefaultDepth is the number of undo steps kept when no depth is given.
const DefaultDepth = 100

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// History manages undo/redo state for a document.
//
// It decides when a checkpoint is taken: a run of typed characters shares a
// single snapshot that ends at whitespace, while every structural edit gets
// its own. Snapshots are produced lazily through a capture function so no
// copy is made when no checkpoint is due.
type History struct {
	undo *Stack
	redo *Stack

	// boundary is set when the next typed character starts a new word.
	boundary bool
}

// New creates a history keeping up to depth undo steps.
func New(depth int) *History {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &History{
		undo:     NewStack(depth),
		redo:     NewStack(depth),
		boundary: true,
	}
}

// Save pushes a checkpoint and drops any redo state.
func (h *History) Save(s Snapshot) {
	h.undo.Push(s)
	h.redo.Clear()
}

// BeforeTyping is called before ch is inserted by typing. It takes a
// checkpoint when the previous edit ended a word or when there is nothing
// to undo yet, and reports whether it did.
func (h *History) BeforeTyping(ch byte, capture func() Snapshot) bool {
	saved := false
	if h.boundary || h.undo.Len() == 0 {
		h.Save(capture())
		saved = true
	} else {
		h.redo.Clear()
	}
	h.boundary = ch == ' ' || ch == '\t'
	return saved
}

// BeforeEdit takes a checkpoint ahead of a structural edit and makes the
// next typed character start a fresh one.
func (h *History) BeforeEdit(capture func() Snapshot) {
	h.Save(capture())
	h.boundary = true
}

// Join makes the next typed character extend the newest checkpoint rather
// than start its own. It is used when an edit types text on the user's
// behalf right after checkpointing.
func (h *History) Join() {
	if h.undo.Len() > 0 {
		h.boundary = false
	}
}

// Break makes the next typed character start a fresh checkpoint.
func (h *History) Break() {
	h.boundary = true
}

// Undo pops the newest checkpoint. The current state is kept for Redo.
func (h *History) Undo(current Snapshot) (Snapshot, error) {
	s, ok := h.undo.Pop()
	if !ok {
		return Snapshot{}, ErrNothingToUndo
	}
	h.redo.Push(current)
	h.boundary = true
	return s, nil
}

// Redo pops the newest undone state. The current state goes back onto the
// undo stack.
func (h *History) Redo(current Snapshot) (Snapshot, error) {
	s, ok := h.redo.Pop()
	if !ok {
		return Snapshot{}, ErrNothingToRedo
	}
	h.undo.Push(current)
	h.boundary = true
	return s, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return h.undo.Len() > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return h.redo.Len() > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return h.undo.Len()
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return h.redo.Len()
}

// Depth returns the maximum number of undo steps kept.
func (h *History) Depth() int {
	return h.undo.Max()
}

// Clear drops all undo and redo state.
func (h *History) Clear() {
	h.undo.Clear()
	h.redo.Clear()
	h.boundary = true
}
