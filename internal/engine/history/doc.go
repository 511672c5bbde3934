// Package history provides snapshot-based undo and redo.
//
// Every checkpoint is a full copy of the document lines plus the cursor
// position. Checkpoints live on a bounded Stack: when it is full the
// oldest checkpoint is evicted, so undo depth is capped while memory use
// stays proportional to depth times document size.
//
// Checkpoint Policy:
//
// History decides when a checkpoint is due:
//
//   - Typing takes one when the stack is empty or the previous typed
//     character was a space or tab, so a run of characters forming one word
//     is undone in a single step.
//   - Structural edits (newline, backspace, delete, paste...) always take
//     one and end the current word.
//
// Redo:
//
// Undo keeps the state it replaced on a redo stack of the same depth. Redo
// swaps it back. Any new checkpoint clears the redo stack.
//
// Thread Safety:
//
// History is owned by a single editor and is not safe for concurrent use.
package history
