package engine

import "github.com/dshills/az/internal/engine/history"

// Undo restores the newest checkpoint. The document is rebuilt from the
// snapshot, the cursor returns to where it was and the selection is
// cleared. The document counts as modified afterwards.
func (e *Editor) Undo() error {
	if err := e.writable(); err != nil {
		return err
	}
	if !e.hist.CanUndo() {
		e.SetStatus("Nothing to undo")
		return ErrNothingToUndo
	}
	s, err := e.hist.Undo(e.snapshot())
	if err != nil {
		return err
	}
	e.restore(s)
	e.Statusf("Undo: %d left", e.hist.UndoCount())
	e.log.Debug("undo performed: now %d states", e.hist.UndoCount())
	return nil
}

// Redo reapplies the state most recently undone. Any edit made since
// then discards it.
func (e *Editor) Redo() error {
	if err := e.writable(); err != nil {
		return err
	}
	if !e.hist.CanRedo() {
		e.SetStatus("Nothing to redo")
		return ErrNothingToRedo
	}
	s, err := e.hist.Redo(e.snapshot())
	if err != nil {
		return err
	}
	e.restore(s)
	e.Statusf("Redo: %d left", e.hist.RedoCount())
	e.log.Debug("redo performed: now %d states", e.hist.UndoCount())
	return nil
}

// restore replaces the document and cursor with s.
func (e *Editor) restore(s history.Snapshot) {
	p := s.Restore(e.buf)
	e.cur = e.cur.MoveTo(e.buf, p)
	e.clearSelection()
	e.touch()
	e.follow()
}
