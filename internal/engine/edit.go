package engine

import "strings"

// ============================================================================
// Typing
// ============================================================================

// InsertChar types ch at the cursor, replacing an active selection.
// A newline is treated as InsertNewline. Typed characters share one undo
// checkpoint per word: a new one is taken after each space or tab.
func (e *Editor) InsertChar(ch byte) error {
	if ch == '\n' || ch == '\r' {
		return e.InsertNewline()
	}
	if err := e.writable(); err != nil {
		return err
	}
	e.typeChar(ch)
	e.follow()
	return nil
}

// typeChar inserts ch through the typing checkpoint policy.
func (e *Editor) typeChar(ch byte) {
	if e.hist.BeforeTyping(ch, e.snapshot) {
		e.log.Debug("undo saved: %d states", e.hist.UndoCount())
	}
	if e.sel.Active {
		e.deleteSelection()
	}
	p := e.buf.InsertChar(e.cur.Point(), ch)
	e.cur = e.cur.MoveTo(e.buf, p)
	e.clearSelection()
	e.touch()
}

// InsertTab inserts the configured number of spaces as one edit.
func (e *Editor) InsertTab() error {
	if err := e.writable(); err != nil {
		return err
	}
	e.checkpoint()
	if e.sel.Active {
		e.deleteSelection()
	}
	p := e.buf.InsertString(e.cur.Point(), strings.Repeat(" ", e.tabSize))
	e.setCursor(p)
	e.clearSelection()
	e.touch()
	return nil
}

// InsertNewline splits the line at the cursor, replacing an active
// selection. The cursor moves to the start of the new line.
func (e *Editor) InsertNewline() error {
	if err := e.writable(); err != nil {
		return err
	}
	e.checkpoint()
	e.splitLine()
	e.follow()
	return nil
}

// splitLine breaks the line at the cursor without taking a checkpoint.
func (e *Editor) splitLine() {
	if e.sel.Active {
		e.deleteSelection()
	}
	p := e.cur.Point()
	e.buf.SplitAt(p)
	e.cur = e.cur.MoveTo(e.buf, Point{Row: p.Row + 1})
	e.clearSelection()
	e.touch()
}

// ============================================================================
// Deletion
// ============================================================================

// Backspace deletes the active selection, or the byte before the cursor,
// or joins the line with the previous one when the cursor is at column 0.
// At the start of the document it does nothing.
func (e *Editor) Backspace() error {
	if err := e.writable(); err != nil {
		return err
	}
	p := e.cur.Point()
	switch {
	case e.sel.Active:
		e.checkpoint()
		e.deleteSelection()
	case p.Col > 0:
		e.checkpoint()
		at := e.buf.DeleteRange(Point{Row: p.Row, Col: p.Col - 1}, p)
		e.cur = e.cur.MoveTo(e.buf, at)
		e.touch()
	case p.Row > 0:
		e.checkpoint()
		join, _ := e.buf.MergeWithPrev(p.Row)
		e.cur = e.cur.MoveTo(e.buf, join)
		e.touch()
	default:
		return nil
	}
	e.follow()
	return nil
}

// DeleteChar deletes the active selection, or the byte under the cursor,
// or joins the next line onto this one when the cursor is at the end of
// the line. At the end of the document it does nothing.
func (e *Editor) DeleteChar() error {
	if err := e.writable(); err != nil {
		return err
	}
	p := e.cur.Point()
	switch {
	case e.sel.Active:
		e.checkpoint()
		e.deleteSelection()
	case p.Col < e.buf.LineLen(p.Row):
		e.checkpoint()
		e.buf.DeleteRange(p, Point{Row: p.Row, Col: p.Col + 1})
		e.touch()
	case p.Row < e.buf.LineCount()-1:
		e.checkpoint()
		e.buf.MergeWithNext(p.Row)
		e.touch()
	default:
		return nil
	}
	e.follow()
	return nil
}

// DeleteSelection removes the selected text and puts the cursor where it
// began. Without an active selection it does nothing.
func (e *Editor) DeleteSelection() error {
	if !e.sel.Active {
		return nil
	}
	if err := e.writable(); err != nil {
		return err
	}
	e.checkpoint()
	e.deleteSelection()
	e.follow()
	return nil
}

// deleteSelection removes the selected span without taking a checkpoint.
func (e *Editor) deleteSelection() {
	lo, hi := e.sel.Range()
	at := e.buf.DeleteRange(lo, hi)
	e.cur = e.cur.MoveTo(e.buf, at)
	e.clearSelection()
	e.touch()
}
