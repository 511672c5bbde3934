package engine

import "github.com/dshills/az/internal/engine/cursor"

// Move moves the cursor dy rows and dx columns (each -1, 0 or 1).
// Vertical moves keep the preferred column; horizontal moves wrap across
// line ends. Any cursor-only move clears the selection.
func (e *Editor) Move(dy, dx int) {
	switch {
	case dy < 0:
		e.cur = e.cur.Up(e.buf)
	case dy > 0:
		e.cur = e.cur.Down(e.buf)
	}
	switch {
	case dx < 0:
		e.cur = e.cur.Left(e.buf)
	case dx > 0:
		e.cur = e.cur.Right(e.buf)
	}
	e.clearSelection()
	e.follow()
}

// Home moves the cursor to the start of the line.
func (e *Editor) Home() {
	e.cur = e.cur.Home()
	e.clearSelection()
	e.follow()
}

// End moves the cursor to the end of the line.
func (e *Editor) End() {
	e.cur = e.cur.End(e.buf)
	e.clearSelection()
	e.follow()
}

// PageUp scrolls one screen up and moves the cursor with it.
func (e *Editor) PageUp() {
	row := e.view.PageUp(e.cur.Row, e.buf.LineCount())
	e.page(row)
}

// PageDown scrolls one screen down and moves the cursor with it.
func (e *Editor) PageDown() {
	row := e.view.PageDown(e.cur.Row, e.buf.LineCount())
	e.page(row)
}

// page moves the cursor to row, keeping the preferred column.
func (e *Editor) page(row int) {
	e.cur = e.cur.MoveVertical(e.buf, row-e.cur.Row)
	e.clearSelection()
	e.follow()
}

// MoveTo puts the cursor at p, clamped to the document, and clears the
// selection.
func (e *Editor) MoveTo(p Point) {
	e.setCursor(p)
	e.clearSelection()
}

// SelectAll selects the whole document.
func (e *Editor) SelectAll() {
	e.sel = cursor.NewSelection(Point{}, e.buf.End())
	e.SetStatus("All selected")
}

// Select activates a selection from anchor to head. The cursor is left
// where it is.
func (e *Editor) Select(anchor, head Point) {
	e.sel = cursor.NewSelection(e.buf.Clamp(anchor), e.buf.Clamp(head))
}
