package engine

import (
	"github.com/dshills/az/internal/input/mouse"
)

// The Editor is the surface the mouse handler drives.
var _ mouse.Target = (*Editor)(nil)

// HitTest resolves a screen cell into a screen region and, over the text
// area or the gutter, a document position. Gutter cells resolve to column 0.
func (e *Editor) HitTest(pos mouse.Position) mouse.Hit {
	switch {
	case pos.Y < 0 || pos.X < 0:
		return mouse.Hit{Region: mouse.RegionNone}
	case pos.Y == e.StatusRow():
		return mouse.Hit{Region: mouse.RegionStatus}
	case pos.Y > e.StatusRow():
		return mouse.Hit{Region: mouse.RegionHelp}
	}
	m := e.view.Mapper()
	if pos.X < GutterWidth {
		p := m.ScreenToBuffer(e.buf, e.view.TopLine(), pos.Y, 0)
		return mouse.Hit{Region: mouse.RegionGutter, Point: Point{Row: p.Row}}
	}
	p := m.ScreenToBuffer(e.buf, e.view.TopLine(), pos.Y, pos.X-GutterWidth)
	return mouse.Hit{Region: mouse.RegionText, Point: p}
}

// PlaceCursor moves the cursor to p.
func (e *Editor) PlaceCursor(p Point) {
	e.setCursor(p)
}

// SetSelection stores the selection pair. An inactive pair records the
// anchor of a press that has not become a drag yet.
func (e *Editor) SetSelection(anchor, head Point, active bool) {
	e.sel = e.sel.Collapse(e.buf.Clamp(anchor)).Extend(e.buf.Clamp(head))
	e.sel.Active = active
}

// FinishSelection copies a completed mouse selection.
func (e *Editor) FinishSelection() {
	if !e.sel.Active {
		return
	}
	e.copySelection()
	e.SetStatus("Copied (mouse selection)")
}

// ClearSelection deactivates the selection.
func (e *Editor) ClearSelection() {
	e.clearSelection()
}

// PasteAt moves the cursor to p and pastes the clipboard there.
func (e *Editor) PasteAt(p Point) {
	e.setCursor(p)
	e.clearSelection()
	_ = e.Paste()
}
