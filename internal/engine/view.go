package engine

import (
	"github.com/dshills/az/internal/engine/syntax"
	"github.com/dshills/az/internal/renderer/layout"
)

// ============================================================================
// Screen Geometry
// ============================================================================

// Resize adapts the text area to a screen of the given size. The text
// area is the screen minus the gutter on the left and the status bar and
// help line at the bottom.
func (e *Editor) Resize(screenWidth, screenHeight int) {
	e.screenWidth = max(screenWidth, GutterWidth+1)
	e.screenHeight = max(screenHeight, ChromeHeight+1)
	e.view.Resize(e.screenWidth-GutterWidth, e.screenHeight-ChromeHeight)
	e.follow()
}

// ScreenSize returns the screen size last given to Resize.
func (e *Editor) ScreenSize() (width, height int) {
	return e.screenWidth, e.screenHeight
}

// TextWidth returns the number of text columns per screen row.
func (e *Editor) TextWidth() int {
	return e.view.Width()
}

// TextHeight returns the number of screen rows in the text area.
func (e *Editor) TextHeight() int {
	return e.view.Height()
}

// StatusRow returns the screen row of the status bar.
func (e *Editor) StatusRow() int {
	return e.screenHeight - ChromeHeight
}

// HelpRow returns the screen row of the help line.
func (e *Editor) HelpRow() int {
	return e.screenHeight - 1
}

// TopLine returns the first document line shown.
func (e *Editor) TopLine() int {
	return e.view.TopLine()
}

// Scroll moves the view by delta lines without moving the cursor.
func (e *Editor) Scroll(delta int) {
	e.view.ScrollBy(delta, e.buf.LineCount())
}

// VisibleRows lays out the text area with the selection and the current
// diagnostic highlighted.
func (e *Editor) VisibleRows() []layout.ScreenRow {
	var spans []layout.Span
	if e.sel.Active {
		lo, hi := e.sel.Range()
		spans = append(spans, layout.Span{Kind: layout.HighlightSelection, Start: lo, End: hi})
	}
	if d, ok := e.Diagnostic(); ok {
		spans = append(spans, diagnosticSpan(e, d))
	}
	return e.view.Mapper().VisibleRows(e.buf, e.view.TopLine(), spans...)
}

// CursorScreen returns the screen cell of the cursor, gutter included, and
// whether it is inside the text area.
func (e *Editor) CursorScreen() (x, y int, ok bool) {
	row, col := e.view.Mapper().BufferToScreen(e.buf, e.view.TopLine(), e.cur.Point())
	if row < 0 || row >= e.view.Height() {
		return 0, 0, false
	}
	return col + GutterWidth, row, true
}

// ============================================================================
// Diagnostics
// ============================================================================

// Language returns the syntax category chosen by the file name.
func (e *Editor) Language() syntax.Language {
	return syntax.DetectLanguage(e.filename)
}

// Diagnostic returns the first syntax problem in the document, if any.
// It is recomputed on every call.
func (e *Editor) Diagnostic() (syntax.Diagnostic, bool) {
	return syntax.CheckFile(e.filename, e.buf)
}

// JumpToDiagnostic moves the cursor to the start of the current syntax
// problem.
func (e *Editor) JumpToDiagnostic() bool {
	d, ok := e.Diagnostic()
	if !ok {
		return false
	}
	e.setCursor(Point{Row: d.Line - 1, Col: d.ColStart})
	e.clearSelection()
	e.SetStatus("Jumped to error line")
	return true
}

// diagnosticSpan converts d to a highlight. A whole-line diagnostic
// covers the entire line.
func diagnosticSpan(e *Editor, d syntax.Diagnostic) layout.Span {
	row := d.Line - 1
	start := Point{Row: row, Col: d.ColStart}
	end := Point{Row: row, Col: d.ColEnd}
	if d.WholeLine() {
		start.Col = 0
		end.Col = e.buf.LineLen(row)
	}
	return layout.Span{Kind: layout.HighlightError, Start: start, End: end}
}
