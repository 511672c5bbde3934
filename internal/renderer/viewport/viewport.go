// Package viewport tracks which part of the document is on screen.
package viewport

import (
	"github.com/dshills/az/internal/engine/buffer"
	"github.com/dshills/az/internal/renderer/layout"
)

// Viewport represents the visible portion of the buffer: the first visible
// line and the size of the text area in screen cells.
type Viewport struct {
	topLine int
	width   int
	height  int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Width returns the text area width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the text area height.
func (v *Viewport) Height() int {
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	return v.topLine
}

// Mapper returns a layout mapper for the current size.
func (v *Viewport) Mapper() layout.Mapper {
	return layout.New(v.width, v.height)
}

// Resize updates the viewport size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// ScrollTo makes line the first visible line, clamped to the document.
func (v *Viewport) ScrollTo(line, lineCount int) {
	v.topLine = min(max(line, 0), max(lineCount-1, 0))
}

// ScrollBy scrolls by a delta number of lines.
func (v *Viewport) ScrollBy(deltaLines, lineCount int) {
	v.ScrollTo(v.topLine+deltaLines, lineCount)
}

// IsLineVisible returns true if the first row of line is on screen.
func (v *Viewport) IsLineVisible(src layout.Source, line int) bool {
	if line < v.topLine {
		return false
	}
	row, _ := v.Mapper().BufferToScreen(src, v.topLine, buffer.Point{Row: line})
	return row < v.height
}

// EnsureVisible scrolls minimally so that p is on screen. The cursor line
// is kept within [top, top+height) and, because lines wrap, the top is
// advanced further while the wrapped row holding p is below the text area.
// Returns true if scrolling occurred.
func (v *Viewport) EnsureVisible(src layout.Source, p buffer.Point) bool {
	old := v.topLine
	if p.Row < v.topLine {
		v.topLine = p.Row
	}
	if p.Row-v.topLine >= v.height {
		v.topLine = p.Row - v.height + 1
	}
	m := v.Mapper()
	for v.topLine < p.Row {
		row, _ := m.BufferToScreen(src, v.topLine, p)
		if row < v.height {
			break
		}
		v.topLine++
	}
	return v.topLine != old
}

// PageUp scrolls one screen up and returns the row the cursor should move
// to from row.
func (v *Viewport) PageUp(row, lineCount int) int {
	v.ScrollBy(-v.height, lineCount)
	return max(row-v.height, 0)
}

// PageDown scrolls one screen down and returns the row the cursor should
// move to from row.
func (v *Viewport) PageDown(row, lineCount int) int {
	v.ScrollBy(v.height, lineCount)
	return min(row+v.height, max(lineCount-1, 0))
}
