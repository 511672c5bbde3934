// Package layout maps buffer coordinates to screen coordinates under soft
// word wrap.
//
// Each buffer line occupies max(1, ceil(len/width)) screen rows. Wrapping
// is by byte count: every byte takes one cell. Only the first row of a line
// carries a line number label.
package layout

import "github.com/dshills/az/internal/engine/buffer"

// Source is the read-only view of a document the mapper needs.
type Source interface {
	LineCount() int
	LineLen(row int) int
}

// RowsFor returns the number of screen rows a line of length bytes takes at
// the given width.
func RowsFor(length, width int) int {
	if width < 1 {
		width = 1
	}
	if length <= 0 {
		return 1
	}
	return (length + width - 1) / width
}

// Mapper converts between buffer and screen coordinates for a text area of
// Width by Height cells. Screen coordinates are relative to the text area,
// not the whole terminal.
type Mapper struct {
	Width  int
	Height int
}

// New creates a mapper. Both dimensions are clamped to at least 1.
func New(width, height int) Mapper {
	return Mapper{Width: max(width, 1), Height: max(height, 1)}
}

// RowsFor returns the number of screen rows a line of length bytes takes.
func (m Mapper) RowsFor(length int) int {
	return RowsFor(length, m.Width)
}

// BufferToScreen returns the screen row and column of p when line top is
// the first line shown. Rows above top yield negative screen rows.
func (m Mapper) BufferToScreen(src Source, top int, p buffer.Point) (row, col int) {
	w := max(m.Width, 1)
	if p.Row >= top {
		for r := top; r < p.Row && r < src.LineCount(); r++ {
			row += m.RowsFor(src.LineLen(r))
		}
	} else {
		for r := p.Row; r < top; r++ {
			row -= m.RowsFor(src.LineLen(r))
		}
	}
	return row + p.Col/w, p.Col % w
}

// ScreenToBuffer returns the buffer position shown at screen cell
// (srow, scol) when line top is the first line shown. The column is clamped
// to the line; rows below the last line resolve to the last line.
func (m Mapper) ScreenToBuffer(src Source, top, srow, scol int) buffer.Point {
	w := max(m.Width, 1)
	n := src.LineCount()
	scol = min(max(scol, 0), w-1)
	if srow < 0 {
		srow = 0
	}
	for r := max(top, 0); r < n; r++ {
		ll := src.LineLen(r)
		rows := m.RowsFor(ll)
		if srow < rows {
			return buffer.Point{Row: r, Col: min(srow*w+scol, ll)}
		}
		srow -= rows
	}
	last := n - 1
	return buffer.Point{Row: last, Col: min(scol, src.LineLen(last))}
}
