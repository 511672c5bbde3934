package cursor

import (
	"fmt"

	"github.com/dshills/az/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Lines is the read-only view of a document a cursor needs to stay in bounds.
// *buffer.Buffer satisfies it.
type Lines interface {
	LineCount() int
	LineLen(row int) int
}

// Cursor is the insertion point in a document.
// Preferred is the column vertical movement tries to return to, so that
// moving through a short line does not lose the original column.
// Cursor is an immutable value type.
type Cursor struct {
	Row       int
	Col       int
	Preferred int
}

// New creates a cursor at row, col with a matching preferred column.
func New(row, col int) Cursor {
	return Cursor{Row: row, Col: col, Preferred: col}
}

// Point returns the cursor position.
func (c Cursor) Point() Point {
	return Point{Row: c.Row, Col: c.Col}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d)", c.Row, c.Col)
}

// MoveTo returns a cursor at p, clamped to the document.
// The preferred column follows the new column.
func (c Cursor) MoveTo(l Lines, p Point) Cursor {
	c.Row, c.Col = p.Row, p.Col
	c = c.Clamp(l)
	c.Preferred = c.Col
	return c
}

// Clamp returns a cursor moved to the nearest valid position.
// The preferred column is left alone.
func (c Cursor) Clamp(l Lines) Cursor {
	n := l.LineCount()
	if c.Row >= n {
		c.Row = n - 1
	}
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if ll := l.LineLen(c.Row); c.Col > ll {
		c.Col = ll
	}
	return c
}

// MoveVertical moves delta rows up (negative) or down (positive).
// The move is refused when the target row does not exist. The column
// becomes min(Preferred, len(target)); Preferred is kept.
func (c Cursor) MoveVertical(l Lines, delta int) Cursor {
	row := c.Row + delta
	if row < 0 || row >= l.LineCount() {
		return c
	}
	c.Row = row
	c.Col = min(c.Preferred, l.LineLen(row))
	return c
}

// Up moves one row up.
func (c Cursor) Up(l Lines) Cursor {
	return c.MoveVertical(l, -1)
}

// Down moves one row down.
func (c Cursor) Down(l Lines) Cursor {
	return c.MoveVertical(l, 1)
}

// Left moves one column left, wrapping to the end of the previous line.
func (c Cursor) Left(l Lines) Cursor {
	switch {
	case c.Col > 0:
		c.Col--
	case c.Row > 0:
		c.Row--
		c.Col = l.LineLen(c.Row)
	}
	c.Preferred = c.Col
	return c
}

// Right moves one column right, wrapping to the start of the next line.
func (c Cursor) Right(l Lines) Cursor {
	switch {
	case c.Col < l.LineLen(c.Row):
		c.Col++
	case c.Row < l.LineCount()-1:
		c.Row++
		c.Col = 0
	}
	c.Preferred = c.Col
	return c
}

// Home moves to the start of the line.
func (c Cursor) Home() Cursor {
	c.Col = 0
	c.Preferred = 0
	return c
}

// End moves to the end of the line.
func (c Cursor) End(l Lines) Cursor {
	c.Col = l.LineLen(c.Row)
	c.Preferred = c.Col
	return c
}

// ToSelection converts this cursor to an inactive selection with no extent.
func (c Cursor) ToSelection() Selection {
	return Selection{Anchor: c.Point(), Head: c.Point()}
}
