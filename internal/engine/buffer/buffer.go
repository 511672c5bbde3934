package buffer

import "strings"

// Buffer is an ordered, mutable sequence of lines.
// It always contains at least one line.
type Buffer struct {
	lines []*Line
}

// NewBuffer creates a buffer holding a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: []*Line{NewLine("")}}
}

// NewBufferFromLines creates a buffer from the given lines.
// An empty slice yields a single empty line. Embedded line terminators are
// stripped so the no-terminator invariant holds.
func NewBufferFromLines(lines []string) *Buffer {
	b := &Buffer{}
	b.SetLines(lines)
	return b
}

// SetLines replaces the whole content of the buffer.
func (b *Buffer) SetLines(lines []string) {
	b.lines = make([]*Line, 0, max(len(lines), 1))
	for _, s := range lines {
		b.lines = append(b.lines, NewLine(sanitize(s)))
	}
	if len(b.lines) == 0 {
		b.lines = append(b.lines, NewLine(""))
	}
}

// Lines returns a copy of every line's content.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

// Text returns the content joined with newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the line at row, clamped to the valid row range.
func (b *Buffer) Line(row int) *Line {
	return b.lines[b.clampRow(row)]
}

// LineText returns the content of the line at row.
func (b *Buffer) LineText(row int) string {
	return b.Line(row).String()
}

// LineLen returns the length of the line at row in bytes.
func (b *Buffer) LineLen(row int) int {
	return b.Line(row).Len()
}

// End returns the position just past the last byte of the last line.
func (b *Buffer) End() Point {
	last := len(b.lines) - 1
	return Point{Row: last, Col: b.lines[last].Len()}
}

// Clamp returns p moved to the nearest valid position.
func (b *Buffer) Clamp(p Point) Point {
	p.Row = b.clampRow(p.Row)
	p.Col = b.lines[p.Row].clamp(p.Col)
	return p
}

// InsertChar inserts c at p and returns the position after it.
// Line terminators are ignored; use SplitAt to break a line.
func (b *Buffer) InsertChar(p Point, c byte) Point {
	p = b.Clamp(p)
	if c == '\n' || c == '\r' {
		return p
	}
	b.lines[p.Row].InsertByte(p.Col, c)
	p.Col++
	return p
}

// InsertString inserts s at p and returns the position after it.
// s must not contain line terminators; any that it does are dropped.
func (b *Buffer) InsertString(p Point, s string) Point {
	p = b.Clamp(p)
	s = sanitize(s)
	b.lines[p.Row].InsertString(p.Col, s)
	p.Col += len(s)
	return p
}

// DeleteRange removes the text between start and end and returns the
// position where the removed span began. The two points may be given in
// either order. A multi-row span truncates the low line at its column,
// appends the high line's suffix and removes every line after the low line
// through the high line.
func (b *Buffer) DeleteRange(start, end Point) Point {
	lo, hi := Order(b.Clamp(start), b.Clamp(end))
	if lo == hi {
		return lo
	}
	first := b.lines[lo.Row]
	if lo.Row == hi.Row {
		first.Delete(lo.Col, hi.Col)
		return lo
	}
	tail := b.lines[hi.Row].Suffix(hi.Col)
	first.Truncate(lo.Col)
	first.Append(tail)
	b.lines = append(b.lines[:lo.Row+1], b.lines[hi.Row+1:]...)
	return lo
}

// TextRange returns the text between start and end as fragments, one per
// row touched. The first and last fragments may be partial lines.
func (b *Buffer) TextRange(start, end Point) []string {
	lo, hi := Order(b.Clamp(start), b.Clamp(end))
	if lo.Row == hi.Row {
		return []string{b.lines[lo.Row].Slice(lo.Col, hi.Col)}
	}
	out := make([]string, 0, hi.Row-lo.Row+1)
	out = append(out, b.lines[lo.Row].Suffix(lo.Col))
	for row := lo.Row + 1; row < hi.Row; row++ {
		out = append(out, b.lines[row].String())
	}
	out = append(out, b.lines[hi.Row].Slice(0, hi.Col))
	return out
}

// SplitAt breaks the line at p. The suffix from p.Col becomes a new line
// inserted directly after the original, which is truncated to [0, p.Col).
// The new line is returned.
func (b *Buffer) SplitAt(p Point) *Line {
	p = b.Clamp(p)
	cur := b.lines[p.Row]
	next := NewLine(cur.Suffix(p.Col))
	cur.Truncate(p.Col)
	b.insertLine(p.Row+1, next)
	return next
}

// InsertLine inserts a new line holding s before row. A row equal to the
// line count appends.
func (b *Buffer) InsertLine(row int, s string) {
	if row < 0 {
		row = 0
	}
	if row > len(b.lines) {
		row = len(b.lines)
	}
	b.insertLine(row, NewLine(sanitize(s)))
}

// MergeWithNext appends the next line to the line at row and removes it.
// It returns false (and does nothing) on the last line.
func (b *Buffer) MergeWithNext(row int) bool {
	if row < 0 || row >= len(b.lines)-1 {
		return false
	}
	b.lines[row].Append(b.lines[row+1].String())
	b.removeLine(row + 1)
	return true
}

// MergeWithPrev appends the line at row to the previous line and removes it.
// It returns the join position on the previous line, and false (doing
// nothing) on the first line.
func (b *Buffer) MergeWithPrev(row int) (Point, bool) {
	if row <= 0 || row >= len(b.lines) {
		return Point{}, false
	}
	join := Point{Row: row - 1, Col: b.lines[row-1].Len()}
	b.MergeWithNext(row - 1)
	return join, true
}

// RemoveLine deletes the line at row. The only remaining line is never
// removed; false is returned instead.
func (b *Buffer) RemoveLine(row int) bool {
	if len(b.lines) <= 1 || row < 0 || row >= len(b.lines) {
		return false
	}
	b.removeLine(row)
	return true
}

// Splice replaces [start, end) on row with s.
func (b *Buffer) Splice(row, start, end int, s string) {
	l := b.Line(row)
	l.Delete(start, end)
	l.InsertString(start, sanitize(s))
}

// insertLine inserts l at index row.
func (b *Buffer) insertLine(row int, l *Line) {
	b.lines = append(b.lines, nil)
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = l
}

// removeLine drops the line at index row.
func (b *Buffer) removeLine(row int) {
	copy(b.lines[row:], b.lines[row+1:])
	b.lines[len(b.lines)-1] = nil
	b.lines = b.lines[:len(b.lines)-1]
}

// clampRow limits row to [0, LineCount()).
func (b *Buffer) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= len(b.lines) {
		return len(b.lines) - 1
	}
	return row
}

// sanitize drops line terminators from s.
func sanitize(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
