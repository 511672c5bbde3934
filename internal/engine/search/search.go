// Package search provides literal find and replace over a line document.
//
// Matching is plain byte comparison. There is no regex or case folding.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/az/internal/engine/buffer"
)

// Common errors.
var (
	ErrEmptyQuery  = errors.New("empty search query")
	ErrNotFound    = errors.New("not found")
	ErrInvalidMode = errors.New("invalid replace mode")
)

// Source is the read side of a document.
type Source interface {
	LineCount() int
	LineText(row int) string
}

// Splicer is a document that can replace a byte span on one row.
type Splicer interface {
	Source
	Splice(row, start, end int, s string)
}

// Match is one occurrence of a query: [Start, End) on Row.
type Match struct {
	Row   int
	Start int
	End   int
}

// StartPoint returns the position of the first matched byte.
func (m Match) StartPoint() buffer.Point {
	return buffer.Point{Row: m.Row, Col: m.Start}
}

// EndPoint returns the position just past the match.
func (m Match) EndPoint() buffer.Point {
	return buffer.Point{Row: m.Row, Col: m.End}
}

// String returns a human-readable representation of the match.
func (m Match) String() string {
	return fmt.Sprintf("Match(%d:[%d,%d))", m.Row, m.Start, m.End)
}

// Count returns the number of occurrences of q. Scanning resumes one byte
// after each match start, so overlapping occurrences are all counted.
func Count(src Source, q string) int {
	if q == "" {
		return 0
	}
	n := 0
	for row := 0; row < src.LineCount(); row++ {
		line := src.LineText(row)
		for i := 0; i <= len(line)-len(q); {
			idx := strings.Index(line[i:], q)
			if idx < 0 {
				break
			}
			n++
			i += idx + 1
		}
	}
	return n
}

// Next finds the next occurrence of q starting at from. The search order is
// the rest of the cursor line (from from.Col on), then every later line,
// then the lines before the cursor. The part of the cursor line before
// from.Col is never searched, so a match there is not found.
func Next(src Source, q string, from buffer.Point) (Match, error) {
	if q == "" {
		return Match{}, ErrEmptyQuery
	}
	n := src.LineCount()
	row := min(max(from.Row, 0), n-1)

	if m, ok := findFrom(src, q, row, from.Col); ok {
		return m, nil
	}
	for r := row + 1; r < n; r++ {
		if m, ok := findFrom(src, q, r, 0); ok {
			return m, nil
		}
	}
	for r := 0; r < row; r++ {
		if m, ok := findFrom(src, q, r, 0); ok {
			return m, nil
		}
	}
	return Match{}, ErrNotFound
}

// FindOnRow returns the first occurrence of q on the row of from, at or
// after its column. Other rows are not searched.
func FindOnRow(src Source, q string, from buffer.Point) (Match, bool) {
	if q == "" {
		return Match{}, false
	}
	row := min(max(from.Row, 0), src.LineCount()-1)
	return findFrom(src, q, row, from.Col)
}

// findFrom returns the first occurrence of q on row at or after col.
func findFrom(src Source, q string, row, col int) (Match, bool) {
	line := src.LineText(row)
	col = min(max(col, 0), len(line))
	idx := strings.Index(line[col:], q)
	if idx < 0 {
		return Match{}, false
	}
	start := col + idx
	return Match{Row: row, Start: start, End: start + len(q)}, true
}
