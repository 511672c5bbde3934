package search

import (
	"strings"

	"github.com/dshills/az/internal/engine/buffer"
)

// Mode selects how many occurrences Replace rewrites.
type Mode int

const (
	// ModeAll replaces every occurrence in the document.
	ModeAll Mode = iota
	// ModeOne replaces the first occurrence at or after the cursor on the
	// cursor line.
	ModeOne
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeOne:
		return "one"
	default:
		return "unknown"
	}
}

// Valid reports whether m is ModeAll or ModeOne.
func (m Mode) Valid() bool {
	return m == ModeAll || m == ModeOne
}

// ParseMode maps the replace prompt answer to a Mode: 'a' or 'A' for all,
// '1' for one.
func ParseMode(r rune) (Mode, bool) {
	switch r {
	case 'a', 'A':
		return ModeAll, true
	case '1':
		return ModeOne, true
	default:
		return 0, false
	}
}

// ReplaceAll rewrites every occurrence of q with r and returns how many were
// replaced. Lines are scanned left to right and scanning resumes right
// after each inserted replacement, so r is never matched against itself.
func ReplaceAll(dst Splicer, q, r string) (int, error) {
	if q == "" {
		return 0, ErrEmptyQuery
	}
	n := 0
	for row := 0; row < dst.LineCount(); row++ {
		pos := 0
		for {
			line := dst.LineText(row)
			if pos > len(line) {
				break
			}
			idx := strings.Index(line[pos:], q)
			if idx < 0 {
				break
			}
			start := pos + idx
			dst.Splice(row, start, start+len(q), r)
			pos = start + len(r)
			n++
		}
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return n, nil
}

// ReplaceOne rewrites the first occurrence of q at or after from on the
// row of from. The returned match spans the inserted replacement.
func ReplaceOne(dst Splicer, q, r string, from buffer.Point) (Match, error) {
	if q == "" {
		return Match{}, ErrEmptyQuery
	}
	m, ok := FindOnRow(dst, q, from)
	if !ok {
		return Match{}, ErrNotFound
	}
	dst.Splice(m.Row, m.Start, m.End, r)
	return Match{Row: m.Row, Start: m.Start, End: m.Start + len(r)}, nil
}
