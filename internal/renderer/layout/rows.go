package layout

import "github.com/dshills/az/internal/engine/buffer"

// HighlightKind classifies a highlighted span.
type HighlightKind int

const (
	HighlightSelection HighlightKind = iota
	HighlightError
)

// Span is a highlighted region of the document, [Start, End) in buffer
// coordinates.
type Span struct {
	Kind  HighlightKind
	Start buffer.Point
	End   buffer.Point
}

// Highlight is the part of a Span that falls on one screen row, as byte
// offsets into the buffer line.
type Highlight struct {
	Kind  HighlightKind
	Start int
	End   int
}

// ScreenRow describes one row of the text area.
type ScreenRow struct {
	Screen     int  // row within the text area
	Line       int  // owning buffer line
	Segment    int  // wrap segment index within the line
	Start      int  // first byte of the line shown on this row
	End        int  // one past the last byte shown
	Numbered   bool // true on the first segment, which carries the label
	Highlights []Highlight
}

// VisibleRows lays out the text area starting at line top, clipping the
// given highlight spans to each row.
func (m Mapper) VisibleRows(src Source, top int, spans ...Span) []ScreenRow {
	w := max(m.Width, 1)
	out := make([]ScreenRow, 0, m.Height)
	for r := max(top, 0); r < src.LineCount() && len(out) < m.Height; r++ {
		ll := src.LineLen(r)
		rows := m.RowsFor(ll)
		for seg := 0; seg < rows && len(out) < m.Height; seg++ {
			start := seg * w
			end := min(start+w, ll)
			out = append(out, ScreenRow{
				Screen:     len(out),
				Line:       r,
				Segment:    seg,
				Start:      start,
				End:        end,
				Numbered:   seg == 0,
				Highlights: clip(spans, r, ll, start, end),
			})
		}
	}
	return out
}

// clip intersects spans with bytes [start, end) of line row.
func clip(spans []Span, row, lineLen, start, end int) []Highlight {
	var out []Highlight
	for _, s := range spans {
		lo, hi := buffer.Order(s.Start, s.End)
		if row < lo.Row || row > hi.Row {
			continue
		}
		from, to := 0, lineLen
		if row == lo.Row {
			from = lo.Col
		}
		if row == hi.Row {
			to = hi.Col
		}
		from, to = max(from, start), min(to, end)
		if from < to {
			out = append(out, Highlight{Kind: s.Kind, Start: from, End: to})
		}
	}
	return out
}

// Has reports whether byte col of the row lies in a highlight of kind k.
func (r ScreenRow) Has(k HighlightKind, col int) bool {
	for _, h := range r.Highlights {
		if h.Kind == k && col >= h.Start && col < h.End {
			return true
		}
	}
	return false
}
