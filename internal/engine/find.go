package engine

import (
	"errors"

	"github.com/dshills/az/internal/engine/cursor"
	"github.com/dshills/az/internal/engine/search"
)

// Count returns the number of occurrences of q in the document.
func (e *Editor) Count(q string) int {
	return search.Count(e.buf, q)
}

// Search selects the next occurrence of q at or after the cursor and
// moves the cursor to its end, so searching again walks forward and wraps
// around the document.
func (e *Editor) Search(q string) error {
	if q == "" {
		e.SetStatus("Search cancelled")
		return ErrEmptyQuery
	}
	n := search.Count(e.buf, q)
	if n == 0 {
		e.SetStatus("Not found")
		return ErrNotFound
	}
	m, err := search.Next(e.buf, q, e.cur.Point())
	if err != nil {
		e.SetStatus("Not found")
		return err
	}
	e.setCursor(m.EndPoint())
	e.sel = cursor.NewSelection(m.StartPoint(), m.EndPoint())
	e.Statusf("Found: %d", n)
	return nil
}

// Replace rewrites occurrences of q with r and returns how many were
// replaced. ModeAll rewrites the whole document; ModeOne rewrites the
// first occurrence at or after the cursor on the cursor line and leaves
// the cursor after the replacement. One undo checkpoint covers the
// operation; none is taken when nothing matches.
func (e *Editor) Replace(q, r string, mode search.Mode) (int, error) {
	if err := e.writable(); err != nil {
		return 0, err
	}
	if q == "" {
		e.SetStatus("Replace cancelled")
		return 0, ErrEmptyQuery
	}
	if !mode.Valid() {
		e.SetStatus("Replace cancelled")
		return 0, ErrInvalidMode
	}
	if search.Count(e.buf, q) == 0 {
		e.SetStatus("Not found")
		return 0, ErrNotFound
	}

	switch mode {
	case search.ModeOne:
		if _, ok := search.FindOnRow(e.buf, q, e.cur.Point()); !ok {
			e.SetStatus("Not found after cursor")
			return 0, ErrNotFound
		}
		e.checkpoint()
		m, err := search.ReplaceOne(e.buf, q, r, e.cur.Point())
		if err != nil {
			return 0, err
		}
		e.setCursor(m.EndPoint())
		e.clearSelection()
		e.touch()
		e.SetStatus("Replaced: 1")
		return 1, nil

	case search.ModeAll:
		e.checkpoint()
		n, err := search.ReplaceAll(e.buf, q, r)
		if err != nil && !errors.Is(err, search.ErrNotFound) {
			return 0, err
		}
		e.clearSelection()
		e.touch()
		e.follow()
		e.Statusf("Replaced: %d", n)
		return n, nil
	}
	return 0, ErrInvalidMode
}
