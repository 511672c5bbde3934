package cursor

import "fmt"

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the point that moves.
// The pair is never stored reordered; use Normalize or Range at the point
// of use.
//
// Active distinguishes an absent selection from a zero-length one: a mouse
// press sets Anchor == Head without activating anything, while an explicit
// selection may be active and still empty.
type Selection struct {
	Anchor Point
	Head   Point
	Active bool
}

// NewSelection creates an active selection from anchor to head.
func NewSelection(anchor, head Point) Selection {
	return Selection{Anchor: anchor, Head: head, Active: true}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Range returns the selection bounds ordered by (row, col).
func (s Selection) Range() (lo, hi Point) {
	if s.Head.Before(s.Anchor) {
		return s.Head, s.Anchor
	}
	return s.Anchor, s.Head
}

// Normalize returns a forward selection (Anchor <= Head).
// It is idempotent and independent of the original direction.
func (s Selection) Normalize() Selection {
	lo, hi := s.Range()
	return Selection{Anchor: lo, Head: hi, Active: s.Active}
}

// IsBackward returns true if the head lies before the anchor.
func (s Selection) IsBackward() bool {
	return s.Head.Before(s.Anchor)
}

// Extend returns a selection with the head moved to p.
// The anchor remains fixed and the active flag is unchanged.
func (s Selection) Extend(p Point) Selection {
	s.Head = p
	return s
}

// Collapse returns an inactive selection at p.
func (s Selection) Collapse(p Point) Selection {
	return Selection{Anchor: p, Head: p}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if !s.Active {
		return fmt.Sprintf("Cursor%v", s.Head)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%v%s%v)", s.Anchor, dir, s.Head)
}
