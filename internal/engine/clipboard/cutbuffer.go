package clipboard

// CutBuffer accumulates line suffixes removed by successive
// cut-to-end-of-line operations. It is emptied only when taken.
type CutBuffer struct {
	fragments []string
}

// Append adds one cut fragment.
func (b *CutBuffer) Append(s string) {
	b.fragments = append(b.fragments, s)
}

// Take returns every fragment and empties the buffer.
func (b *CutBuffer) Take() []string {
	out := b.fragments
	b.fragments = nil
	return out
}

// Len returns the number of fragments held.
func (b *CutBuffer) Len() int {
	return len(b.fragments)
}

// IsEmpty returns true if no fragment is held.
func (b *CutBuffer) IsEmpty() bool {
	return len(b.fragments) == 0
}
