package buffer

// InitialCapacity is the byte capacity given to a fresh line.
const InitialCapacity = 128

// Line is a single line of text without a line terminator.
// Its capacity grows by doubling, so repeated single-byte insertion is
// amortized linear in the final length.
type Line struct {
	data []byte
}

// NewLine creates a line holding s with InitialCapacity bytes of headroom.
func NewLine(s string) *Line {
	data := make([]byte, len(s), len(s)+InitialCapacity)
	copy(data, s)
	return &Line{data: data}
}

// Len returns the logical length of the line in bytes.
func (l *Line) Len() int {
	return len(l.data)
}

// Cap returns the allocated capacity of the line in bytes.
func (l *Line) Cap() int {
	return cap(l.data)
}

// String returns the line content.
func (l *Line) String() string {
	return string(l.data)
}

// ByteAt returns the byte at col.
func (l *Line) ByteAt(col int) (byte, bool) {
	if col < 0 || col >= len(l.data) {
		return 0, false
	}
	return l.data[col], true
}

// Slice returns the content in [start, end), clamped to the line.
func (l *Line) Slice(start, end int) string {
	start = l.clamp(start)
	end = l.clamp(end)
	if start >= end {
		return ""
	}
	return string(l.data[start:end])
}

// Suffix returns the content from col to the end of the line.
func (l *Line) Suffix(col int) string {
	return l.Slice(col, len(l.data))
}

// InsertByte inserts c at col.
func (l *Line) InsertByte(col int, c byte) {
	col = l.clamp(col)
	l.grow(1)
	l.data = l.data[:len(l.data)+1]
	copy(l.data[col+1:], l.data[col:])
	l.data[col] = c
}

// InsertString inserts s at col.
func (l *Line) InsertString(col int, s string) {
	if s == "" {
		return
	}
	col = l.clamp(col)
	n := len(s)
	l.grow(n)
	l.data = l.data[:len(l.data)+n]
	copy(l.data[col+n:], l.data[col:])
	copy(l.data[col:], s)
}

// Delete removes the bytes in [start, end).
func (l *Line) Delete(start, end int) {
	start = l.clamp(start)
	end = l.clamp(end)
	if start >= end {
		return
	}
	n := copy(l.data[start:], l.data[end:])
	l.data = l.data[:start+n]
}

// Truncate shortens the line to n bytes.
func (l *Line) Truncate(n int) {
	l.data = l.data[:l.clamp(n)]
}

// Append adds s to the end of the line.
func (l *Line) Append(s string) {
	l.InsertString(len(l.data), s)
}

// grow ensures there is room for n more bytes, doubling the capacity.
func (l *Line) grow(n int) {
	need := len(l.data) + n
	if need <= cap(l.data) {
		return
	}
	newCap := cap(l.data)
	if newCap < InitialCapacity {
		newCap = InitialCapacity
	}
	for newCap < need {
		newCap *= 2
	}
	data := make([]byte, len(l.data), newCap)
	copy(data, l.data)
	l.data = data
}

// clamp limits col to [0, Len()].
func (l *Line) clamp(col int) int {
	if col < 0 {
		return 0
	}
	if col > len(l.data) {
		return len(l.data)
	}
	return col
}
