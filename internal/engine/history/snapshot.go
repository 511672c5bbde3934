package history

import (
	"slices"

	"github.com/dshills/az/internal/engine/buffer"
)

// Snapshot is a full copy of a document and its cursor at one moment.
type Snapshot struct {
	Lines  []string
	Cursor buffer.Point
}

// Capture copies the content of buf together with the cursor position.
func Capture(buf *buffer.Buffer, cur buffer.Point) Snapshot {
	return Snapshot{Lines: buf.Lines(), Cursor: cur}
}

// Restore rebuilds buf from the snapshot and returns the saved cursor,
// clamped to the restored content.
func (s Snapshot) Restore(buf *buffer.Buffer) buffer.Point {
	buf.SetLines(slices.Clone(s.Lines))
	return buf.Clamp(s.Cursor)
}

// LineCount returns the number of lines held by the snapshot.
func (s Snapshot) LineCount() int {
	return len(s.Lines)
}
