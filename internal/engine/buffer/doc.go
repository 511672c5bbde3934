// Package buffer provides the line buffer that backs an open document.
//
// A Buffer is an ordered sequence of Lines. It is never empty: it always
// holds at least one, possibly zero-length, line. Rows are positions in the
// sequence and are never stored, so inserting or removing a line implicitly
// renumbers every line after it.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromLines([]string{"hello world"})
//
//	// Split the line at column 5
//	buf.SplitAt(buffer.Point{Row: 0, Col: 5}) // "hello", " world"
//
//	// Join it back together
//	buf.MergeWithNext(0) // "hello world"
//
// Position Types:
//
// Point addresses a byte inside the buffer by row and column. Both are
// 0-indexed; the column may equal the line length (the position just past
// the last byte).
//
// Leniency:
//
// Coordinates outside the buffer are clamped silently rather than reported.
// Structural edits at a document boundary (merging the last line with a
// non-existent next line, removing the only line) are no-ops.
//
// Thread Safety:
//
// A Buffer is owned by a single editor and is not safe for concurrent use.
package buffer
