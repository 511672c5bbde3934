// Package cursor provides the cursor and selection model for text editing.
//
// The cursor package handles:
//
//   - Cursor positioning by row and byte column, with a preferred column
//     that survives vertical movement through short lines
//   - Text selections with an anchor/head model via the Selection type
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The moving end (mouse drag point or keyboard extent)
//
// The pair is stored exactly as the user produced it. Consumers that need
// ordered bounds call Range or Normalize. A Selection also carries an
// Active flag, so "no selection" and "empty selection" are distinct states.
//
// Basic usage:
//
//	c := cursor.New(0, 0)
//	c = c.Down(buf)  // column follows the preferred column
//	c = c.Right(buf) // wraps to the next line at end of line
//
//	sel := cursor.NewSelection(buffer.Point{Row: 2, Col: 4}, c.Point())
//	lo, hi := sel.Range()
//
// Thread Safety:
//
// Cursor and Selection are immutable value types and safe for concurrent
// use.
package cursor
