// Package engine provides the editing core of az.
//
// The engine package serves as the main facade. An Editor owns one open
// document together with everything that edits it: the line buffer, the
// cursor and selection, the clipboard and cut buffer, undo history, the
// viewport and the transient status message.
//
// # Architecture
//
// The editor is built on several sub-packages:
//
//   - buffer: line storage with geometric capacity growth
//   - cursor: cursor movement and the anchor/head selection
//   - history: snapshot undo with a word-granular checkpoint policy
//   - clipboard: copy fragments and the cut-to-end-of-line buffer
//   - search: literal search and replace
//   - syntax: per-file-type balance checking
//
// # Basic Usage
//
//	ed := engine.New(engine.WithLines([]string{"hello"}))
//	ed.End()
//	ed.InsertChar('!')  // "hello!"
//	ed.Undo()           // "hello"
//
// # Outcomes
//
// Every user-facing operation records a short status message and, when it
// did nothing, returns a sentinel error. The UI shows the message; callers
// and tests can match the error with errors.Is.
//
// # Thread Safety
//
// An Editor is not safe for concurrent use. Events are processed one at a
// time, each to completion, by a single goroutine.
package engine
