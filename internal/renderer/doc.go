// Package renderer provides the display layer for the az editor.
//
// The renderer is responsible for:
//   - Painting the wrapped text area with its line-number gutter
//   - Selection and syntax-error highlighting
//   - The status bar and the help line
//   - Prompts shown on the help line
//   - Placing the terminal cursor
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (painter)            │
//	├─────────────────────────────────────────┤
//	│  layout (rows)  │  statusline  │  core  │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// The renderer keeps no document state. Every frame is drawn in full from
// a Document, which *engine.Editor implements.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(editor)
package renderer
