// Package app provides the main application structure and coordination.
package app

import (
	"github.com/dshills/az/internal/renderer/backend"
)

// binding is a named key action.
type binding struct {
	name string
	run  func(app *Application) error
}

// bindings maps keys to editor actions. Printable characters are typed
// directly and never appear here.
var bindings = map[backend.Key]binding{
	backend.KeyCtrlS: {"save", (*Application).Save},
	backend.KeyCtrlQ: {"quit", (*Application).quit},
	backend.KeyCtrlA: {"select-all", edit(func(app *Application) { app.editor.SelectAll() })},
	backend.KeyCtrlC: {"copy", func(app *Application) error { return app.editor.Copy() }},
	backend.KeyCtrlX: {"cut", func(app *Application) error { return app.editor.Cut() }},
	backend.KeyCtrlV: {"paste", func(app *Application) error { return app.editor.Paste() }},
	backend.KeyCtrlK: {"cut-line", func(app *Application) error { return app.editor.CutToEndOfLine() }},
	backend.KeyCtrlU: {"paste-cut-buffer", func(app *Application) error { return app.editor.PasteCutBuffer() }},
	backend.KeyCtrlZ: {"undo", func(app *Application) error { return app.editor.Undo() }},
	backend.KeyCtrlY: {"redo", func(app *Application) error { return app.editor.Redo() }},
	backend.KeyCtrlF: {"search", (*Application).startSearch},
	backend.KeyCtrlR: {"replace", (*Application).startReplace},

	backend.KeyBackspace: {"backspace", func(app *Application) error { return app.editor.Backspace() }},
	backend.KeyDelete:    {"delete", func(app *Application) error { return app.editor.DeleteChar() }},
	backend.KeyEnter:     {"newline", func(app *Application) error { return app.editor.InsertNewline() }},
	backend.KeyTab:       {"tab", func(app *Application) error { return app.editor.InsertTab() }},

	backend.KeyUp:       {"up", edit(func(app *Application) { app.editor.Move(-1, 0) })},
	backend.KeyDown:     {"down", edit(func(app *Application) { app.editor.Move(1, 0) })},
	backend.KeyLeft:     {"left", edit(func(app *Application) { app.editor.Move(0, -1) })},
	backend.KeyRight:    {"right", edit(func(app *Application) { app.editor.Move(0, 1) })},
	backend.KeyHome:     {"home", edit(func(app *Application) { app.editor.Home() })},
	backend.KeyEnd:      {"end", edit(func(app *Application) { app.editor.End() })},
	backend.KeyPageUp:   {"page-up", edit(func(app *Application) { app.editor.PageUp() })},
	backend.KeyPageDown: {"page-down", edit(func(app *Application) { app.editor.PageDown() })},
}

// edit adapts an action that cannot fail.
func edit(fn func(app *Application)) func(app *Application) error {
	return func(app *Application) error {
		fn(app)
		return nil
	}
}
