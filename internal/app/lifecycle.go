// Package app provides the main application structure and coordination.
package app

import (
	"github.com/dshills/az/internal/engine"
)

// Save writes the document to its file, asking for a name first when it
// has none.
func (app *Application) Save() error {
	if app.editor.ReadOnly() {
		app.editor.SetStatus("Read-only")
		return engine.ErrReadOnly
	}

	if app.editor.Filename() == "" {
		app.ask(promptFileName, func(app *Application, name string) error {
			if name == "" {
				app.editor.SetStatus("Cancelled")
				return nil
			}
			app.editor.SetFilename(name)
			return app.SaveAs(name)
		})
		return nil
	}

	return app.SaveAs(app.editor.Filename())
}

// SaveAs writes the document to path. On failure the document stays
// modified and the status line says so.
func (app *Application) SaveAs(path string) error {
	lines := app.editor.Lines()
	if err := app.files.Save(path, lines); err != nil {
		app.editor.SetStatus("Error: cannot open file")
		opErr := NewOperationError("save", path, err)
		app.LogError("%v", opErr)
		return opErr
	}

	app.diskLines = lines
	app.editor.SetFilename(path)
	app.follow(path)
	app.editor.MarkSaved()
	app.editor.Statusf("Saved: %s", path)
	app.LogInfo("saved %s: %d lines", path, len(lines))
	return nil
}

// quit ends the session, or warns once when there are unsaved changes.
func (app *Application) quit() error {
	if app.editor.Modified() && !app.quitArmed {
		app.quitArmed = true
		app.editor.SetStatus("Unsaved! Ctrl+S to save or Ctrl+Q again")
		return nil
	}
	return ErrQuit
}
