package app

import (
	"slices"

	"github.com/dshills/az/internal/fileio/watcher"
	"github.com/dshills/az/internal/renderer/backend"
)

// startWatcher follows the document's file and posts changes to b as
// interrupt events, so they are handled on the event loop. Failure only
// costs the notification.
func (app *Application) startWatcher(b backend.Backend) {
	w, err := watcher.New(func(ev watcher.Event) {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: ev})
	})
	if err != nil {
		app.LogWarn("%v", NewOperationError("watch", app.editor.Filename(), err))
		return
	}
	app.watcher = w
	app.follow(app.editor.Filename())
}

// stopWatcher closes the watcher.
func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.LogDebug("watcher close: %v", err)
	}
	app.watcher = nil
}

// follow points the watcher at path.
func (app *Application) follow(path string) {
	if app.watcher == nil || path == "" {
		return
	}
	if err := app.watcher.Watch(path); err != nil {
		app.LogWarn("%v", NewOperationError("watch", path, err))
		return
	}
	app.LogDebug("watching %s", path)
}

// handleFileChange compares the file on disk with what was last loaded or
// saved and warns when another program changed it. The document is left
// alone.
func (app *Application) handleFileChange(ev watcher.Event) error {
	name := app.editor.Filename()
	if name == "" {
		return nil
	}
	app.LogDebug("file event %s on %s", ev.Op, ev.Path)

	if ev.Op.Gone() {
		app.diskLines = nil
		app.editor.SetStatus("File deleted on disk")
		app.LogInfo("%s deleted by another program", name)
		return nil
	}

	lines, err := app.files.Load(name)
	if err != nil {
		app.LogDebug("%v", NewOperationError("reload", name, err))
		return nil
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if slices.Equal(lines, app.diskLines) {
		return nil
	}

	app.diskLines = lines
	app.editor.SetStatus("File changed on disk")
	app.LogInfo("%s changed by another program", name)
	return nil
}
