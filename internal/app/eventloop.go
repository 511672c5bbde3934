// Package app provides the main application structure and coordination.
package app

import (
	"errors"
	"os"

	"github.com/dshills/az/internal/fileio/watcher"
	"github.com/dshills/az/internal/input/mouse"
	"github.com/dshills/az/internal/renderer/backend"
)

// eventLoop renders, then handles one event at a time until quit.
func (app *Application) eventLoop() error {
	events := app.startInputPolling()
	app.render()

	for {
		select {
		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}

			timer := StartTimer()
			err := app.handleBackendEvent(ev)
			app.metrics.RecordEvent(timer.Stop())

			if errors.Is(err, ErrQuit) {
				return ErrQuit
			}
			if err != nil {
				app.LogDebug("event: %v", err)
			}
			app.render()
		}
	}
}

// render draws one frame and ages the status message.
func (app *Application) render() {
	if app.renderer == nil {
		return
	}
	timer := StartTimer()

	if app.prompt != nil {
		app.renderer.SetPrompt(app.prompt.String())
	} else {
		app.renderer.ClearPrompt()
	}
	app.renderer.Render(app.editor)
	app.editor.TickStatus()

	app.metrics.RecordFrame(timer.Stop())
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		return app.handleResize(ev)
	case backend.EventKey:
		app.metrics.RecordKey()
		return app.handleKeyEvent(ev)
	case backend.EventMouse:
		app.metrics.RecordMouse()
		return app.handleMouseEvent(ev)
	case backend.EventPaste:
		return app.handlePasteEvent(ev)
	case backend.EventInterrupt:
		return app.handleInterrupt(ev)
	default:
		return nil
	}
}

// handleResize processes terminal resize events.
func (app *Application) handleResize(ev backend.Event) error {
	app.editor.Resize(ev.Width, ev.Height)
	app.LogDebug("resize %dx%d", ev.Width, ev.Height)
	return nil
}

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	if app.prompt != nil {
		return app.handlePromptKey(ev)
	}
	if app.pasting {
		return app.handlePastedKey(ev)
	}

	// Any key but a second Ctrl+Q withdraws the quit warning.
	if ev.Key != backend.KeyCtrlQ {
		app.quitArmed = false
	}

	if ev.Key == backend.KeyRune {
		return app.typeRune(ev.Rune)
	}

	b, ok := bindings[ev.Key]
	if !ok {
		return nil
	}
	app.LogDebug("key: %s", b.name)
	return app.run(b)
}

// run executes a binding. Editor refusals (nothing to undo, not found...)
// are already reported on the status line; only quit escapes.
func (app *Application) run(b binding) error {
	err := b.run(app)
	if err == nil || errors.Is(err, ErrQuit) {
		return err
	}
	app.LogDebug("%s: %v", b.name, err)
	return nil
}

// typeRune inserts a printable ASCII character.
func (app *Application) typeRune(r rune) error {
	if !printable(r) {
		return nil
	}
	return app.editor.InsertChar(byte(r))
}

// handleMouseEvent feeds mouse events to the selection state machine.
func (app *Application) handleMouseEvent(ev backend.Event) error {
	if app.prompt != nil {
		return nil
	}
	app.quitArmed = false

	mev, ok := convertMouseEvent(ev)
	if !ok {
		return nil
	}
	before := app.mouse.State()
	app.mouse.Handle(mev, app.editor)
	if after := app.mouse.State(); after != before {
		app.LogDebug("mouse: %s -> %s at %d,%d", before, after, ev.MouseX, ev.MouseY)
	}
	return nil
}

// handlePasteEvent brackets a terminal paste. Between start and end, keys
// are inserted literally instead of triggering bindings.
func (app *Application) handlePasteEvent(ev backend.Event) error {
	app.pasting = ev.PasteStart
	return nil
}

// handlePastedKey inserts one key of a bracketed paste.
func (app *Application) handlePastedKey(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyRune:
		return app.typeRune(ev.Rune)
	case backend.KeyEnter:
		return app.editor.InsertNewline()
	case backend.KeyTab:
		return app.editor.InsertTab()
	}
	return nil
}

// handleInterrupt ends the session on an OS signal and reports file
// changes. Interrupts without data only wake the loop.
func (app *Application) handleInterrupt(ev backend.Event) error {
	switch data := ev.Data.(type) {
	case os.Signal:
		app.LogInfo("signal %v", data)
		return ErrQuit
	case watcher.Event:
		return app.handleFileChange(data)
	}
	return nil
}

// startInputPolling starts a goroutine that polls for input events.
// Events are sent to the returned channel.
//
// PollEvent is blocking, so the goroutine only notices shutdown once the
// backend is shut down and PollEvent returns. Run stops the loop before
// shutting the backend down.
func (app *Application) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for {
			ev := app.backend.PollEvent()

			select {
			case <-app.done:
				return
			default:
			}

			select {
			case events <- ev:
			case <-app.done:
				return
			}
		}
	}()

	return events
}

// convertMouseEvent maps a backend mouse event to the selection handler's
// vocabulary. Moves without a button are dropped.
func convertMouseEvent(ev backend.Event) (mouse.Event, bool) {
	var button mouse.Button
	switch ev.MouseButton {
	case backend.MouseLeft:
		button = mouse.ButtonLeft
	case backend.MouseMiddle:
		button = mouse.ButtonMiddle
	case backend.MouseRight:
		button = mouse.ButtonRight
	case backend.MouseWheelUp:
		button = mouse.ButtonScrollUp
	case backend.MouseWheelDown:
		button = mouse.ButtonScrollDown
	}

	var action mouse.Action
	switch ev.MouseAction {
	case backend.MousePress:
		action = mouse.ActionPress
	case backend.MouseDrag:
		action = mouse.ActionDrag
	case backend.MouseRelease:
		action = mouse.ActionRelease
	default:
		return mouse.Event{}, false
	}

	return mouse.Event{
		Position: mouse.Position{X: ev.MouseX, Y: ev.MouseY},
		Button:   button,
		Action:   action,
	}, true
}

// printable reports whether r is a character the document accepts.
func printable(r rune) bool {
	return r >= 0x20 && r < 0x7f
}
