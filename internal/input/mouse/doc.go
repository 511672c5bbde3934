// Package mouse provides mouse input handling for the editor.
//
// # Core Types
//
// Event represents a mouse input event with a screen position, button and
// action type:
//
//	event := mouse.Event{
//	    Position: mouse.Position{X: 12, Y: 3},
//	    Button:   mouse.ButtonLeft,
//	    Action:   mouse.ActionPress,
//	}
//
// # Handler
//
// Handler runs the drag-selection state machine and drives a Target, the
// editor surface that knows how to resolve screen positions and change
// the cursor and selection:
//
//	handler := mouse.NewHandler(mouse.DefaultConfig())
//	if handler.Handle(event, editor) {
//	    redraw()
//	}
//
// # Regions
//
// A press in the text area places the cursor and starts a selection. A
// right press pastes at the pointer. A press on the status bar jumps to
// the current diagnostic. Presses in the line number gutter are ignored,
// but a drag that wanders into it selects from column 0.
//
// # Scroll Handling
//
// Wheel events scroll the view by Config.ScrollLines rows and leave the
// cursor alone.
//
// # Thread Safety
//
// Handler is not safe for concurrent use; it belongs to the event loop.
package mouse
