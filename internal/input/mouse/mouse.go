package mouse

import "github.com/dshills/az/internal/engine/buffer"

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// IsScroll returns true if this is a scroll button.
func (b Button) IsScroll() bool {
	return b == ButtonScrollUp || b == ButtonScrollDown
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	default:
		return "none"
	}
}

// Position represents a screen coordinate.
type Position struct {
	X int
	Y int
}

// Event represents a mouse input event.
type Event struct {
	// Position is the screen coordinates.
	Position Position

	// Button is the mouse button involved.
	Button Button

	// Action is the type of mouse action.
	Action Action
}

// Region identifies the part of the screen under the pointer.
type Region uint8

const (
	RegionNone Region = iota
	RegionText
	RegionGutter
	RegionStatus
	RegionHelp
)

// String returns a string representation of the region.
func (r Region) String() string {
	switch r {
	case RegionText:
		return "text"
	case RegionGutter:
		return "gutter"
	case RegionStatus:
		return "status"
	case RegionHelp:
		return "help"
	default:
		return "none"
	}
}

// Hit is the result of resolving a screen position.
// Point is meaningful for RegionText and RegionGutter; in the gutter it is
// column 0 of the line on that row.
type Hit struct {
	Region Region
	Point  buffer.Point
}

// Target is the editor surface the handler drives.
type Target interface {
	// HitTest resolves a screen position through the inverse layout.
	HitTest(pos Position) Hit

	// PlaceCursor moves the cursor to p.
	PlaceCursor(p buffer.Point)

	// SetSelection stores the selection pair and its active flag.
	SetSelection(anchor, head buffer.Point, active bool)

	// FinishSelection is called when a drag ends on a non-empty span.
	FinishSelection()

	// ClearSelection deactivates any selection.
	ClearSelection()

	// PasteAt moves the cursor to p and pastes the clipboard.
	PasteAt(p buffer.Point)

	// JumpToDiagnostic moves the cursor to the current diagnostic and
	// reports whether there was one.
	JumpToDiagnostic() bool

	// Scroll moves the view by delta rows without moving the cursor.
	Scroll(delta int)
}

// Config configures mouse handler behavior.
type Config struct {
	// ScrollLines is the number of lines to scroll per wheel tick.
	ScrollLines int
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{ScrollLines: 3}
}
