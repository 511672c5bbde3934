package mouse

import "github.com/dshills/az/internal/engine/buffer"

// State is the drag-selection state.
type State uint8

const (
	// StateIdle means no primary button is held.
	StateIdle State = iota
	// StatePressed means the button went down but the pointer has not
	// moved to another position yet.
	StatePressed
	// StateDragging means the pointer moved while the button was held.
	StateDragging
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// dragTracker tracks mouse drag state.
type dragTracker struct {
	state State

	// anchor is where the press landed; head follows the pointer.
	anchor buffer.Point
	head   buffer.Point

	// activated becomes true the first time head leaves anchor.
	activated bool
}

// start begins a new drag operation.
func (t *dragTracker) start(p buffer.Point) {
	t.state = StatePressed
	t.anchor = p
	t.head = p
	t.activated = false
}

// update moves the head and reports whether the selection is active.
func (t *dragTracker) update(p buffer.Point) bool {
	t.state = StateDragging
	t.head = p
	if p != t.anchor {
		t.activated = true
	}
	return t.activated
}

// end ends the current drag operation.
func (t *dragTracker) end() {
	*t = dragTracker{}
}

// isActive returns true if the button is held.
func (t *dragTracker) isActive() bool {
	return t.state != StateIdle
}
