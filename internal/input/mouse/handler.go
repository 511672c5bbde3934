package mouse

// Handler turns mouse events into cursor, selection and clipboard changes
// on a Target. It implements the press/drag/release state machine:
//
//	Idle --press--> Pressed --drag--> Dragging --release--> Idle
//	                   \------------release------------------/
//
// A press places the cursor and anchors a selection without activating
// it. Dragging moves only the head and activates the selection once it
// differs from the anchor. A release on the anchor is a plain click and
// leaves no selection; any other release finishes the selection.
type Handler struct {
	config Config
	drag   dragTracker
}

// NewHandler creates a new mouse handler with the given configuration.
func NewHandler(config Config) *Handler {
	if config.ScrollLines <= 0 {
		config.ScrollLines = DefaultConfig().ScrollLines
	}
	return &Handler{config: config}
}

// State returns the current drag-selection state.
func (h *Handler) State() State {
	return h.drag.state
}

// Handle processes one event against t and reports whether it changed
// anything.
func (h *Handler) Handle(ev Event, t Target) bool {
	switch ev.Action {
	case ActionPress:
		return h.handlePress(ev, t)
	case ActionDrag:
		return h.handleDrag(ev, t)
	case ActionRelease:
		return h.handleRelease(ev, t)
	}
	return false
}

// handlePress handles mouse button press events.
func (h *Handler) handlePress(ev Event, t Target) bool {
	switch ev.Button {
	case ButtonScrollUp:
		t.Scroll(-h.config.ScrollLines)
		return true
	case ButtonScrollDown:
		t.Scroll(h.config.ScrollLines)
		return true
	}

	hit := t.HitTest(ev.Position)
	switch ev.Button {
	case ButtonLeft:
		switch hit.Region {
		case RegionStatus:
			return t.JumpToDiagnostic()
		case RegionText:
			t.PlaceCursor(hit.Point)
			t.SetSelection(hit.Point, hit.Point, false)
			h.drag.start(hit.Point)
			return true
		}
	case ButtonRight:
		if hit.Region == RegionText {
			t.PasteAt(hit.Point)
			return true
		}
	}
	return false
}

// handleDrag handles pointer motion with a button held. Only the head of
// the selection moves; the cursor stays where the press put it.
func (h *Handler) handleDrag(ev Event, t Target) bool {
	if !h.drag.isActive() {
		return false
	}
	hit := t.HitTest(ev.Position)
	if hit.Region != RegionText && hit.Region != RegionGutter {
		return false
	}
	active := h.drag.update(hit.Point)
	t.SetSelection(h.drag.anchor, h.drag.head, active)
	return true
}

// handleRelease handles mouse button release events.
func (h *Handler) handleRelease(ev Event, t Target) bool {
	if !h.drag.isActive() {
		t.ClearSelection()
		return true
	}
	defer h.drag.end()

	head := h.drag.head
	if hit := t.HitTest(ev.Position); hit.Region == RegionText || hit.Region == RegionGutter {
		head = hit.Point
	}
	if head == h.drag.anchor {
		t.SetSelection(h.drag.anchor, head, false)
		return true
	}
	t.SetSelection(h.drag.anchor, head, true)
	t.FinishSelection()
	return true
}

// Reset clears all handler state.
func (h *Handler) Reset() {
	h.drag.end()
}
