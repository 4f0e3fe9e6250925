package gestures

// DragTracker follows a single pointer through a vertical drag. It
// accepts the first pointer that goes down and ignores every other
// pointer until that one ends, so a second touch contact never
// perturbs an in-progress drag.
type DragTracker struct {
	active    bool
	pointerID int64
	anchorY   float64
}

// Down starts tracking the event's pointer. Returns false if a drag is
// already in progress with a different pointer.
func (t *DragTracker) Down(event PointerEvent) bool {
	if t.active {
		return false
	}
	t.active = true
	t.pointerID = event.PointerID
	t.anchorY = event.Position.Y
	return true
}

// Move returns the vertical delta since the anchor and advances the
// anchor to the event's position. Returns ok=false for pointers other
// than the tracked one or when no drag is active.
func (t *DragTracker) Move(event PointerEvent) (delta float64, ok bool) {
	if !t.active || event.PointerID != t.pointerID {
		return 0, false
	}
	delta = event.Position.Y - t.anchorY
	t.anchorY = event.Position.Y
	return delta, true
}

// Up ends the drag if the event belongs to the tracked pointer.
// Returns true when the drag actually ended.
func (t *DragTracker) Up(event PointerEvent) bool {
	if !t.active || event.PointerID != t.pointerID {
		return false
	}
	t.active = false
	return true
}

// IsActive reports whether a drag is in progress.
func (t *DragTracker) IsActive() bool {
	return t.active
}
