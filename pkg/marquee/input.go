package marquee

import "github.com/go-drift/marquee/pkg/gestures"

const (
	// wheelImpulse scales wheel deltas into velocity.
	wheelImpulse = 0.3

	// keyImpulse is the fixed velocity kick for arrow keys.
	keyImpulse = 15.0
)

// Key identifies a handled keyboard key.
type Key int

const (
	// KeySpace toggles the explicit pause.
	KeySpace Key = iota
	// KeyArrowUp nudges the content with an upward-reveal impulse.
	KeyArrowUp
	// KeyArrowDown nudges the content with a downward-reveal impulse.
	KeyArrowDown
	// KeyHome jumps to the start of the content.
	KeyHome
	// KeyEnd jumps to the end of one content copy.
	KeyEnd
)

// HandlePointer feeds one pointer event into the marquee. Mouse and
// touch share this path; only the first contact is tracked, so a
// second touch during a drag is ignored. The host attaches down events
// on the component's surface and move/end events on the window, so a
// drag that leaves the surface is still tracked to completion.
//
// Returns true when the event was consumed.
func (m *Marquee) HandlePointer(event gestures.PointerEvent) bool {
	if !m.cfg.Draggable {
		return false
	}
	switch event.Phase {
	case gestures.PointerPhaseDown:
		if !m.drag.Down(event) {
			return false
		}
		m.state.isDragging = true
		m.state.velocity = 0
		m.interactionPause()
		return true

	case gestures.PointerPhaseMove:
		delta, ok := m.drag.Move(event)
		if !ok {
			return false
		}
		m.applyPosition(m.state.position + delta)
		m.state.velocity = delta
		return true

	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		if !m.drag.Up(event) {
			return false
		}
		m.state.isDragging = false
		m.scheduleResume()
		return true
	}
	return false
}

// HandleWheel feeds one wheel event into the marquee, converting the
// vertical delta into a velocity impulse. Returns true when consumed,
// so the host can suppress its own default scrolling.
func (m *Marquee) HandleWheel(event gestures.WheelEvent) bool {
	if !m.cfg.WheelEnabled {
		return false
	}
	m.state.velocity -= event.DeltaY * wheelImpulse
	m.interactionPause()
	m.scheduleResume()
	return true
}

// HandleKey feeds one key press into the marquee. The host must call
// this only while the component's surface holds input focus, and
// should suppress the browser-default behavior for any key this
// reports as consumed.
func (m *Marquee) HandleKey(key Key) bool {
	if !m.cfg.Keyboard {
		return false
	}
	switch key {
	case KeySpace:
		m.togglePause()
		return true

	case KeyArrowUp:
		m.state.velocity += keyImpulse
		m.interactionPause()
		m.scheduleResume()
		return true

	case KeyArrowDown:
		m.state.velocity -= keyImpulse
		m.interactionPause()
		m.scheduleResume()
		return true

	case KeyHome:
		m.applyPosition(0)
		m.state.velocity = 0
		m.interactionPause()
		m.scheduleResume()
		return true

	case KeyEnd:
		if m.state.loopPoint > 0 {
			m.applyPosition(-m.state.loopPoint)
		}
		m.state.velocity = 0
		m.interactionPause()
		m.scheduleResume()
		return true
	}
	return false
}
