// Package gestures defines the pointer and wheel event types the host
// feeds into the marquee, and the drag bookkeeping that turns raw
// pointer events into a single vertical drag.
package gestures

import "github.com/go-drift/marquee/pkg/geometry"

// PointerPhase describes the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is the initial contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is movement while in contact.
	PointerPhaseMove
	// PointerPhaseUp is the end of contact.
	PointerPhaseUp
	// PointerPhaseCancel aborts the interaction (e.g., the host stole
	// the pointer).
	PointerPhaseCancel
)

// PointerKind identifies the input device behind a pointer event.
type PointerKind int

const (
	// PointerKindMouse is a mouse pointer.
	PointerKindMouse PointerKind = iota
	// PointerKindTouch is a touch contact.
	PointerKindTouch
)

// PointerEvent is one pointer state change delivered by the host.
type PointerEvent struct {
	PointerID int64
	Kind      PointerKind
	Position  geometry.Offset
	Delta     geometry.Offset
	Phase     PointerPhase
}

// WheelEvent is one scroll-wheel notch delivered by the host. Deltas
// follow the platform convention: positive DeltaY means the wheel
// scrolled content downward.
type WheelEvent struct {
	DeltaX float64
	DeltaY float64
}
