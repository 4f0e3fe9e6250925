package gestures

import (
	"testing"

	"github.com/go-drift/marquee/pkg/geometry"
)

func event(id int64, phase PointerPhase, y float64) PointerEvent {
	return PointerEvent{
		PointerID: id,
		Position:  geometry.Offset{Y: y},
		Phase:     phase,
	}
}

func TestDragTrackerFollowsSinglePointer(t *testing.T) {
	var tracker DragTracker

	if !tracker.Down(event(1, PointerPhaseDown, 100)) {
		t.Fatal("first contact should start a drag")
	}
	if !tracker.IsActive() {
		t.Fatal("tracker should be active after down")
	}

	delta, ok := tracker.Move(event(1, PointerPhaseMove, 80))
	if !ok || delta != -20 {
		t.Fatalf("move delta = %v ok=%v, want -20 true", delta, ok)
	}

	// Anchor advanced to 80.
	delta, ok = tracker.Move(event(1, PointerPhaseMove, 85))
	if !ok || delta != 5 {
		t.Fatalf("move delta = %v ok=%v, want 5 true", delta, ok)
	}

	if !tracker.Up(event(1, PointerPhaseUp, 85)) {
		t.Fatal("matching pointer should end the drag")
	}
	if tracker.IsActive() {
		t.Fatal("tracker should be idle after up")
	}
}

func TestDragTrackerIgnoresOtherPointers(t *testing.T) {
	var tracker DragTracker
	tracker.Down(event(1, PointerPhaseDown, 100))

	if tracker.Down(event(2, PointerPhaseDown, 50)) {
		t.Fatal("second contact must be rejected")
	}
	if _, ok := tracker.Move(event(2, PointerPhaseMove, 40)); ok {
		t.Fatal("moves from an untracked pointer must be ignored")
	}
	if tracker.Up(event(2, PointerPhaseUp, 40)) {
		t.Fatal("up from an untracked pointer must not end the drag")
	}

	// The tracked pointer's anchor is untouched by pointer 2.
	delta, ok := tracker.Move(event(1, PointerPhaseMove, 90))
	if !ok || delta != -10 {
		t.Fatalf("move delta = %v ok=%v, want -10 true", delta, ok)
	}
}

func TestDragTrackerIdleIgnoresMoves(t *testing.T) {
	var tracker DragTracker
	if _, ok := tracker.Move(event(1, PointerPhaseMove, 10)); ok {
		t.Fatal("moves without a drag must be ignored")
	}
	if tracker.Up(event(1, PointerPhaseUp, 10)) {
		t.Fatal("up without a drag must be ignored")
	}
}
