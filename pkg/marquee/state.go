package marquee

// scrollState is the single shared state all four subsystems operate
// on. It is owned exclusively by the Marquee instance and mutated only
// from its frame callback and event handlers, which the host's event
// loop never runs concurrently.
type scrollState struct {
	// position is the current scroll offset in pixels. Unbounded in
	// principle, but every integration step wraps it back into
	// (-2*loopPoint, 0] once geometry is known.
	position float64

	// velocity is the instantaneous momentum in pixels per frame unit.
	// It decays toward zero under friction.
	velocity float64

	// loopPoint is the measured repeat period: the extent of one
	// content copy. Zero means geometry has not been measured yet, and
	// all wrap math treats that as a no-op.
	loopPoint float64

	// autoScrollEnabled is the live gate for autonomous scrolling,
	// distinct from the Config.AutoScroll policy flag. Interaction
	// flips it off; the resume timer or an explicit unpause flips it
	// back on.
	autoScrollEnabled bool

	// isPaused is the explicit keyboard-toggled pause, independent of
	// interaction-driven suppression.
	isPaused bool

	// isDragging is true between a drag start and its matching end.
	isDragging bool

	// isTabActive mirrors document visibility; false freezes the
	// integrator entirely.
	isTabActive bool
}
