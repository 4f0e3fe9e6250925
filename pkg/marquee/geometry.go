package marquee

import "math"

// invalidateGeometry schedules a re-measure of the content extent.
// While the frame loop runs, measurement is deferred to the start of
// the next frame so it reads post-layout extents; with the loop
// suspended it runs immediately so geometry never waits on visibility.
func (m *Marquee) invalidateGeometry() {
	m.needsMeasure = true
	if m.cancelFrame == nil {
		m.measureNow()
	}
}

// measureNow resolves the total content extent, preferring the host's
// own layout measurement over the statically declared block extents.
func (m *Marquee) measureNow() {
	m.needsMeasure = false
	if m.host.Measure != nil {
		m.SetContentExtent(m.host.Measure())
		return
	}
	total := 0.0
	for _, b := range m.blocks {
		total += b.Extent
	}
	// The container renders three stacked copies.
	m.SetContentExtent(total * 3)
}

// SetContentExtent applies a measured total extent of the container
// (all three copies) and derives the repeat period. Non-positive or
// non-finite extents keep the previous loopPoint, so layout thrashing
// never propagates a transient zero. The visual transform is
// re-published against the new geometry immediately, so a geometry
// change is never observable as a jump.
func (m *Marquee) SetContentExtent(total float64) {
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return
	}
	m.state.loopPoint = total / 3
	m.publishTransform()
}

// LoopPoint returns the measured repeat period, or zero before the
// first successful measurement.
func (m *Marquee) LoopPoint() float64 {
	return m.state.loopPoint
}
