package marquee

import (
	"math"
	"time"
)

const (
	// frameMillis is one frame unit at 60 Hz; elapsed wall time divided
	// by this yields the normalized deltaTime.
	frameMillis = 1000.0 / 60.0

	// maxFrameDelta bounds the integration step after frame drops.
	maxFrameDelta = 3.0

	// velocityRest is the magnitude below which velocity snaps to zero.
	velocityRest = 0.1
)

// frameDelta converts the wall time since the previous frame into a
// normalized deltaTime. The first frame after the loop (re)starts has
// no baseline and integrates as exactly one frame unit, so a long
// visibility gap is never integrated as one giant jump.
func (m *Marquee) frameDelta(now time.Time) float64 {
	if !m.hasBaseline {
		m.hasBaseline = true
		m.lastFrame = now
		return 1
	}
	elapsed := now.Sub(m.lastFrame)
	m.lastFrame = now
	dt := elapsed.Seconds() * 1000 / frameMillis
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// integrate advances the scroll state by one frame. The order is
// fixed: velocity decay, autonomous term, momentum term, then
// wrap-and-commit, so results are deterministic for a given deltaTime.
func (m *Marquee) integrate(dt float64) {
	s := &m.state

	if math.Abs(s.velocity) > velocityRest {
		s.velocity *= math.Pow(m.cfg.Friction, dt)
	} else {
		s.velocity = 0
	}

	next := s.position
	if !s.isDragging {
		if m.cfg.AutoScroll && s.autoScrollEnabled {
			next += directionSign(m.cfg.Direction) * m.cfg.Speed * dt
		}
		if math.Abs(s.velocity) > velocityRest {
			next += s.velocity * dt
		}
	}

	m.applyPosition(next)
}

func directionSign(d Direction) float64 {
	if d == DirectionDown {
		return 1
	}
	return -1
}

// wrapPosition pushes value into the canonical range (-2*loopPoint, 0]
// one period at a time. With loopPoint unmeasured it is a no-op.
func wrapPosition(value, loopPoint float64) float64 {
	if loopPoint <= 0 {
		return value
	}
	for value > 0 {
		value -= loopPoint
	}
	for value <= -2*loopPoint {
		value += loopPoint
	}
	return value
}

// visualPosition derives the rendered offset in (-loopPoint, 0] from a
// canonical position. This is what keeps the seam invisible no matter
// which of the three stacked copies the canonical position lives in.
func visualPosition(position, loopPoint float64) float64 {
	if loopPoint <= 0 {
		return position
	}
	v := math.Mod(position, loopPoint)
	if v > 0 {
		v -= loopPoint
	}
	return v
}
