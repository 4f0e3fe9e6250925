package marquee

import "time"

// interactionPause suppresses autonomous scrolling in response to a
// user interaction: any pending resume timer is cancelled and the live
// gate flips off. It is a no-op when the caller has opted out of
// pause-on-interaction.
func (m *Marquee) interactionPause() {
	if !m.cfg.PauseOnInteraction {
		return
	}
	m.cancelResumeTimer()
	if m.state.autoScrollEnabled {
		m.state.autoScrollEnabled = false
		m.notifyPause()
	}
}

// scheduleResume arms the quiet-period timer. Re-arming always cancels
// the previous timer first, so only the most recent interaction's
// timer can ever fire. When it fires, the policy flag and the explicit
// pause are re-checked; if either fails the gate stays off silently.
func (m *Marquee) scheduleResume() {
	if !m.cfg.PauseOnInteraction {
		return
	}
	m.cancelResumeTimer()
	delay := time.Duration(m.cfg.ResumeDelay * float64(time.Millisecond))
	m.cancelResume = m.host.Timers.AfterFunc(delay, func() {
		m.cancelResume = nil
		if !m.cfg.AutoScroll || m.state.isPaused {
			return
		}
		if !m.state.autoScrollEnabled {
			m.state.autoScrollEnabled = true
			m.notifyResume()
		}
	})
}

func (m *Marquee) cancelResumeTimer() {
	if m.cancelResume != nil {
		m.cancelResume()
		m.cancelResume = nil
	}
}

// togglePause flips the explicit keyboard pause. Pausing suppresses
// autonomous scrolling and always notifies; unpausing re-enables the
// live gate and notifies only when the policy flag permits autonomous
// scroll. Both directions tear down or restart the frame loop.
func (m *Marquee) togglePause() {
	s := &m.state
	if !s.isPaused {
		s.isPaused = true
		m.cancelResumeTimer()
		s.autoScrollEnabled = false
		m.notifyPause()
	} else {
		s.isPaused = false
		s.autoScrollEnabled = true
		if m.cfg.AutoScroll {
			m.notifyResume()
		}
	}
	m.syncFrameLoop()
}

// SetAutoScroll toggles the autonomous-scroll policy at runtime.
// Turning the policy off cancels any pending resume timer and forces
// the live gate back on, so a later re-enable never inherits a stale
// suppression.
func (m *Marquee) SetAutoScroll(enabled bool) {
	m.cfg.AutoScroll = enabled
	if !enabled {
		m.cancelResumeTimer()
		m.state.autoScrollEnabled = true
	}
}
