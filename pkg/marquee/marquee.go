// Package marquee implements a smooth, infinitely looping,
// physics-based content rail. The component owns one scalar scroll
// position for one container and coordinates five input sources
// (autonomous ticking, pointer drag, touch drag, wheel, and keyboard)
// into that single value, publishing it once per frame as a vertical
// translation.
//
// The component is renderer-agnostic: it measures nothing and draws
// nothing itself. The host injects its capabilities through [Host]
// (frame scheduling, timers, visibility, resize and intersection
// observation) and consumes the published [geometry.Transform] to
// position the three replicated content groups.
//
// All methods must be called from the host's UI event loop. The
// component is not safe for concurrent use and is never shared between
// instances.
package marquee

import (
	"time"

	"github.com/go-drift/marquee/pkg/animation"
	"github.com/go-drift/marquee/pkg/errors"
	"github.com/go-drift/marquee/pkg/geometry"
	"github.com/go-drift/marquee/pkg/gestures"
	"github.com/go-drift/marquee/pkg/observe"
)

// Host is the set of environment capabilities injected into a Marquee.
// When Frames or Timers is nil a wall-clock [animation.Driver] fills
// the gap; it is reachable through [Marquee.Driver] and the host must
// then step it once per display frame. The remaining capabilities are
// optional and their absence degrades the dependent feature silently:
// no Visibility means the tab is assumed visible, no Resize or Box
// means geometry recalculates only on content changes, and no Viewport
// skips block visibility reporting.
type Host struct {
	Frames animation.FrameScheduler
	Timers animation.TimerScheduler

	// Measure returns the container's full scrollable extent (three
	// stacked copies) after layout. When nil, the extent is derived
	// from the declared Block extents.
	Measure func() float64

	Visibility observe.VisibilitySignal
	Resize     observe.ResizeSignal
	Box        observe.BoxObserver
	Viewport   observe.ViewportObserver
}

// Marquee is one infinite-loop scroll component instance.
type Marquee struct {
	cfg    Config
	cb     Callbacks
	host   Host
	driver *animation.Driver

	state scrollState
	drag  gestures.DragTracker

	blocks []Block
	groups []Group

	transform geometry.Transform

	mounted      bool
	needsMeasure bool

	// frame loop; cancelFrame non-nil means a callback is outstanding
	cancelFrame func()
	lastFrame   time.Time
	hasBaseline bool

	cancelResume func()

	removeVisibility func()
	removeResize     func()
	disconnectBox    func()

	disconnectViewport func()
}

// New creates a Marquee with the given configuration, host
// capabilities, and notification callbacks. The configuration is
// normalized; invalid numeric values fall back to their defaults.
// Call Mount to attach and start the component.
func New(cfg Config, host Host, cb Callbacks) *Marquee {
	var driver *animation.Driver
	if host.Frames == nil || host.Timers == nil {
		driver = animation.NewDriver(nil)
		if host.Frames == nil {
			host.Frames = driver
		}
		if host.Timers == nil {
			host.Timers = driver
		}
	}
	return &Marquee{
		cfg:       cfg.normalized(),
		cb:        cb,
		host:      host,
		driver:    driver,
		transform: geometry.Identity(),
		state: scrollState{
			autoScrollEnabled: true,
			isTabActive:       true,
		},
	}
}

// Driver returns the fallback scheduler created when the host supplied
// no Frames or Timers, or nil when the host brought its own.
func (m *Marquee) Driver() *animation.Driver {
	return m.driver
}

// Mount attaches the component to its host signals, performs the
// initial geometry measurement, and starts the frame loop if the tab
// is visible.
func (m *Marquee) Mount() {
	if m.mounted {
		return
	}
	m.mounted = true

	if m.host.Visibility != nil {
		m.state.isTabActive = m.host.Visibility.Visible()
		m.removeVisibility = m.host.Visibility.AddListener(m.onVisibility)
	}
	if m.host.Resize != nil {
		m.removeResize = m.host.Resize.AddListener(func() {
			m.invalidateGeometry()
		})
	}
	if m.host.Box != nil {
		m.disconnectBox = m.host.Box.Observe(func(geometry.Size) {
			m.invalidateGeometry()
		})
	}
	m.observeViewport()
	m.measureNow()
	m.syncFrameLoop()
}

// Unmount synchronously cancels the outstanding frame callback and
// resume timer and detaches every listener and observer. A Marquee
// must not be reused after Unmount.
func (m *Marquee) Unmount() {
	if !m.mounted {
		return
	}
	m.mounted = false

	if m.cancelFrame != nil {
		m.cancelFrame()
		m.cancelFrame = nil
	}
	m.cancelResumeTimer()

	if m.removeVisibility != nil {
		m.removeVisibility()
		m.removeVisibility = nil
	}
	if m.removeResize != nil {
		m.removeResize()
		m.removeResize = nil
	}
	if m.disconnectBox != nil {
		m.disconnectBox()
		m.disconnectBox = nil
	}
	if m.disconnectViewport != nil {
		m.disconnectViewport()
		m.disconnectViewport = nil
	}
}

// Position returns the raw committed scroll position.
func (m *Marquee) Position() float64 {
	return m.state.position
}

// Transform returns the last published visual transform.
func (m *Marquee) Transform() geometry.Transform {
	return m.transform
}

// IsPaused reports whether the explicit keyboard pause is active.
func (m *Marquee) IsPaused() bool {
	return m.state.isPaused
}

// active reports whether the integrator may run: tab visible and not
// explicitly paused.
func (m *Marquee) active() bool {
	return m.state.isTabActive && !m.state.isPaused
}

// syncFrameLoop reconciles the frame loop with the current state:
// running while mounted and active, torn down entirely otherwise. A
// restart resets the frame-delta baseline, so the first frame back
// integrates as one frame unit.
func (m *Marquee) syncFrameLoop() {
	if m.mounted && m.active() {
		if m.cancelFrame == nil {
			m.hasBaseline = false
			m.requestFrame()
		}
		return
	}
	if m.cancelFrame != nil {
		m.cancelFrame()
		m.cancelFrame = nil
	}
}

func (m *Marquee) requestFrame() {
	m.cancelFrame = m.host.Frames.RequestFrame(m.onFrame)
}

// onFrame is the per-frame entry point: pending geometry first, then
// one integration step, then re-arm for the next frame.
func (m *Marquee) onFrame(now time.Time) {
	m.cancelFrame = nil
	if !m.mounted || !m.active() {
		return
	}
	if m.needsMeasure {
		m.measureNow()
	}
	m.integrate(m.frameDelta(now))
	// A callback may have unmounted or paused us mid-frame.
	if m.mounted && m.active() {
		m.requestFrame()
	}
}

func (m *Marquee) onVisibility(visible bool) {
	m.state.isTabActive = visible
	m.syncFrameLoop()
}

// applyPosition wraps the candidate into the canonical range and, when
// it differs from the committed position, commits and publishes it.
// Committing an unchanged position is a no-op, so duplicate scroll
// notifications never fire.
func (m *Marquee) applyPosition(value float64) {
	wrapped := wrapPosition(value, m.state.loopPoint)
	if wrapped == m.state.position {
		return
	}
	m.state.position = wrapped
	m.publishTransform()
	m.notifyScroll(wrapped)
}

// publishTransform derives the visual offset from the committed
// position and publishes it as a vertical translation.
func (m *Marquee) publishTransform() {
	m.transform = geometry.Translate(0, visualPosition(m.state.position, m.state.loopPoint))
	if m.cb.OnTransform == nil {
		return
	}
	defer errors.Recover("marquee.onTransform")
	m.cb.OnTransform(m.transform)
}

func (m *Marquee) notifyScroll(position float64) {
	if m.cb.OnScroll == nil {
		return
	}
	defer errors.Recover("marquee.onScroll")
	m.cb.OnScroll(position)
}

func (m *Marquee) notifyPause() {
	if m.cb.OnPause == nil {
		return
	}
	defer errors.Recover("marquee.onPause")
	m.cb.OnPause()
}

func (m *Marquee) notifyResume() {
	if m.cb.OnResume == nil {
		return
	}
	defer errors.Recover("marquee.onResume")
	m.cb.OnResume()
}

func (m *Marquee) notifyBlockVisible(index int, visible bool) {
	if m.cb.OnBlockVisible == nil {
		return
	}
	defer errors.Recover("marquee.onBlockVisible")
	m.cb.OnBlockVisible(index, visible)
}
