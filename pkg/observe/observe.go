// Package observe defines the host capabilities the marquee consumes:
// document visibility, window resize, viewport intersection, and
// container box-size observation. Each capability is an interface the
// host injects at construction, never a package-level singleton, so
// multiple component instances stay independent and tests can drive
// every signal deterministically.
//
// Intersection and box observation are optional. A nil observer means
// the capability is absent from the host and the dependent feature is
// skipped; the component never fails because of a missing observer.
package observe

import "github.com/go-drift/marquee/pkg/geometry"

// Target identifies one observed element to a ViewportObserver.
// The marquee uses block indices within its live content group.
type Target int

// ViewportOptions configure intersection reporting.
type ViewportOptions struct {
	// Margin grows (positive) or shrinks (negative) the viewport used
	// for intersection checks, in pixels.
	Margin float64
	// Threshold is the fraction of a target that must intersect before
	// it is reported visible, in [0, 1].
	Threshold float64
}

// ViewportObserver reports targets entering and leaving the viewport.
type ViewportObserver interface {
	// Observe watches targets and invokes cb whenever one crosses the
	// visibility threshold. The returned disconnect stops all
	// observation and is idempotent.
	Observe(targets []Target, opts ViewportOptions, cb func(target Target, visible bool)) (disconnect func())
}

// BoxObserver reports size changes of the marquee's container that
// happen without a window resize, such as images finishing loading.
type BoxObserver interface {
	Observe(cb func(size geometry.Size)) (disconnect func())
}

// VisibilitySignal exposes whether the hosting document is visible.
type VisibilitySignal interface {
	Visible() bool
	// AddListener registers a callback for visibility changes and
	// returns a function that removes it.
	AddListener(fn func(visible bool)) (remove func())
}

// ResizeSignal notifies on window resize.
type ResizeSignal interface {
	AddListener(fn func()) (remove func())
}
