package marquee

import (
	"github.com/go-drift/marquee/pkg/observe"
	"github.com/go-drift/marquee/pkg/semantics"
)

// Viewport observation parameters for lazy visibility hooks: blocks
// are reported visible when a tenth of them is within 100px of view.
const (
	viewportMargin    = 100.0
	viewportThreshold = 0.1
)

// Block describes one content block on the rail.
type Block struct {
	// ID identifies the block to the host's renderer.
	ID string
	// Extent is the block's main-axis size in pixels, when known
	// statically. Hosts that measure layout themselves leave it zero
	// and provide Host.Measure instead.
	Extent float64
}

// Group is one of the three stacked copies of the content set.
type Group struct {
	Blocks []Block

	// Live marks the single copy exposed to assistive technology and
	// search indexing. Replica groups are presentational and hidden.
	Live bool

	// Interactive marks whether the group participates in hit testing
	// and focus. Only the live group does.
	Interactive bool

	Semantics semantics.Config
}

// BuildGroups replicates the content set into the three groups the
// seamless loop needs: one live group and two presentational replicas
// hidden from assistive technology.
func BuildGroups(blocks []Block) []Group {
	groups := make([]Group, 3)
	for i := range groups {
		copied := make([]Block, len(blocks))
		copy(copied, blocks)
		if i == 0 {
			groups[i] = Group{
				Blocks:      copied,
				Live:        true,
				Interactive: true,
				Semantics: semantics.Config{
					Role:  semantics.RoleGroup,
					Flags: semantics.Flag(0).Set(semantics.FlagFocusable),
				},
			}
			continue
		}
		groups[i] = Group{
			Blocks: copied,
			Semantics: semantics.Config{
				Role:  semantics.RolePresentation,
				Flags: semantics.FlagHidden,
			},
		}
	}
	return groups
}

// SetContent replaces the content set, rebuilds the replicated groups,
// re-wires viewport observation for the live group, and invalidates
// loop geometry.
func (m *Marquee) SetContent(blocks []Block) {
	m.blocks = make([]Block, len(blocks))
	copy(m.blocks, blocks)
	m.groups = BuildGroups(m.blocks)
	if m.mounted {
		m.observeViewport()
		m.invalidateGeometry()
	}
}

// Groups returns the replicated content groups in render order.
func (m *Marquee) Groups() []Group {
	return m.groups
}

// observeViewport (re)subscribes the live group's blocks with the
// host's intersection capability. Absence of the capability, or of an
// interested callback, skips the feature silently.
func (m *Marquee) observeViewport() {
	if m.disconnectViewport != nil {
		m.disconnectViewport()
		m.disconnectViewport = nil
	}
	if m.host.Viewport == nil || m.cb.OnBlockVisible == nil || len(m.blocks) == 0 {
		return
	}
	targets := make([]observe.Target, len(m.blocks))
	for i := range targets {
		targets[i] = observe.Target(i)
	}
	opts := observe.ViewportOptions{Margin: viewportMargin, Threshold: viewportThreshold}
	m.disconnectViewport = m.host.Viewport.Observe(targets, opts, func(target observe.Target, visible bool) {
		m.notifyBlockVisible(int(target), visible)
	})
}
