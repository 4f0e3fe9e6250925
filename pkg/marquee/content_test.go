package marquee

import (
	"testing"

	"github.com/go-drift/marquee/pkg/observe"
	"github.com/go-drift/marquee/pkg/semantics"
)

func TestBuildGroupsReplicatesContentThreeTimes(t *testing.T) {
	blocks := []Block{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	groups := BuildGroups(blocks)

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	for i, g := range groups {
		if len(g.Blocks) != 3 {
			t.Fatalf("group %d has %d blocks, want 3", i, len(g.Blocks))
		}
	}

	live := groups[0]
	if !live.Live || !live.Interactive {
		t.Fatal("first group must be the live, interactive copy")
	}
	if live.Semantics.Flags.Has(semantics.FlagHidden) {
		t.Fatal("live group must be exposed to assistive technology")
	}
	if !live.Semantics.Flags.Has(semantics.FlagFocusable) {
		t.Fatal("live group must be reachable by accessibility focus")
	}

	for i, g := range groups {
		if g.Semantics.IsEmpty() {
			t.Fatalf("group %d carries no semantic annotation", i)
		}
	}

	for i, replica := range groups[1:] {
		if replica.Live || replica.Interactive {
			t.Fatalf("replica %d must be non-interactive", i+1)
		}
		if replica.Semantics.Role != semantics.RolePresentation {
			t.Fatalf("replica %d role = %v, want presentation", i+1, replica.Semantics.Role)
		}
		if !replica.Semantics.Flags.Has(semantics.FlagHidden) {
			t.Fatalf("replica %d must be hidden from assistive technology", i+1)
		}
	}
}

// fakeViewport records observation requests and lets tests drive
// visibility reports.
type fakeViewport struct {
	targets    []observe.Target
	opts       observe.ViewportOptions
	cb         func(observe.Target, bool)
	disconnect int
}

func (v *fakeViewport) Observe(targets []observe.Target, opts observe.ViewportOptions, cb func(observe.Target, bool)) func() {
	v.targets = targets
	v.opts = opts
	v.cb = cb
	return func() { v.disconnect++ }
}

func TestViewportObservationReportsBlockVisibility(t *testing.T) {
	viewport := &fakeViewport{}
	f := newFixture(DefaultConfig())
	f.m.host.Viewport = viewport

	var visible []int
	f.m.cb.OnBlockVisible = func(index int, v bool) {
		if v {
			visible = append(visible, index)
		}
	}

	f.m.SetContent([]Block{{ID: "a", Extent: 300}, {ID: "b", Extent: 300}})
	f.m.Mount()
	defer f.m.Unmount()

	if len(viewport.targets) != 2 {
		t.Fatalf("expected 2 observed targets, got %d", len(viewport.targets))
	}
	if viewport.opts.Threshold <= 0 {
		t.Fatal("observation must carry a visibility threshold")
	}

	viewport.cb(observe.Target(1), true)
	if len(visible) != 1 || visible[0] != 1 {
		t.Fatalf("visible = %v, want [1]", visible)
	}
}

func TestViewportDisconnectedOnUnmount(t *testing.T) {
	viewport := &fakeViewport{}
	f := newFixture(DefaultConfig())
	f.m.host.Viewport = viewport
	f.m.cb.OnBlockVisible = func(int, bool) {}
	f.m.SetContent([]Block{{ID: "a", Extent: 100}})
	f.m.Mount()

	f.m.Unmount()
	if viewport.disconnect == 0 {
		t.Fatal("unmount must disconnect viewport observation")
	}
}

func TestAbsentViewportObserverSkipsFeature(t *testing.T) {
	f := newFixture(DefaultConfig())
	f.m.cb.OnBlockVisible = func(int, bool) {}
	f.m.SetContent([]Block{{ID: "a", Extent: 100}})
	f.m.Mount()
	defer f.m.Unmount()
	// No observer injected: mounting must simply skip the feature.
}
