package widgets

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"xrpanel/internal/interact"
)

type fixedSource struct {
	ray     interact.Ray
	hasRay  bool
	engaged bool
}

func (s *fixedSource) ID() interact.SourceID     { return interact.SourcePointer }
func (s *fixedSource) Ray() (interact.Ray, bool) { return s.ray, s.hasRay }
func (s *fixedSource) Engaged() bool             { return s.engaged }

func (s *fixedSource) aimAt(target *interact.Interaction) {
	pos := target.Node().WorldPosition()
	s.ray = interact.NewRay(rl.Vector3{X: pos.X, Y: pos.Y}, rl.Vector3{Z: -1}, interact.SourcePointer)
	s.hasRay = true
}

func newHarness() (*interact.System, *fixedSource) {
	src := &fixedSource{}
	sys := interact.NewSystem(interact.NewRegistry())
	sys.SettleDelay = 100 * time.Millisecond
	sys.Sources = func() []interact.Source { return []interact.Source{src} }
	return sys, src
}

func unitSize() rl.Vector3 { return rl.Vector3{X: 1, Y: 1, Z: 1} }

func TestButtonClickOncePerGesture(t *testing.T) {
	sys, src := newHarness()

	now := time.Unix(0, 0)
	guard := interact.NewGuardAt(func() time.Time { return now })

	btn, err := NewButton("Launch", unitSize(), DefaultStyle(), sys.Registry, guard, 300*time.Millisecond)
	if err != nil {
		t.Fatalf("NewButton failed: %v", err)
	}
	btn.Target().Node().Transform.Position = rl.Vector3{Z: -5}

	clicks := 0
	btn.OnClick.AddListener(func() { clicks++ })

	src.aimAt(btn.Target())
	sys.Update(now) // hovered
	src.engaged = true
	now = now.Add(16 * time.Millisecond)
	sys.Update(now) // selected -> click

	if clicks != 1 {
		t.Fatalf("Expected 1 click on selection, got %d", clicks)
	}

	// Hold the gesture through the settle revert and a re-hover: the
	// debounce window swallows any re-fire inside the cooldown.
	for i := 0; i < 10; i++ {
		now = now.Add(30 * time.Millisecond)
		sys.Update(now)
	}
	if clicks != 1 {
		t.Errorf("A single continuous gesture must click once, got %d", clicks)
	}
}

func TestButtonSecondGestureClicksAgain(t *testing.T) {
	sys, src := newHarness()

	now := time.Unix(0, 0)
	guard := interact.NewGuardAt(func() time.Time { return now })

	btn, err := NewButton("Launch", unitSize(), DefaultStyle(), sys.Registry, guard, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("NewButton failed: %v", err)
	}
	btn.Target().Node().Transform.Position = rl.Vector3{Z: -5}

	clicks := 0
	btn.OnClick.AddListener(func() { clicks++ })

	gesture := func() {
		src.aimAt(btn.Target())
		src.engaged = false
		sys.Update(now) // hovered
		now = now.Add(16 * time.Millisecond)
		src.engaged = true
		sys.Update(now) // selected
		now = now.Add(150 * time.Millisecond)
		sys.Update(now) // settle revert
		src.engaged = false
		now = now.Add(16 * time.Millisecond)
		sys.Update(now)
	}

	gesture()
	gesture()

	if clicks != 2 {
		t.Errorf("Two separate gestures should click twice, got %d", clicks)
	}
}

func TestButtonHoverFade(t *testing.T) {
	sys, src := newHarness()
	btn, err := NewButton("Fade", unitSize(), DefaultStyle(), sys.Registry, nil, 0)
	if err != nil {
		t.Fatalf("NewButton failed: %v", err)
	}
	btn.Target().Node().Transform.Position = rl.Vector3{Z: -5}

	src.aimAt(btn.Target())
	sys.Update(time.Unix(0, 0))

	if btn.Highlight() != 0 {
		t.Fatal("Highlight should start at 0")
	}

	btn.Update(0.05)
	mid := btn.Highlight()
	if mid <= 0 || mid >= 1 {
		t.Errorf("Highlight should be easing toward 1, got %f", mid)
	}

	btn.Update(1)
	if btn.Highlight() != 1 {
		t.Errorf("Highlight should settle at 1, got %f", btn.Highlight())
	}

	c := btn.Color()
	if c != btn.Style.Hover {
		t.Errorf("Fully hovered button should show the hover color, got %v", c)
	}
}

func TestButtonDisposeStopsHits(t *testing.T) {
	sys, src := newHarness()
	btn, err := NewButton("Gone", unitSize(), DefaultStyle(), sys.Registry, nil, 0)
	if err != nil {
		t.Fatalf("NewButton failed: %v", err)
	}
	btn.Target().Node().Transform.Position = rl.Vector3{Z: -5}
	src.aimAt(btn.Target())

	btn.Dispose(sys.Registry)
	sys.Update(time.Unix(0, 0))

	if sys.Registry.Contains(btn.Target()) {
		t.Error("Disposed button should leave the registry at the tick boundary")
	}
}

func TestWidgetConstructionFailsWithoutSurface(t *testing.T) {
	style := DefaultStyle()
	style.Surface = func(w, h int32) rl.RenderTexture2D {
		return rl.RenderTexture2D{} // no GPU id
	}

	registry := interact.NewRegistry()

	if _, err := NewButton("Broken", unitSize(), style, registry, nil, 0); err == nil {
		t.Error("Button construction must fail without a drawing surface")
	}
	if _, err := NewToggle("Broken", unitSize(), style, registry, nil, 0); err == nil {
		t.Error("Toggle construction must fail without a drawing surface")
	}
	if _, err := NewStatusPanel("Broken", unitSize(), style, registry); err == nil {
		t.Error("Status panel construction must fail without a drawing surface")
	}
	if registry.Len() != 0 {
		t.Error("Failed construction must not leave targets registered")
	}
}

func TestToggleFlipsOncePerGesture(t *testing.T) {
	sys, src := newHarness()

	now := time.Unix(0, 0)
	guard := interact.NewGuardAt(func() time.Time { return now })

	tg, err := NewToggle("Lights", unitSize(), DefaultStyle(), sys.Registry, guard, 300*time.Millisecond)
	if err != nil {
		t.Fatalf("NewToggle failed: %v", err)
	}
	tg.Target().Node().Transform.Position = rl.Vector3{Z: -5}

	var seen []bool
	tg.OnChanged.AddListener(func(on bool) { seen = append(seen, on) })

	src.aimAt(tg.Target())
	sys.Update(now)
	src.engaged = true
	now = now.Add(16 * time.Millisecond)
	sys.Update(now)

	if !tg.On {
		t.Error("Toggle should flip on on selection")
	}
	if len(seen) != 1 || !seen[0] {
		t.Errorf("Expected OnChanged [true], got %v", seen)
	}

	for i := 0; i < 5; i++ {
		now = now.Add(30 * time.Millisecond)
		sys.Update(now)
	}
	if len(seen) != 1 {
		t.Errorf("Held gesture must flip once, got %v", seen)
	}
}

func TestStatusPanelColorTracksState(t *testing.T) {
	registry := interact.NewRegistry()
	p, err := NewStatusPanel("Link", unitSize(), DefaultStyle(), registry)
	if err != nil {
		t.Fatalf("NewStatusPanel failed: %v", err)
	}

	if p.Color() != p.Style.Normal {
		t.Error("Idle panel should show the normal color")
	}

	p.Target().ForceActive()
	if p.Color() != p.Style.Active {
		t.Error("Active panel should show the active color")
	}

	p.Target().ClearActive()
	if p.Color() != p.Style.Normal {
		t.Error("Cleared panel should return to the normal color")
	}
}
