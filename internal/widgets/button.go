package widgets

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"xrpanel/internal/engine"
	"xrpanel/internal/interact"
)

const hoverFadeDuration float32 = 0.15 // seconds

// Button is a clickable 3D panel element. It consumes the interaction core
// through the capability contract: a collider for hit testing, an
// interaction component for state, and a debounced OnClick fired on entry
// to selected so a continuous gesture lands exactly one click.
type Button struct {
	engine.BaseComponent

	Label   string
	Style   Style
	OnClick engine.Event

	target   *interact.Interaction
	guard    *interact.Guard
	cooldown time.Duration
	actionID string

	labelTex rl.RenderTexture2D
	hasLabel bool

	highlight float32
	fade      *gween.Tween
}

// NewButton builds the button's node with its collider and interaction
// and registers it. The caller owns placing the returned node in the
// scene and disposing the button.
func NewButton(label string, size rl.Vector3, style Style, registry *interact.Registry, guard *interact.Guard, cooldown time.Duration) (*Button, error) {
	b := &Button{
		Label:    label,
		Style:    style,
		guard:    guard,
		cooldown: cooldown,
	}

	tex, has, err := acquireSurface(style, label, 256, 64)
	if err != nil {
		return nil, fmt.Errorf("new button: %w", err)
	}
	b.labelTex, b.hasLabel = tex, has

	node := engine.NewNode("Button:" + label)
	node.AddComponent(interact.NewBoxCollider(size))
	b.target = interact.NewInteraction(b.onState)
	node.AddComponent(b.target)
	node.AddComponent(b)

	b.actionID = fmt.Sprintf("button:%d", node.UID)
	registry.Register(b.target)
	return b, nil
}

// Dispose queues the button's removal from the registry; it stops being a
// hit target at the next tick boundary.
func (b *Button) Dispose(registry *interact.Registry) {
	registry.Unregister(b.target)
}

func (b *Button) Target() *interact.Interaction { return b.target }

func (b *Button) State() interact.State { return b.target.State() }

func (b *Button) onState(s interact.State) {
	switch s {
	case interact.StateHovered:
		b.fade = gween.New(b.highlight, 1, hoverFadeDuration, ease.OutQuad)
	case interact.StateIdle:
		b.fade = gween.New(b.highlight, 0, hoverFadeDuration, ease.OutQuad)
	case interact.StateSelected:
		if b.guard != nil {
			b.guard.Do(b.actionID, b.cooldown, b.OnClick.Invoke)
		} else {
			b.OnClick.Invoke()
		}
	}
}

func (b *Button) Update(deltaTime float32) {
	if b.fade == nil {
		return
	}
	v, done := b.fade.Update(deltaTime)
	b.highlight = v
	if done {
		b.fade = nil
	}
}

// Color resolves the current face color: selected and active states use
// their flat colors, hover blends by the eased highlight.
func (b *Button) Color() rl.Color {
	switch b.target.State() {
	case interact.StateSelected:
		return b.Style.Selected
	case interact.StateActive:
		return b.Style.Active
	}
	return lerpColor(b.Style.Normal, b.Style.Hover, b.highlight)
}

// Highlight exposes the eased hover blend for custom drawing.
func (b *Button) Highlight() float32 { return b.highlight }

// LabelTexture returns the generated label surface, when one was built.
func (b *Button) LabelTexture() (rl.RenderTexture2D, bool) {
	return b.labelTex, b.hasLabel
}

func lerpColor(a, b rl.Color, t float32) rl.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return rl.NewColor(lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A))
}
