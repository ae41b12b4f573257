package widgets

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"xrpanel/internal/engine"
	"xrpanel/internal/interact"
	"xrpanel/internal/status"
)

// StatusPanel mirrors an externally polled condition. Its interaction
// target is pushed into and out of the active override by a status.Poller;
// hover and selection still work in between, because the override only
// replaces the automatic idle dynamics, not hit testing.
type StatusPanel struct {
	engine.BaseComponent

	Label string
	Style Style

	target *interact.Interaction
	poller *status.Poller
}

func NewStatusPanel(label string, size rl.Vector3, style Style, registry *interact.Registry) (*StatusPanel, error) {
	p := &StatusPanel{
		Label: label,
		Style: style,
	}

	if _, _, err := acquireSurface(style, label, 256, 64); err != nil {
		return nil, fmt.Errorf("new status panel: %w", err)
	}

	node := engine.NewNode("StatusPanel:" + label)
	node.AddComponent(interact.NewBoxCollider(size))
	p.target = interact.NewInteraction(nil)
	node.AddComponent(p.target)
	node.AddComponent(p)

	registry.Register(p.target)
	return p, nil
}

// Bind attaches a poller probing the external condition. Call Unbind (or
// Dispose) to tear the polling down; binding twice replaces the previous
// poller.
func (p *StatusPanel) Bind(ctx context.Context, system *interact.System, interval time.Duration, probe status.Probe) {
	p.Unbind()
	p.poller = status.NewPoller(system, p.target, interval, probe)
	p.poller.Start(ctx)
}

func (p *StatusPanel) Unbind() {
	if p.poller != nil {
		p.poller.Stop()
		p.poller = nil
	}
}

func (p *StatusPanel) Dispose(registry *interact.Registry) {
	p.Unbind()
	registry.Unregister(p.target)
}

func (p *StatusPanel) Target() *interact.Interaction { return p.target }

func (p *StatusPanel) State() interact.State { return p.target.State() }

func (p *StatusPanel) Color() rl.Color {
	switch p.target.State() {
	case interact.StateActive:
		return p.Style.Active
	case interact.StateSelected:
		return p.Style.Selected
	case interact.StateHovered:
		return p.Style.Hover
	}
	return p.Style.Normal
}
