package widgets

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"xrpanel/internal/engine"
	"xrpanel/internal/interact"
)

// Toggle is an on/off switch. Entry to selected flips the value through
// the same debounce path a button click uses, so one gesture flips once.
type Toggle struct {
	engine.BaseComponent

	Label     string
	Style     Style
	On        bool
	OnChanged engine.EventWithArg[bool]

	target   *interact.Interaction
	guard    *interact.Guard
	cooldown time.Duration
	actionID string
}

func NewToggle(label string, size rl.Vector3, style Style, registry *interact.Registry, guard *interact.Guard, cooldown time.Duration) (*Toggle, error) {
	tg := &Toggle{
		Label:    label,
		Style:    style,
		guard:    guard,
		cooldown: cooldown,
	}

	if _, _, err := acquireSurface(style, label, 256, 64); err != nil {
		return nil, fmt.Errorf("new toggle: %w", err)
	}

	node := engine.NewNode("Toggle:" + label)
	node.AddComponent(interact.NewBoxCollider(size))
	tg.target = interact.NewInteraction(tg.onState)
	node.AddComponent(tg.target)
	node.AddComponent(tg)

	tg.actionID = fmt.Sprintf("toggle:%d", node.UID)
	registry.Register(tg.target)
	return tg, nil
}

func (tg *Toggle) Dispose(registry *interact.Registry) {
	registry.Unregister(tg.target)
}

func (tg *Toggle) Target() *interact.Interaction { return tg.target }

func (tg *Toggle) State() interact.State { return tg.target.State() }

func (tg *Toggle) onState(s interact.State) {
	if s != interact.StateSelected {
		return
	}
	flip := func() {
		tg.On = !tg.On
		tg.OnChanged.Invoke(tg.On)
	}
	if tg.guard != nil {
		tg.guard.Do(tg.actionID, tg.cooldown, flip)
	} else {
		flip()
	}
}

func (tg *Toggle) Color() rl.Color {
	switch tg.target.State() {
	case interact.StateSelected:
		return tg.Style.Selected
	case interact.StateActive:
		return tg.Style.Active
	case interact.StateHovered:
		return tg.Style.Hover
	}
	if tg.On {
		return tg.Style.Active
	}
	return tg.Style.Normal
}
