package input

import (
	"xrpanel/internal/engine"
	"xrpanel/internal/interact"
)

// ControllerRay adapts a tracked controller grip node to the ray-source
// contract: origin is the grip's world position, direction its world-space
// forward axis. Attached and Selecting are closures into the owning
// controller's state so the source always reflects the current tick.
type ControllerRay struct {
	id        interact.SourceID
	grip      *engine.Node
	Attached  func() bool
	Selecting func() bool
}

func NewControllerRay(id interact.SourceID, grip *engine.Node) *ControllerRay {
	return &ControllerRay{id: id, grip: grip}
}

func (c *ControllerRay) ID() interact.SourceID { return c.id }

func (c *ControllerRay) Ray() (interact.Ray, bool) {
	if c.grip == nil || (c.Attached != nil && !c.Attached()) {
		return interact.Ray{}, false
	}
	return interact.NewRay(c.grip.WorldPosition(), c.grip.Forward(), c.id), true
}

func (c *ControllerRay) Engaged() bool {
	return c.Selecting != nil && c.Selecting()
}
