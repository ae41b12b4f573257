package xr

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"xrpanel/internal/engine"
	"xrpanel/internal/input"
	"xrpanel/internal/interact"
)

// Controller owns one tracked controller's scene presence: a grip node
// with ray and reticle visuals attached as children. The children track
// the grip transform for the scene's lifetime and are never reparented;
// the only per-tick adjustment is the reticle's local position, which is
// pinned to the latest hit point while the controller is visible.
type Controller struct {
	id   interact.SourceID
	Grip *engine.Node
	// RayNode is the beam visual along the grip's forward axis.
	RayNode *engine.Node
	// ReticleNode marks the current hit point.
	ReticleNode *engine.Node

	attached  bool
	selecting bool
}

func NewController(id interact.SourceID) *Controller {
	name := "Controller0"
	if id == interact.SourceController1 {
		name = "Controller1"
	}

	grip := engine.NewNode(name)
	rayNode := engine.NewNode(name + "Ray")
	reticle := engine.NewNode(name + "Reticle")
	grip.AddChild(rayNode)
	grip.AddChild(reticle)

	c := &Controller{
		id:          id,
		Grip:        grip,
		RayNode:     rayNode,
		ReticleNode: reticle,
	}
	c.SetVisible(false) // hidden until a session starts
	return c
}

func (c *Controller) ID() interact.SourceID { return c.id }

// Source builds the ray-source adapter feeding the interaction system.
func (c *Controller) Source() *input.ControllerRay {
	src := input.NewControllerRay(c.id, c.Grip)
	src.Attached = c.IsAttached
	src.Selecting = c.IsSelecting
	return src
}

func (c *Controller) Attach()   { c.attached = true }
func (c *Controller) Detach()   { c.attached = false }
func (c *Controller) IsAttached() bool { return c.attached }

// SelectStart and SelectEnd mirror the controller's select action.
func (c *Controller) SelectStart() { c.selecting = true }
func (c *Controller) SelectEnd()   { c.selecting = false }
func (c *Controller) IsSelecting() bool { return c.selecting }

// SetVisible flips the grip node; ray and reticle inherit through the
// hierarchy.
func (c *Controller) SetVisible(v bool) {
	c.Grip.Visible = v
}

func (c *Controller) Visible() bool {
	return c.Grip.Visible
}

// PlaceReticle pins the reticle to a world-space hit point, expressed in
// grip-local coordinates so it keeps tracking the grip between updates.
func (c *Controller) PlaceReticle(worldPoint rl.Vector3) {
	c.ReticleNode.Transform.Position = c.Grip.WorldToLocal(worldPoint)
}
