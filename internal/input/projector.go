package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"xrpanel/internal/interact"
)

// Projector turns viewport coordinates into a world-space ray. The
// production implementation unprojects through the active camera; tests
// substitute a fixed mapping.
type Projector interface {
	ScreenRay(pos rl.Vector2, source interact.SourceID) interact.Ray
}

// CameraProjector unprojects through a raylib 3D camera.
type CameraProjector struct {
	Camera func() rl.Camera3D
}

func NewCameraProjector(camera func() rl.Camera3D) *CameraProjector {
	return &CameraProjector{Camera: camera}
}

func (p *CameraProjector) ScreenRay(pos rl.Vector2, source interact.SourceID) interact.Ray {
	ray := rl.GetScreenToWorldRay(pos, p.Camera())
	return interact.NewRay(ray.Position, ray.Direction, source)
}
