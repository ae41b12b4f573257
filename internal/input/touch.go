package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"xrpanel/internal/interact"
)

// Touch adapts a touchscreen to the ray-source contract. Engagement spans
// the whole touch: it asserts on Begin and clears on End, and End also
// drops the coordinates so the tick after a lifted finger has no ray.
type Touch struct {
	projector Projector

	pos      rl.Vector2
	touching bool
}

func NewTouch(projector Projector) *Touch {
	return &Touch{projector: projector}
}

func (t *Touch) Begin(pos rl.Vector2) {
	t.pos = pos
	t.touching = true
}

// Drag updates the position of an in-progress touch.
func (t *Touch) Drag(pos rl.Vector2) {
	if t.touching {
		t.pos = pos
	}
}

func (t *Touch) End() {
	t.touching = false
}

func (t *Touch) ID() interact.SourceID { return interact.SourceTouch }

func (t *Touch) Ray() (interact.Ray, bool) {
	if !t.touching {
		return interact.Ray{}, false
	}
	return t.projector.ScreenRay(t.pos, interact.SourceTouch), true
}

func (t *Touch) Engaged() bool { return t.touching }
