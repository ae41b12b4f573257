package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"xrpanel/internal/interact"
)

// Pointer adapts a desktop pointer to the ray-source contract. The
// application feeds it viewport events; per tick it projects the latest
// coordinates into a world ray. When the pointer has left the viewport
// there is no ray and the tick has no active pointer input.
type Pointer struct {
	projector Projector

	pos     rl.Vector2
	inView  bool
	pressed bool
}

func NewPointer(projector Projector) *Pointer {
	return &Pointer{projector: projector}
}

// Move records the pointer position for the current tick.
func (p *Pointer) Move(pos rl.Vector2) {
	p.pos = pos
	p.inView = true
}

// Leave marks the pointer as outside the viewport: no ray until the next
// Move.
func (p *Pointer) Leave() {
	p.inView = false
}

// Press and Release are the engagement edges.
func (p *Pointer) Press()   { p.pressed = true }
func (p *Pointer) Release() { p.pressed = false }

func (p *Pointer) ID() interact.SourceID { return interact.SourcePointer }

func (p *Pointer) Ray() (interact.Ray, bool) {
	if !p.inView {
		return interact.Ray{}, false
	}
	return p.projector.ScreenRay(p.pos, interact.SourcePointer), true
}

func (p *Pointer) Engaged() bool { return p.pressed }
