package interact

import rl "github.com/gen2brain/raylib-go/raylib"

// SourceID identifies which input modality produced a ray.
type SourceID int

const (
	SourcePointer SourceID = iota
	SourceTouch
	SourceController0
	SourceController1
)

func (id SourceID) String() string {
	switch id {
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	case SourceController0:
		return "controller-0"
	case SourceController1:
		return "controller-1"
	}
	return "unknown"
}

// Ray is a world-space ray for one tick. Rays are rebuilt every tick and
// never persisted.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3 // normalized
	Source    SourceID
}

func NewRay(origin, direction rl.Vector3, source SourceID) Ray {
	return Ray{
		Origin:    origin,
		Direction: rl.Vector3Normalize(direction),
		Source:    source,
	}
}

// Source produces at most one ray plus an engagement flag per tick.
// Pointer, touch and tracked controllers all implement it.
type Source interface {
	ID() SourceID
	// Ray returns the active ray for this tick, or false when the
	// modality has no input (pointer left the viewport, touch ended,
	// controller detached).
	Ray() (Ray, bool)
	// Engaged reports whether the modality's select action is asserted
	// (button down, touch in progress, controller trigger held).
	Engaged() bool
}

// Hit is the arbitration result for one tick: the nearest intersected
// target, how far along the ray it sits, and the world-space point.
type Hit struct {
	Target   *Interaction
	Distance float32
	Point    rl.Vector3
}
