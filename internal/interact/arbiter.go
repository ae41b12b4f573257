package interact

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"xrpanel/internal/engine"
)

// DefaultMaxDistance bounds hit testing; rays are not infinite.
const DefaultMaxDistance float32 = 100

// Arbiter resolves which registered target a ray is aimed at. Every
// target's full descendant geometry is tested and the globally nearest
// intersection wins; the hit is always attributed to the owning top-level
// target, never to a descendant node.
type Arbiter struct {
	MaxDistance float32
}

func NewArbiter() *Arbiter {
	return &Arbiter{MaxDistance: DefaultMaxDistance}
}

// Cast returns the nearest hit among targets, or false when the ray
// intersects nothing. No intersection is a normal outcome, not an error.
func (a *Arbiter) Cast(ray Ray, targets []*Interaction) (Hit, bool) {
	maxDist := a.MaxDistance
	if maxDist <= 0 {
		maxDist = DefaultMaxDistance
	}

	var closest Hit
	closest.Distance = maxDist
	found := false

	for _, target := range targets {
		node := target.Node()
		if node == nil || !node.VisibleInHierarchy() {
			continue
		}
		if dist, point, ok := castSubtree(ray, node, closest.Distance); ok {
			closest = Hit{Target: target, Distance: dist, Point: point}
			found = true
		}
	}

	if !found {
		return Hit{}, false
	}
	return closest, true
}

// castSubtree intersects the ray with the colliders of n and every
// descendant, returning the nearest intersection closer than limit.
func castSubtree(ray Ray, n *engine.Node, limit float32) (dist float32, point rl.Vector3, ok bool) {
	dist = limit

	if box := engine.GetComponent[*BoxCollider](n); box != nil {
		if t, p, hit := raycastBox(ray.Origin, ray.Direction, box, dist); hit && t < dist {
			dist, point, ok = t, p, true
		}
	}
	if sphere := engine.GetComponent[*SphereCollider](n); sphere != nil {
		if t, p, hit := raycastSphere(ray.Origin, ray.Direction, sphere, dist); hit && t < dist {
			dist, point, ok = t, p, true
		}
	}

	for _, child := range n.Children {
		if !child.Visible {
			continue
		}
		if t, p, hit := castSubtree(ray, child, dist); hit && t < dist {
			dist, point, ok = t, p, true
		}
	}

	return dist, point, ok
}
