package interact

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"xrpanel/internal/engine"
)

// BoxCollider is an axis-aligned box in world space, sized in local units
// and scaled by the node's world scale.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) center() rl.Vector3 {
	return rl.Vector3Add(b.Node().WorldPosition(), b.Offset)
}

func (b *BoxCollider) worldSize() rl.Vector3 {
	s := b.Node().WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

// SphereCollider is a sphere centered on its node.
type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

func (s *SphereCollider) center() rl.Vector3 {
	return rl.Vector3Add(s.Node().WorldPosition(), s.Offset)
}

// raycastBox is a slab test against the collider's world-space AABB.
func raycastBox(origin, direction rl.Vector3, box *BoxCollider, maxDistance float32) (float32, rl.Vector3, bool) {
	center := box.center()
	worldSize := box.worldSize()
	halfSize := rl.Vector3{X: abs(worldSize.X) / 2, Y: abs(worldSize.Y) / 2, Z: abs(worldSize.Z) / 2}

	min := rl.Vector3{X: center.X - halfSize.X, Y: center.Y - halfSize.Y, Z: center.Z - halfSize.Z}
	max := rl.Vector3{X: center.X + halfSize.X, Y: center.Y + halfSize.Y, Z: center.Z + halfSize.Z}

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return 0, rl.Vector3{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return 0, rl.Vector3{}, false
	}

	if tmin > tmax {
		return 0, rl.Vector3{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return 0, rl.Vector3{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return 0, rl.Vector3{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return 0, rl.Vector3{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return t, point, true
}

// raycastSphere solves the quadratic ray/sphere intersection.
func raycastSphere(origin, direction rl.Vector3, sphere *SphereCollider, maxDistance float32) (float32, rl.Vector3, bool) {
	center := sphere.center()
	radius := sphere.Radius

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, rl.Vector3{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return 0, rl.Vector3{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return t, point, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
