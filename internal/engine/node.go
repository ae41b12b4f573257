package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID uint64

// Transform holds a node's local position, rotation and scale.
// Rotation is Euler angles in degrees, applied X then Y then Z.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// Node is an element of the scene graph. Interactive widgets, controller
// grips and their ray/reticle visuals are all nodes; components attached
// to a node give it behavior.
type Node struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Visible    bool
	Scene      *Scene
	Parent     *Node
	Children   []*Node
	components []Component
	started    bool
}

func NewNode(name string) *Node {
	return &Node{
		UID:     atomic.AddUint64(&nextUID, 1),
		Name:    name,
		Visible: true,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*Node, 0),
	}
}

func (n *Node) AddComponent(c Component) {
	c.SetNode(n)
	n.components = append(n.components, c)
}

func (n *Node) Components() []Component {
	return n.components
}

// GetComponent returns the first component of the requested type, or the
// zero value if the node has none.
func GetComponent[T Component](n *Node) T {
	var zero T
	for _, c := range n.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (n *Node) Start() {
	if n.started {
		return
	}
	for _, c := range n.components {
		c.Start()
	}
	for _, child := range n.Children {
		child.Start()
	}
	n.started = true
}

func (n *Node) Update(deltaTime float32) {
	for _, c := range n.components {
		c.Update(deltaTime)
	}
	for _, child := range n.Children {
		child.Update(deltaTime)
	}
}

func (n *Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// VisibleInHierarchy reports whether this node and all its ancestors are
// visible. Controller ray/reticle visuals use this so hiding the grip node
// hides everything attached to it.
func (n *Node) VisibleInHierarchy() bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if !cur.Visible {
			return false
		}
	}
	return true
}

func (n *Node) WorldPosition() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Position
	}
	parentPos := n.Parent.WorldPosition()
	parentScale := n.Parent.WorldScale()

	scaled := rl.Vector3{
		X: n.Transform.Position.X * parentScale.X,
		Y: n.Transform.Position.Y * parentScale.Y,
		Z: n.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, rotationMatrix(n.Parent.WorldRotation()))
	return rl.Vector3Add(parentPos, rotated)
}

func (n *Node) WorldRotation() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Rotation
	}
	return rl.Vector3Add(n.Parent.WorldRotation(), n.Transform.Rotation)
}

func (n *Node) WorldScale() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Scale
	}
	ps := n.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * n.Transform.Scale.X,
		Y: ps.Y * n.Transform.Scale.Y,
		Z: ps.Z * n.Transform.Scale.Z,
	}
}

// WorldToLocal converts a world-space point into this node's local
// coordinates (rotation and translation only; local scale is left to the
// caller). Used to pin child visuals to a world-space point.
func (n *Node) WorldToLocal(p rl.Vector3) rl.Vector3 {
	rel := rl.Vector3Subtract(p, n.WorldPosition())
	inv := rl.MatrixInvert(rotationMatrix(n.WorldRotation()))
	return rl.Vector3Transform(rel, inv)
}

// Forward returns the node's local -Z axis rotated into world space.
// Controller rays point along this axis.
func (n *Node) Forward() rl.Vector3 {
	return rl.Vector3Normalize(
		rl.Vector3Transform(rl.Vector3{Z: -1}, rotationMatrix(n.WorldRotation())))
}

func rotationMatrix(euler rl.Vector3) rl.Matrix {
	rx := float64(euler.X) * math.Pi / 180
	ry := float64(euler.Y) * math.Pi / 180
	rz := float64(euler.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}
