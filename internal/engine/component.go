package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetNode(n *Node)
	Node() *Node
}

// BaseComponent provides default implementations for the Component
// interface. Embed it in every concrete component.
type BaseComponent struct {
	node *Node
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetNode(n *Node) {
	b.node = n
}

func (b *BaseComponent) Node() *Node {
	return b.node
}
