package engine

type Scene struct {
	Name  string
	Nodes []*Node

	byUID map[uint64]*Node
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		Nodes: make([]*Node, 0),
		byUID: make(map[uint64]*Node),
	}
}

func (s *Scene) AddNode(n *Node) {
	n.Scene = s
	s.Nodes = append(s.Nodes, n)
	s.index(n)
}

func (s *Scene) RemoveNode(n *Node) {
	for i, cur := range s.Nodes {
		if cur == n {
			s.Nodes = append(s.Nodes[:i], s.Nodes[i+1:]...)
			s.unindex(n)
			n.Scene = nil
			return
		}
	}
}

// index registers a node and its whole subtree for UID lookup.
func (s *Scene) index(n *Node) {
	s.byUID[n.UID] = n
	for _, child := range n.Children {
		s.index(child)
	}
}

func (s *Scene) unindex(n *Node) {
	delete(s.byUID, n.UID)
	for _, child := range n.Children {
		s.unindex(child)
	}
}

func (s *Scene) FindByUID(uid uint64) *Node {
	return s.byUID[uid]
}

func (s *Scene) FindByName(name string) *Node {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*Node {
	var result []*Node
	for _, n := range s.Nodes {
		if n.HasTag(tag) {
			result = append(result, n)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, n := range s.Nodes {
		n.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, n := range s.Nodes {
		n.Update(deltaTime)
	}
}
