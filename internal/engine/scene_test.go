package engine

import "testing"

func TestSceneAddNode(t *testing.T) {
	scene := NewScene("Test")
	n := NewNode("Panel")

	scene.AddNode(n)

	if len(scene.Nodes) != 1 {
		t.Errorf("Expected 1 node, got %d", len(scene.Nodes))
	}

	if n.Scene != scene {
		t.Error("Node.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	n := NewNode("Panel")

	scene.AddNode(n)

	if scene.FindByUID(n.UID) != n {
		t.Error("FindByUID failed")
	}

	if scene.FindByUID(99999) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneUIDLookupIncludesSubtree(t *testing.T) {
	scene := NewScene("Test")
	grip := NewNode("Grip")
	reticle := NewNode("Reticle")
	grip.AddChild(reticle)

	scene.AddNode(grip)

	if scene.FindByUID(reticle.UID) != reticle {
		t.Error("Children added before the root should be indexed too")
	}
}

func TestSceneRemoveNode(t *testing.T) {
	scene := NewScene("Test")
	a := NewNode("A")
	b := NewNode("B")

	scene.AddNode(a)
	scene.AddNode(b)
	scene.RemoveNode(a)

	if len(scene.Nodes) != 1 {
		t.Errorf("Expected 1 node after removal, got %d", len(scene.Nodes))
	}

	if scene.Nodes[0] != b {
		t.Error("Wrong node removed")
	}

	if scene.FindByUID(a.UID) != nil {
		t.Error("Removed node still in UID map")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	n := NewNode("StatusPanel")

	scene.AddNode(n)

	if scene.FindByName("StatusPanel") != n {
		t.Error("FindByName failed")
	}

	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	a := NewNode("ButtonA")
	b := NewNode("ButtonB")
	c := NewNode("Backdrop")

	a.Tags = []string{"widget"}
	b.Tags = []string{"widget"}
	c.Tags = []string{"decor"}

	scene.AddNode(a)
	scene.AddNode(b)
	scene.AddNode(c)

	if got := scene.FindByTag("widget"); len(got) != 2 {
		t.Errorf("Expected 2 widgets, got %d", len(got))
	}

	if got := scene.FindByTag("nonexistent"); len(got) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneUpdateReachesComponents(t *testing.T) {
	scene := NewScene("Test")
	n := NewNode("Panel")
	c := &countingComponent{}
	n.AddComponent(c)
	scene.AddNode(n)

	scene.Update(0.016)
	scene.Update(0.016)

	if c.updates != 2 {
		t.Errorf("Expected 2 updates, got %d", c.updates)
	}
}
