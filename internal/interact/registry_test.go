package interact

import "testing"

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	it := NewInteraction(nil)

	r.Register(it)
	r.Register(it) // duplicate ignored
	r.Register(nil)

	if r.Len() != 1 {
		t.Errorf("Expected 1 target, got %d", r.Len())
	}
	if !r.Contains(it) {
		t.Error("Registered target should be contained")
	}
}

func TestRegistryUnregisterIsDeferred(t *testing.T) {
	r := NewRegistry()
	it := NewInteraction(nil)
	r.Register(it)

	r.Unregister(it)

	if !r.Contains(it) {
		t.Error("Removal must not apply before the tick boundary")
	}

	r.applyRemovals()

	if r.Contains(it) {
		t.Error("Removal should apply at the tick boundary")
	}
	if r.Len() != 0 {
		t.Errorf("Expected empty registry, got %d", r.Len())
	}
}

func TestRegistryUnregisterUnknownIsNoop(t *testing.T) {
	r := NewRegistry()
	kept := NewInteraction(nil)
	r.Register(kept)

	r.Unregister(NewInteraction(nil))
	r.applyRemovals()

	if r.Len() != 1 {
		t.Error("Removing an unknown target must not disturb the registry")
	}
}
