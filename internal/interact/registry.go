package interact

// Registry is the shared collection of interaction targets. Widgets
// register at construction; removal is deferred to the next tick boundary
// so an in-progress iteration never observes a mutated collection.
type Registry struct {
	items   []*Interaction
	pending []*Interaction
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a target. Duplicate registrations are ignored.
func (r *Registry) Register(it *Interaction) {
	if it == nil {
		return
	}
	for _, cur := range r.items {
		if cur == it {
			return
		}
	}
	r.items = append(r.items, it)
}

// Unregister queues a target for removal. The target keeps receiving
// transitions until the next tick boundary applies the removal.
func (r *Registry) Unregister(it *Interaction) {
	if it == nil {
		return
	}
	r.pending = append(r.pending, it)
}

// Items returns the live target slice. Callers must not mutate it.
func (r *Registry) Items() []*Interaction {
	return r.items
}

func (r *Registry) Len() int {
	return len(r.items)
}

func (r *Registry) Contains(it *Interaction) bool {
	for _, cur := range r.items {
		if cur == it {
			return true
		}
	}
	return false
}

// applyRemovals executes queued unregisters. Called by the interaction
// system at the start of each tick.
func (r *Registry) applyRemovals() {
	if len(r.pending) == 0 {
		return
	}
	for _, gone := range r.pending {
		for i, cur := range r.items {
			if cur == gone {
				r.items = append(r.items[:i], r.items[i+1:]...)
				break
			}
		}
	}
	r.pending = r.pending[:0]
}
