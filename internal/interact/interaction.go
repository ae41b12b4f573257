package interact

import (
	"time"

	"xrpanel/internal/engine"
)

// Handler is the widget-owned transition callback. It receives the new
// state every time the state actually changes; it is never called twice in
// a row with the same state.
type Handler func(State)

// Interaction is the capability component an interactive widget attaches
// to its node. Its presence marks the node (and the node's whole subtree of
// collider geometry) as a hit-testing target. The widget owns the visual
// reaction; the component owns the state and its timing guarantees.
type Interaction struct {
	engine.BaseComponent

	handler Handler

	state   State
	version uint64

	// Pending automatic reversion of a selected pulse. The version captured
	// at scheduling makes a stale revert a no-op: any state change since
	// then bumps version and the revert no longer applies.
	settleAt      time.Time
	settleVersion uint64
	settlePending bool
}

func NewInteraction(handler Handler) *Interaction {
	return &Interaction{handler: handler}
}

func (it *Interaction) State() State { return it.state }

// Version returns the state version, bumped on every state change.
func (it *Interaction) Version() uint64 { return it.version }

// ForceActive puts the target into the active override state. The override
// survives hit-test arbitration until ClearActive. Must be called on the
// tick goroutine; asynchronous producers go through System.PostOverride.
func (it *Interaction) ForceActive() {
	it.setState(StateActive)
}

// ClearActive ends the active override and returns the target to idle.
func (it *Interaction) ClearActive() {
	if it.state == StateActive {
		it.setState(StateIdle)
	}
}

// setState transitions to s, bumps the version and notifies the handler.
// A transition to the current state is a no-op.
func (it *Interaction) setState(s State) {
	if it.state == s {
		return
	}
	it.state = s
	it.version++
	it.settlePending = false
	if it.handler != nil {
		it.handler(s)
	}
}

// enterSelected transitions to selected and schedules the automatic
// reversion to idle at deadline.
func (it *Interaction) enterSelected(deadline time.Time) {
	it.setState(StateSelected)
	it.settleAt = deadline
	it.settleVersion = it.version
	it.settlePending = true
}

// resolveSettle applies a due selected->idle reversion. Stale deadlines
// (any state change since scheduling) are dropped.
func (it *Interaction) resolveSettle(now time.Time) {
	if !it.settlePending || now.Before(it.settleAt) {
		return
	}
	it.settlePending = false
	if it.state == StateSelected && it.version == it.settleVersion {
		it.setState(StateIdle)
	}
}

// forceIdle reverts any transient state. The active override is preserved.
func (it *Interaction) forceIdle() {
	if it.state == StateActive {
		return
	}
	it.setState(StateIdle)
}
