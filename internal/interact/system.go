package interact

import (
	"sync"
	"time"
)

// DefaultSettleDelay is how long a selected pulse lasts before reverting
// to idle.
const DefaultSettleDelay = 120 * time.Millisecond

type override struct {
	target *Interaction
	active bool
}

// System runs the per-tick interaction pipeline: pick the active ray,
// arbitrate the nearest hit, transition every registered target, and hand
// the hit point to whoever placed the reticle hook. All of it happens
// synchronously inside Update; the only asynchronous path is PostOverride,
// which is merged at the next tick boundary.
type System struct {
	Registry    *Registry
	Arbiter     *Arbiter
	SettleDelay time.Duration

	// Sources returns this tick's ray sources in priority order. Sources
	// are tried sequentially: the first one whose ray hits a target wins;
	// a source with no active ray is skipped.
	Sources func() []Source

	// OnHit, when set, is called once per tick that produced a hit, after
	// state dispatch. Used for reticle placement.
	OnHit func(Hit, Ray)

	mu        sync.Mutex
	overrides []override

	lastHit Hit
	lastRay Ray
	hasHit  bool
}

func NewSystem(registry *Registry) *System {
	return &System{
		Registry:    registry,
		Arbiter:     NewArbiter(),
		SettleDelay: DefaultSettleDelay,
	}
}

// PostOverride queues an active-override change from another goroutine
// (status pollers, timers). It takes effect at the next tick boundary and
// never preempts a transition in progress within a tick.
func (s *System) PostOverride(target *Interaction, active bool) {
	if target == nil {
		return
	}
	s.mu.Lock()
	s.overrides = append(s.overrides, override{target: target, active: active})
	s.mu.Unlock()
}

// Update advances one tick. Order is fixed: apply deferred registry
// removals and queued overrides, build the active ray, hit test,
// transition every target, resolve due settle reverts, publish the hit.
func (s *System) Update(now time.Time) {
	s.Registry.applyRemovals()
	s.applyOverrides()

	hit, ray, hasHit, engaged := s.arbitrate()

	for _, target := range s.Registry.Items() {
		if hasHit && target == hit.Target {
			s.transitionHit(target, engaged, now)
		} else {
			target.forceIdle()
		}
	}

	for _, target := range s.Registry.Items() {
		target.resolveSettle(now)
	}

	s.lastHit, s.lastRay, s.hasHit = hit, ray, hasHit
	if hasHit && s.OnHit != nil {
		s.OnHit(hit, ray)
	}
}

// LastHit returns the previous tick's arbitration result.
func (s *System) LastHit() (Hit, Ray, bool) {
	return s.lastHit, s.lastRay, s.hasHit
}

// ResetTransient reverts every hovered/selected target to idle and cancels
// their pending settle reverts. Active overrides are untouched. Called on
// session end, so a settle deadline scheduled before the reset can never
// stomp a later state.
func (s *System) ResetTransient() {
	for _, target := range s.Registry.Items() {
		target.forceIdle()
	}
}

func (s *System) applyOverrides() {
	s.mu.Lock()
	queued := s.overrides
	s.overrides = nil
	s.mu.Unlock()

	for _, o := range queued {
		if !s.Registry.Contains(o.target) {
			continue
		}
		if o.active {
			o.target.ForceActive()
		} else {
			o.target.ClearActive()
		}
	}
}

// arbitrate walks this tick's sources in priority order and returns the
// first hit. A source with an active ray but no hit does not stop the
// walk (controller 1 is tested only after controller 0 misses). When every
// source misses, the first active ray is still reported so callers can
// draw it.
func (s *System) arbitrate() (Hit, Ray, bool, bool) {
	if s.Sources == nil {
		return Hit{}, Ray{}, false, false
	}

	var (
		firstRay     Ray
		haveRay      bool
		firstEngaged bool
	)

	for _, src := range s.Sources() {
		ray, ok := src.Ray()
		if !ok {
			continue
		}
		if !haveRay {
			firstRay, haveRay, firstEngaged = ray, true, src.Engaged()
		}
		if hit, found := s.Arbiter.Cast(ray, s.Registry.Items()); found {
			return hit, ray, true, src.Engaged()
		}
	}

	return Hit{}, firstRay, false, firstEngaged
}

func (s *System) settleDelay() time.Duration {
	if s.SettleDelay > 0 {
		return s.SettleDelay
	}
	return DefaultSettleDelay
}

func (s *System) transitionHit(target *Interaction, engaged bool, now time.Time) {
	switch target.State() {
	case StateIdle:
		// Engagement must be observed from hover first; a press that began
		// before aiming at the target does not select it.
		if !engaged {
			target.setState(StateHovered)
		}
	case StateHovered:
		if engaged {
			target.enterSelected(now.Add(s.settleDelay()))
		}
	case StateSelected, StateActive:
		// selected exits via the settle revert; active only via ClearActive.
	}
}
