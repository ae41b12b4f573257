package interact

import "time"

// Guard is a leading-edge cooldown gate. The first invocation of an action
// runs synchronously and opens a cooldown window; invocations during the
// window are dropped outright; nothing is queued and nothing replays when
// the window closes. It protects state-change callbacks from re-entrant
// firing: one continuous select gesture triggers its bound action once.
type Guard struct {
	now     func() time.Time
	readyAt map[string]time.Time
}

func NewGuard() *Guard {
	return &Guard{
		now:     time.Now,
		readyAt: make(map[string]time.Time),
	}
}

// NewGuardAt builds a guard with an injected clock.
func NewGuardAt(now func() time.Time) *Guard {
	g := NewGuard()
	if now != nil {
		g.now = now
	}
	return g
}

// Do runs fn if the action identified by id is ready, then blocks the id
// for cooldown. Returns whether fn ran.
func (g *Guard) Do(id string, cooldown time.Duration, fn func()) bool {
	now := g.now()
	if until, held := g.readyAt[id]; held && now.Before(until) {
		return false
	}
	g.readyAt[id] = now.Add(cooldown)
	if fn != nil {
		fn()
	}
	return true
}

// Ready reports whether the action would run right now.
func (g *Guard) Ready(id string) bool {
	until, held := g.readyAt[id]
	return !held || !g.now().Before(until)
}

// Reset clears the cooldown for one action id.
func (g *Guard) Reset(id string) {
	delete(g.readyAt, id)
}
