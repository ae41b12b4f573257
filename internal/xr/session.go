package xr

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"xrpanel/internal/engine"
	"xrpanel/internal/interact"
)

// ErrControllersRequired is returned when a session starts with fewer than
// two attached controllers. The session is already ended when the error is
// returned; there is no retry path.
var ErrControllersRequired = errors.New("immersive session requires two attached controllers")

// Session binds controller visual presence and the minimum-controller
// policy to the immersive session boundary. Visibility flips to true
// exactly once on a successful Start and to false exactly once on End.
type Session struct {
	ID uuid.UUID

	OnStart engine.Event
	OnEnd   engine.Event

	system      *interact.System
	controllers [2]*Controller
	active      bool
}

func NewSession(system *interact.System, c0, c1 *Controller) *Session {
	s := &Session{
		system:      system,
		controllers: [2]*Controller{c0, c1},
	}
	if system != nil {
		system.OnHit = s.placeReticle
	}
	return s
}

func (s *Session) Active() bool { return s.active }

func (s *Session) Controller(i int) *Controller {
	if i < 0 || i >= len(s.controllers) {
		return nil
	}
	return s.controllers[i]
}

// ControllerCount reports how many controllers are currently attached.
func (s *Session) ControllerCount() int {
	count := 0
	for _, c := range s.controllers {
		if c != nil && c.IsAttached() {
			count++
		}
	}
	return count
}

// Start begins an immersive session. With fewer than two attached
// controllers the session is terminated on the spot, before any controller
// visual becomes visible, and an error is returned. Fail-fast: the caller
// owns any user-facing messaging.
func (s *Session) Start() error {
	if s.active {
		return nil
	}
	if n := s.ControllerCount(); n < 2 {
		s.End()
		return fmt.Errorf("start session: %w (have %d)", ErrControllersRequired, n)
	}

	s.ID = uuid.New()
	s.active = true
	for _, c := range s.controllers {
		c.SetVisible(true)
	}
	s.OnStart.Invoke()
	return nil
}

// End terminates the session synchronously: controller visuals go dark and
// any hovered/selected state reached through controller rays reverts
// immediately. Settle deadlines scheduled before the end are invalidated
// by the reversion's version bump, so a late revert is a no-op.
func (s *Session) End() {
	wasActive := s.active
	s.active = false
	for _, c := range s.controllers {
		if c != nil {
			c.SetVisible(false)
		}
	}
	if s.system != nil {
		s.system.ResetTransient()
	}
	if wasActive {
		s.OnEnd.Invoke()
	}
}

// placeReticle pins the hitting controller's reticle to the hit point.
// Pointer and touch hits have no reticle.
func (s *Session) placeReticle(hit interact.Hit, ray interact.Ray) {
	if !s.active {
		return
	}
	for _, c := range s.controllers {
		if c != nil && c.ID() == ray.Source && c.Visible() {
			c.PlaceReticle(hit.Point)
			return
		}
	}
}
