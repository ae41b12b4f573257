package input

import "xrpanel/internal/interact"

// Selector implements the source-selection policy: while an immersive
// session is active the controllers take priority, controller 0 before
// controller 1 (sequential, not nearest-of-both); outside a session the
// pointer is tried before touch. Whichever modality has no active ray this
// tick is skipped by the interaction system.
type Selector struct {
	SessionActive func() bool

	Controller0 interact.Source
	Controller1 interact.Source
	Pointer     interact.Source
	Touch       interact.Source
}

// Sources returns this tick's candidates in priority order. Nil slots are
// omitted so a desktop-only setup works without controllers.
func (s *Selector) Sources() []interact.Source {
	var out []interact.Source
	if s.SessionActive != nil && s.SessionActive() {
		if s.Controller0 != nil {
			out = append(out, s.Controller0)
		}
		if s.Controller1 != nil {
			out = append(out, s.Controller1)
		}
		return out
	}
	if s.Pointer != nil {
		out = append(out, s.Pointer)
	}
	if s.Touch != nil {
		out = append(out, s.Touch)
	}
	return out
}
