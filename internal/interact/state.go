package interact

// State is the interaction state of a registered target. The transition
// handler receives the state name, so the string values are part of the
// contract with widgets.
type State int

const (
	StateIdle State = iota
	StateHovered
	StateSelected
	// StateActive is an externally forced override (e.g. a backend poll
	// reporting a live condition). It is immune to the automatic idle
	// reversion and only ends when ClearActive is called.
	StateActive
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovered:
		return "hovered"
	case StateSelected:
		return "selected"
	case StateActive:
		return "active"
	}
	return "unknown"
}
