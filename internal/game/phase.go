package game

// Phase is the Controller's position in the session state machine.
type Phase int

const (
	PhaseIdle      Phase = iota // Settings panel, no session
	PhaseCountdown              // 3-2-1 before play
	PhaseActive                 // Bubbles spawning, clock running
	PhaseEnded                  // Results shown
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "countdown"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}
