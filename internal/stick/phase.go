package stick

import "github.com/vovakirdan/stick-bridge/internal/core"

// Phase drives which continuous variables move on each tick.
type Phase uint8

const (
	PhaseWaiting       Phase = iota // Idle until the player presses
	PhaseStretching                 // Stick grows while held
	PhaseTurning                    // Stick falls toward 90°
	PhaseWalking                    // Hero walks along the stick
	PhaseTransitioning              // Camera pans to the reached platform
	PhaseFalling                    // Hero drops off the stick
	PhaseEnded                      // Terminal until Reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseStretching:
		return "stretching"
	case PhaseTurning:
		return "turning"
	case PhaseWalking:
		return "walking"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseFalling:
		return "falling"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Animating reports whether the phase advances on ticks.
func (p Phase) Animating() bool {
	return p != PhaseWaiting && p != PhaseEnded
}

// Schedule tells the tick driver whether to request another tick.
type Schedule uint8

const (
	ScheduleContinue Schedule = iota // Request the next tick
	ScheduleSuspend                  // Idle until Press; no redraw needed
	ScheduleStop                     // Game over; only Reset restarts
)

// String returns a human-readable name for the schedule.
func (s Schedule) String() string {
	switch s {
	case ScheduleContinue:
		return "continue"
	case ScheduleSuspend:
		return "suspend"
	case ScheduleStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Events is a set of signals raised during one tick.
type Events uint8

const (
	EventLanded   Events = 1 << iota // Stick reached a platform; score increased
	EventPerfect                     // The landing hit the perfect window
	EventMissed                      // Stick tip fell into a gap
	EventGameOver                    // Hero fell past the limit
)

// Has reports whether all events in e2 are set.
func (e Events) Has(e2 Events) bool {
	return e&e2 == e2
}

// TickResult is returned by Advance and Step.
type TickResult struct {
	Schedule Schedule
	Events   Events
	State    core.GameState
}
