// ABOUTME: Playback state machine
// ABOUTME: Defines states, the transition table, and the event hook type
package player

// State is the observable playback state.
type State int32

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
	StateStopped
	StateError
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// EventHook receives state transitions. It is invoked synchronously on the
// transitioning goroutine after the state lock is released, and must not
// call back into the same Player.
type EventHook func(old, new State)

// canTransition reports whether a transition is allowed.
//
//	Idle    -> Playing, Stopped
//	Playing -> Paused, Stopped
//	Paused  -> Playing, Stopped
//	Stopped -> Playing
//	any     -> Error (absorbing)
func canTransition(from, to State) bool {
	if from == to {
		return false
	}
	if from == StateError {
		return false
	}
	if to == StateError {
		return true
	}

	switch from {
	case StateIdle:
		return to == StatePlaying || to == StateStopped
	case StatePlaying:
		return to == StatePaused || to == StateStopped
	case StatePaused:
		return to == StatePlaying || to == StateStopped
	case StateStopped:
		return to == StatePlaying
	default:
		return false
	}
}
