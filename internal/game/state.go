// Package game provides the session controller: the command loop, dispatch
// and the two ways a session ends.
package game

// State represents the session state.
type State int

const (
	// StateSetup is the state before the player and map exist.
	StateSetup State = iota
	// StateRunning accepts commands.
	StateRunning
	// StateTerminated accepts nothing further; see Reason.
	StateTerminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Reason records why a session terminated.
type Reason int

const (
	// ReasonNone means the session has not terminated.
	ReasonNone Reason = iota
	// ReasonPlayerQuit is a graceful exit chosen by the player.
	ReasonPlayerQuit
	// ReasonPlayerDefeated means the player's health reached zero.
	ReasonPlayerDefeated
)

// String returns a human-readable reason name.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonPlayerQuit:
		return "player_quit"
	case ReasonPlayerDefeated:
		return "player_defeated"
	default:
		return "unknown"
	}
}
