// Package game provides the simulation step and the terminal game loop.
package game

// State represents the current run state of the loop.
type State int

const (
	// StatePlaying advances the simulation every tick.
	StatePlaying State = iota
	// StatePaused keeps drawing but freezes simulated time.
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
