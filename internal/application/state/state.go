package state

// GameState represents the current state of the game
type GameState int

const (
	// StateLoading waits for settings; no tick may run
	StateLoading GameState = iota
	StatePlaying
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Ticking reports whether the physics pipeline runs in this state
func (s GameState) Ticking() bool {
	return s == StatePlaying
}
