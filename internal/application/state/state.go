package state

// GameState represents the current state of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	// StateWon and StateLost are terminal: the world stops advancing
	// and only a restart leaves them
	StateWon
	StateLost
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the session has ended
func (s GameState) Terminal() bool {
	return s == StateWon || s == StateLost
}
