package core

// PlayerID identifies one of the two fighters in a duel.
type PlayerID int

const (
	// NoPlayer means no winner yet / empty slot.
	NoPlayer PlayerID = iota
	// Player1 is the left-side fighter.
	Player1
	// Player2 is the right-side fighter.
	Player2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Nobody"
	}
}
