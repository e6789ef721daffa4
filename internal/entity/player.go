package entity

const (
	PlayerX = "X"
	PlayerO = "O"
)

// Player holds a player's identity: display name, mark on the board, and the
// signed unit contribution the board accumulators count for that mark.
type Player struct {
	Name  string
	Mark  string
	Value int
}

// NewPlayer - creates a player for the given mark. X contributes +1 to a line
// accumulator, O contributes -1; a line summing to ±n is fully owned.
func NewPlayer(name, mark string) *Player {
	value := -1
	if mark == PlayerX {
		value = 1
	}

	return &Player{
		Name:  name,
		Mark:  mark,
		Value: value,
	}
}
