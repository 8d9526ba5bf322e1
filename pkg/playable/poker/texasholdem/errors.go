package texasholdem

import (
	"errors"
	"fmt"
)

// ErrTableFull is returned when a player is added to a table with every seat taken
var ErrTableFull = errors.New("the table is full")

// ErrPlayerNotFound is returned when a player is not seated at the table
var ErrPlayerNotFound = errors.New("player not found")

// ErrHandInProgress is returned when a player who is still in the hand is removed
var ErrHandInProgress = errors.New("the player is in a hand that is in progress")

// ErrInvalidChips is returned when a player is added with a negative stack
var ErrInvalidChips = errors.New("chips must be >= 0")

// PlayerCountError is an error on the number of players at the table
type PlayerCountError struct {
	Min int
	Max int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected a table of %d–%d players", p.Min, p.Max)
}
