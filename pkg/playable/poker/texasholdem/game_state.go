package texasholdem

import "encoding/json"

// GameState represents the state of the game
type GameState int

// constants for GameState
const (
	NotStarted GameState = iota
	Preflop
	Flop
	Turn
	River
	Showdown
	GameOver
)

// IsBettingRound returns true if players can act in this state
func (g GameState) IsBettingRound() bool {
	return g >= Preflop && g <= River
}

func (g GameState) String() string {
	switch g {
	case NotStarted:
		return "not-started"
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	case GameOver:
		return "game-over"
	}

	return ""
}

// MarshalJSON encodes JSON
func (g GameState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(g),
		Name: g.String(),
	})
}
