package poker

import (
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable/poker/potmanager"
)

// State provides the current state data for common poker values
type State struct {
	SmallBlind int             `json:"smallBlind"`
	BigBlind   int             `json:"bigBlind"`
	CurrentBet int             `json:"currentBet"`
	CurrentPot int             `json:"currentPot"`
	Pots       potmanager.Pots `json:"pots"`
	Community  []*deck.Card    `json:"community"`
}
