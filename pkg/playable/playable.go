package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"holdem-engine/pkg/deck"
)

// LogMessage is the format a game should send log messages in
// If PlayerIDs is empty, assume it's a general statement, otherwise the message will be shown like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string       `json:"uuid"`
	PlayerIDs []string     `json:"playerIds"`
	Cards     []*deck.Card `json:"cards"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

// GameOverDetails provides details on how a hand ended
type GameOverDetails struct {
	// BalanceAdjustments is the net change of each player's chips, keyed by player ID
	BalanceAdjustments map[string]int `json:"balanceAdjustments"`
	Log                interface{}    `json:"log"`
}

// Clone returns a copy of the message that shares nothing with the original
func (l *LogMessage) Clone() *LogMessage {
	cp := *l
	if l.PlayerIDs != nil {
		cp.PlayerIDs = append([]string(nil), l.PlayerIDs...)
	}

	if l.Cards != nil {
		cp.Cards = deck.CloneCards(l.Cards)
	}

	return &cp
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID string, format string, a ...interface{}) *LogMessage {
	var playerIDs []string
	if playerID != "" {
		playerIDs = []string{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// CardsLogMessage returns a general LogMessage that shows cards
func CardsLogMessage(cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage("", format, a...)
	lm.Cards = deck.CloneCards(cards)
	return lm
}
