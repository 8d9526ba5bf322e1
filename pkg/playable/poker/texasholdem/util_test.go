package texasholdem

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable/poker/action"
	"holdem-engine/pkg/playable/poker/potmanager"
)

// noShuffle leaves the deck in the order it was built
type noShuffle struct{}

func (noShuffle) Intn(n int) int {
	return n - 1
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Generator = noShuffle{}
	return opts
}

// setupNewGame seats one player per stack, named p1, p2, ...
func setupNewGame(t *testing.T, opts Options, stacks ...int) *Game {
	t.Helper()

	game, err := NewGame(logrus.StandardLogger(), opts)
	if err != nil {
		panic(err)
	}

	for i, chips := range stacks {
		_, err := game.AddPlayer(fmt.Sprintf("p%d", i+1), chips)
		assert.NoError(t, err)
	}

	return game
}

// setHoleCards replaces the cards the player was dealt
func setHoleCards(game *Game, seat int, cards string) {
	p := game.players[seat]
	p.hand.Clear()
	p.hand.AddCards(deck.CardsFromString(cards)...)
}

// stackDeck makes the deck deal the cards in the order given
func stackDeck(game *Game, cards string) {
	c := deck.CardsFromString(cards)
	stacked := make([]*deck.Card, len(c))
	for i, card := range c {
		stacked[len(c)-1-i] = card
	}

	game.deck.Cards = stacked
}

func assertCurrentPlayer(t *testing.T, game *Game, name string, msgAndArgs ...interface{}) {
	t.Helper()

	p, ok := game.CurrentPlayer()
	assert.True(t, ok, msgAndArgs...)
	assert.Equal(t, name, p.Name, msgAndArgs...)
}

func assertAction(t *testing.T, game *Game, name string, a action.Action, amount int, msgAndArgs ...interface{}) {
	t.Helper()

	assertCurrentPlayer(t, game, name, msgAndArgs...)
	assert.True(t, game.PlayerAction(a, amount), msgAndArgs...)
}

// checkAround has every player check until the street changes
func checkAround(t *testing.T, game *Game) {
	t.Helper()

	state := game.GameState()
	for game.GameState() == state {
		if !assert.True(t, game.PlayerAction(action.Check, 0)) {
			return
		}
	}
}

func eligibleNames(game *Game, pot *potmanager.Pot) []string {
	names := make([]string, len(pot.EligiblePlayers))
	for i, pt := range pot.EligiblePlayers {
		names[i] = game.findPlayer(pt.ID()).Name()
	}

	return names
}

func chipsByName(game *Game) map[string]int {
	chips := make(map[string]int)
	for _, p := range game.Players() {
		chips[p.Name] = p.Chips
	}

	return chips
}

func totalChips(game *Game) int {
	total := 0
	for _, p := range game.players {
		total += p.Chips()
	}

	return total
}
