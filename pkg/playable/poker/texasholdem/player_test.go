package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable/poker/action"
)

func TestPlayer_betting(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("p1", 100)
	a.True(p.IsActive())
	a.False(p.IsAllIn())
	_, ok := p.LastAction()
	a.False(ok)

	a.Equal(10, p.PlaceBet(10))
	a.Equal(90, p.Chips())
	a.Equal(10, p.Bet())

	// call brings the bet up to the current bet
	a.Equal(15, p.Call(25))
	a.Equal(25, p.Bet())
	last, ok := p.LastAction()
	a.True(ok)
	a.Equal(action.Call, last)

	a.Equal(35, p.Raise(60))
	a.Equal(60, p.Bet())
	a.Equal(40, p.Chips())

	// short stacks are capped
	a.Equal(40, p.Raise(500))
	a.Equal(100, p.Bet())
	a.Equal(100, p.Contribution())
	a.True(p.IsAllIn())
	a.True(p.IsBankrupt())
	a.Equal(0, p.PlaceBet(10))

	p.resetForNewStreet()
	a.Equal(0, p.Bet())
	a.Equal(100, p.Contribution())

	p.ReceiveChips(250)
	a.Equal(250, p.Chips())
	a.False(p.IsAllIn())
}

func TestPlayer_AllIn(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("p1", 75)
	p.PlaceBet(5)
	a.Equal(70, p.AllIn())
	a.Equal(75, p.Bet())
	a.True(p.IsAllIn())

	last, _ := p.LastAction()
	a.Equal(action.AllIn, last)
}

func TestPlayer_Fold(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("p1", 0)
	p.Fold()
	a.False(p.IsActive())

	// bankrupt, but not all-in once out of the hand
	a.True(p.IsBankrupt())
	a.False(p.IsAllIn())
}

func TestPlayer_ResetForNewRound(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("p1", 100)
	p.dealer = true
	p.smallBlind = true
	p.bigBlind = true
	p.ReceiveCards(deck.CardsFromString("14s,13s")...)
	p.PlaceBet(20)
	p.Fold()

	p.ResetForNewRound()
	a.True(p.IsActive())
	a.Equal(0, p.Bet())
	a.Equal(0, p.Contribution())
	a.Equal(80, p.Chips())

	view := p.View()
	a.False(view.Dealer)
	a.False(view.SmallBlind)
	a.False(view.BigBlind)
	a.Equal(0, len(view.Cards))
	a.Equal(action.Action(""), view.LastAction)

	broke := NewPlayer("p2", 0)
	broke.ResetForNewRound()
	a.False(broke.IsActive())
}

func TestPlayer_View(t *testing.T) {
	a := assert.New(t)

	p := NewPlayer("p1", 100)
	p.ReceiveCards(deck.CardsFromString("14s,13s")...)
	p.PlaceBet(30)

	view := p.View()
	a.Equal(p.ID(), view.ID)
	a.Equal("p1", view.Name)
	a.Equal(70, view.Chips)
	a.Equal(30, view.Bet)
	a.Equal(30, view.TotalBet)
	a.Equal("14s,13s", deck.CardsToString(view.Cards))

	// the view can't change the player
	view.Cards[0].TurnFaceUp()
	view.Chips = 0
	a.False(p.hand.Cards()[0].FaceUp)
	a.Equal(70, p.Chips())
}
