package texasholdem

import (
	"github.com/google/uuid"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable/poker/action"
	"holdem-engine/pkg/playable/poker/handanalyzer"
)

// Player is a player seated at the table
// The player persists across rounds. Only the per-round fields are reset between them
type Player struct {
	id    string
	name  string
	chips int

	// bet is what the player has put in on the current street
	bet int
	// totalBet is everything the player has put in this round
	totalBet int

	hand *handanalyzer.Hand

	active     bool
	dealer     bool
	smallBlind bool
	bigBlind   bool
	lastAction action.Action
}

// PlayerView is a snapshot of a player
// Changing it has no effect on the game
type PlayerView struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Chips      int           `json:"chips"`
	Bet        int           `json:"bet"`
	TotalBet   int           `json:"totalBet"`
	Cards      []*deck.Card  `json:"cards"`
	Active     bool          `json:"active"`
	AllIn      bool          `json:"allIn"`
	Dealer     bool          `json:"dealer"`
	SmallBlind bool          `json:"smallBlind"`
	BigBlind   bool          `json:"bigBlind"`
	LastAction action.Action `json:"lastAction,omitempty"`
}

// NewPlayer returns a new player with a random ID
func NewPlayer(name string, chips int) *Player {
	return &Player{
		id:     uuid.New().String(),
		name:   name,
		chips:  chips,
		hand:   handanalyzer.NewHand(),
		active: true,
	}
}

// ID returns the player's unique identifier
func (p *Player) ID() string {
	return p.id
}

// Name returns the player's display name
func (p *Player) Name() string {
	return p.name
}

// Chips returns the player's stack
func (p *Player) Chips() int {
	return p.chips
}

// Bet returns what the player has put in on the current street
func (p *Player) Bet() int {
	return p.bet
}

// Contribution returns everything the player has put in this round
func (p *Player) Contribution() int {
	return p.totalBet
}

// IsActive returns false once the player folds or sits out a round
func (p *Player) IsActive() bool {
	return p.active
}

// IsAllIn returns true if the player is still in the hand without any chips left
func (p *Player) IsAllIn() bool {
	return p.chips == 0 && p.active
}

// IsBankrupt returns true if the player has no chips
func (p *Player) IsBankrupt() bool {
	return p.chips == 0
}

// LastAction returns the last action the player took on this street
func (p *Player) LastAction() (action.Action, bool) {
	return p.lastAction, p.lastAction != ""
}

// ReceiveCards adds the cards to the player's hand
func (p *Player) ReceiveCards(cards ...*deck.Card) {
	p.hand.AddCards(cards...)
}

// PlaceBet moves up to amount from the player's stack into their bet
// The value returned is what was actually moved, which is less than amount when the player is short
func (p *Player) PlaceBet(amount int) int {
	if amount > p.chips {
		amount = p.chips
	}

	if amount < 0 {
		amount = 0
	}

	p.bet += amount
	p.totalBet += amount
	p.chips -= amount

	return amount
}

// Call matches currentBet, or puts in the rest of the stack if the player is short
func (p *Player) Call(currentBet int) int {
	p.lastAction = action.Call
	return p.PlaceBet(currentBet - p.bet)
}

// Raise brings the player's bet for the street up to totalBet, capped at the player's stack
func (p *Player) Raise(totalBet int) int {
	p.lastAction = action.Raise
	return p.PlaceBet(totalBet - p.bet)
}

// AllIn puts the player's entire stack in
func (p *Player) AllIn() int {
	p.lastAction = action.AllIn
	return p.PlaceBet(p.chips)
}

// Fold removes the player from the current hand
func (p *Player) Fold() {
	p.active = false
	p.lastAction = action.Fold
}

// Check records a check
func (p *Player) Check() {
	p.lastAction = action.Check
}

// ReceiveChips adds winnings to the player's stack
func (p *Player) ReceiveChips(amount int) {
	p.chips += amount
}

// ResetForNewRound clears everything from the previous round
// A bankrupt player sits the round out
func (p *Player) ResetForNewRound() {
	p.active = !p.IsBankrupt()
	p.bet = 0
	p.totalBet = 0
	p.lastAction = ""
	p.dealer = false
	p.smallBlind = false
	p.bigBlind = false
	p.hand.Clear()
}

// resetForNewStreet clears the street's bet and action
func (p *Player) resetForNewStreet() {
	p.bet = 0
	p.lastAction = ""
}

// View returns a snapshot of the player
func (p *Player) View() PlayerView {
	return PlayerView{
		ID:         p.id,
		Name:       p.name,
		Chips:      p.chips,
		Bet:        p.bet,
		TotalBet:   p.totalBet,
		Cards:      p.hand.Cards(),
		Active:     p.active,
		AllIn:      p.IsAllIn(),
		Dealer:     p.dealer,
		SmallBlind: p.smallBlind,
		BigBlind:   p.bigBlind,
		LastAction: p.lastAction,
	}
}
