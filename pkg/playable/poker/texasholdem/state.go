package texasholdem

import (
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable"
	"holdem-engine/pkg/playable/poker"
	"holdem-engine/pkg/playable/poker/handanalyzer"
	"holdem-engine/pkg/playable/poker/potmanager"
)

// TableState is a snapshot of the table for a presentation layer
type TableState struct {
	Name          string       `json:"name"`
	Round         int          `json:"round"`
	GameState     GameState    `json:"gameState"`
	Players       []PlayerView `json:"players"`
	CurrentPlayer string       `json:"currentPlayer,omitempty"`
	Dealer        string       `json:"dealer,omitempty"`
	PokerState    *poker.State `json:"pokerState"`
	Winners       []Winner     `json:"winners"`
}

// Players returns every player seated at the table
func (g *Game) Players() []PlayerView {
	return views(g.players)
}

// ActivePlayers returns the players who are still in the current hand
func (g *Game) ActivePlayers() []PlayerView {
	return views(g.activePlayers)
}

// CommunityCards returns the cards dealt to the board
func (g *Game) CommunityCards() []*deck.Card {
	return deck.CloneCards(g.communityCards)
}

// Pots returns the main pot followed by any side pots
// The eligible players are snapshots taken when Pots is called
func (g *Game) Pots() potmanager.Pots {
	pots := g.pots.Clone()
	for _, pot := range pots {
		for i, pt := range pot.EligiblePlayers {
			if p, ok := pt.(*Player); ok {
				pot.EligiblePlayers[i] = viewParticipant{p.View()}
			}
		}
	}

	return pots
}

// CurrentPot returns the index of the pot that bets are going into
func (g *Game) CurrentPot() int {
	return g.currentPot
}

// CurrentBet returns the highest bet on the current street
func (g *Game) CurrentBet() int {
	return g.currentBet
}

// GameState returns the current state of the game
func (g *Game) GameState() GameState {
	return g.gameState
}

// CurrentPlayer returns the player who is on the clock
func (g *Game) CurrentPlayer() (PlayerView, bool) {
	p := g.currentPlayer()
	if p == nil {
		return PlayerView{}, false
	}

	return p.View(), true
}

// Dealer returns the player with the button
func (g *Game) Dealer() (PlayerView, bool) {
	if len(g.players) == 0 {
		return PlayerView{}, false
	}

	return g.players[g.dealerIndex].View(), true
}

// Winners returns the pots awarded at the end of the round
func (g *Game) Winners() []Winner {
	winners := make([]Winner, len(g.winners))
	for i, w := range g.winners {
		winners[i] = w.clone()
	}

	return winners
}

// SmallBlind returns the small blind amount
func (g *Game) SmallBlind() int {
	return g.options.SmallBlind
}

// BigBlind returns the big blind amount
func (g *Game) BigBlind() int {
	return g.options.BigBlind
}

// Log returns every table message from the start of the game
func (g *Game) Log() []*playable.LogMessage {
	log := make([]*playable.LogMessage, len(g.log))
	for i, msg := range g.log {
		log[i] = msg.Clone()
	}

	return log
}

// GetHandDescription describes the best hand the player can make with the community cards
func (g *Game) GetHandDescription(playerID string) (string, error) {
	p := g.findPlayer(playerID)
	if p == nil {
		return "", ErrPlayerNotFound
	}

	pool := append(p.hand.Cards(), deck.CloneCards(g.communityCards)...)
	return handanalyzer.Evaluate(pool).Rank.Description(), nil
}

// State returns a snapshot of the table
func (g *Game) State() *TableState {
	var currentPlayer, dealer string
	if p, ok := g.CurrentPlayer(); ok && g.gameState.IsBettingRound() {
		currentPlayer = p.ID
	}

	if p, ok := g.Dealer(); ok && g.gameState != NotStarted {
		dealer = p.ID
	}

	return &TableState{
		Name:          g.Name(),
		Round:         g.round,
		GameState:     g.gameState,
		Players:       g.Players(),
		CurrentPlayer: currentPlayer,
		Dealer:        dealer,
		PokerState: &poker.State{
			SmallBlind: g.options.SmallBlind,
			BigBlind:   g.options.BigBlind,
			CurrentBet: g.currentBet,
			CurrentPot: g.currentPot,
			Pots:       g.Pots(),
			Community:  g.CommunityCards(),
		},
		Winners: g.Winners(),
	}
}

// GetEndOfGameDetails returns how each player's stack changed in the last round
// If the round is still in progress, nil will be returned and the second param will be false
func (g *Game) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if g.gameState != GameOver {
		return nil, false
	}

	adjustments := make(map[string]int, len(g.startingChips))
	for _, p := range g.players {
		if start, ok := g.startingChips[p.ID()]; ok {
			adjustments[p.ID()] = p.Chips() - start
		}
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                g.Winners(),
	}, true
}

func (g *Game) findPlayer(id string) *Player {
	for _, p := range g.players {
		if p.ID() == id {
			return p
		}
	}

	return nil
}

// viewParticipant is a potmanager.Participant that cannot change the game
type viewParticipant struct {
	view PlayerView
}

func (v viewParticipant) ID() string {
	return v.view.ID
}

func (v viewParticipant) Contribution() int {
	return v.view.TotalBet
}

func (v viewParticipant) IsAllIn() bool {
	return v.view.AllIn
}

func (v viewParticipant) IsActive() bool {
	return v.view.Active
}

func views(players []*Player) []PlayerView {
	v := make([]PlayerView, len(players))
	for i, p := range players {
		v[i] = p.View()
	}

	return v
}
