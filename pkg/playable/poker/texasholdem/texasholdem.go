package texasholdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable"
	"holdem-engine/pkg/playable/poker/potmanager"
)

// Game is a table of No-Limit Texas Hold'em
// A Game is not safe for concurrent use. Callers must serialize every call
type Game struct {
	options Options
	logger  logrus.FieldLogger

	players []*Player
	// activePlayers are the players who are still in the current hand
	activePlayers []*Player
	// dealtIn are the players who were dealt into the current hand, including any who folded since
	dealtIn []*Player

	deck           *deck.Deck
	communityCards []*deck.Card

	pots       potmanager.Pots
	currentPot int
	currentBet int

	currentPlayerIndex int
	dealerIndex        int
	gameState          GameState
	winners            []Winner

	round         int
	startingChips map[string]int
	log           []*playable.LogMessage
}

// NewGame returns a new table of Texas Hold'em without any players
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Game{
		options:       opts,
		logger:        logger,
		players:       make([]*Player, 0, opts.MaxPlayers),
		activePlayers: make([]*Player, 0),
		deck:          deck.NewWithGenerator(opts.Generator),
		pots:          potmanager.NewPots(nil),
		gameState:     NotStarted,
		startingChips: make(map[string]int),
		log:           make([]*playable.LogMessage, 0),
	}, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return NameFromOptions(g.options)
}

// NameFromOptions returns the name from the provided options
func NameFromOptions(opts Options) string {
	if err := validateOptions(opts); err != nil {
		return ""
	}

	return fmt.Sprintf("No-Limit Texas Hold'em (${%d}/${%d})", opts.SmallBlind, opts.BigBlind)
}

// AddPlayer seats a new player. The player starts with the default stack unless chips are provided
// A player added while a hand is in progress is dealt in on the next round
func (g *Game) AddPlayer(name string, chips ...int) (*PlayerView, error) {
	if len(g.players) >= g.options.MaxPlayers {
		return nil, fmt.Errorf("cannot add more than %d players: %w", g.options.MaxPlayers, ErrTableFull)
	}

	stack := g.options.StartingChips
	if len(chips) > 0 {
		stack = chips[0]
	}

	if stack < 0 {
		return nil, ErrInvalidChips
	}

	p := NewPlayer(name, stack)
	g.players = append(g.players, p)

	g.logger.WithFields(logrus.Fields{
		"player": p.ID(),
		"name":   name,
		"amount": stack,
	}).Debug("player joined")

	view := p.View()
	return &view, nil
}

// RemovePlayer removes the player from the table
// A player who is still in a hand that is in progress cannot be removed
func (g *Game) RemovePlayer(id string) error {
	index := -1
	for i, p := range g.players {
		if p.ID() == id {
			index = i
			break
		}
	}

	if index == -1 {
		return ErrPlayerNotFound
	}

	p := g.players[index]
	if g.gameState.IsBettingRound() && p.IsActive() && g.isDealtIn(p) {
		return fmt.Errorf("cannot remove %s: %w", p.Name(), ErrHandInProgress)
	}

	g.players = append(g.players[:index], g.players[index+1:]...)

	// keep the button on the same seat
	if index < g.dealerIndex {
		g.dealerIndex--
	}

	if g.dealerIndex >= len(g.players) {
		g.dealerIndex = len(g.players) - 1
		if g.dealerIndex < 0 {
			g.dealerIndex = 0
		}
	}

	g.logger.WithField("player", id).Debug("player left")
	return nil
}

func (g *Game) isDealtIn(p *Player) bool {
	for _, d := range g.dealtIn {
		if d == p {
			return true
		}
	}

	return false
}

// StartNewRound deals a new hand
// False is returned if there are not enough players with chips, or if a hand is still in progress
func (g *Game) StartNewRound() bool {
	if g.gameState.IsBettingRound() {
		return false
	}

	solvent := 0
	for _, p := range g.players {
		if !p.IsBankrupt() {
			solvent++
		}
	}

	if solvent < g.options.MinPlayers {
		g.logger.WithFields(logrus.Fields{
			"players":    solvent,
			"minPlayers": g.options.MinPlayers,
		}).Debug("not enough players to start a round")
		return false
	}

	g.round++
	g.activePlayers = make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if !p.IsBankrupt() {
			g.activePlayers = append(g.activePlayers, p)
		}
	}

	g.dealtIn = make([]*Player, len(g.activePlayers))
	copy(g.dealtIn, g.activePlayers)

	g.deck = deck.NewWithGenerator(g.options.Generator)
	g.deck.Shuffle()
	g.communityCards = make([]*deck.Card, 0, 5)
	g.pots = potmanager.NewPots(participants(g.activePlayers))
	g.currentPot = 0
	g.currentBet = 0
	g.winners = nil

	g.startingChips = make(map[string]int, len(g.players))
	for _, p := range g.players {
		p.ResetForNewRound()
		g.startingChips[p.ID()] = p.Chips()
	}

	g.moveDealer()
	sb, bb := g.assignRoles()
	g.collectBlinds(sb, bb)
	g.dealPlayerCards()

	g.gameState = Preflop
	g.currentPlayerIndex = g.activeIndex(g.players[g.nextSolventSeat(bb)])
	g.skipAllInPlayers()
	g.rebuildPots()

	g.logger.WithFields(logrus.Fields{
		"round":  g.round,
		"dealer": g.players[g.dealerIndex].ID(),
		"state":  g.gameState.String(),
	}).Info("round started")

	// the blinds may have put everyone all-in
	if g.isBettingRoundComplete() {
		g.nextStreet()
	}

	return true
}

// moveDealer advances the button to the next player with chips
func (g *Game) moveDealer() {
	if len(g.players) == 0 {
		return
	}

	g.dealerIndex = g.nextSolventSeat(g.dealerIndex)
	g.players[g.dealerIndex].dealer = true
	g.addLog(playable.SimpleLogMessage(g.players[g.dealerIndex].ID(), "{} is the dealer"))
}

// assignRoles returns the seats of the small blind and the big blind
func (g *Game) assignRoles() (int, int) {
	sb := g.nextSolventSeat(g.dealerIndex)
	bb := g.nextSolventSeat(sb)

	g.players[sb].smallBlind = true
	g.players[bb].bigBlind = true

	return sb, bb
}

// collectBlinds takes the blinds. A short stack posts whatever it has
func (g *Game) collectBlinds(sb, bb int) {
	sbPlayer := g.players[sb]
	sbAmount := sbPlayer.PlaceBet(g.options.SmallBlind)
	g.addLog(playable.SimpleLogMessage(sbPlayer.ID(), "{} posted the small blind of ${%d}", sbAmount))

	bbPlayer := g.players[bb]
	bbAmount := bbPlayer.PlaceBet(g.options.BigBlind)
	g.addLog(playable.SimpleLogMessage(bbPlayer.ID(), "{} posted the big blind of ${%d}", bbAmount))

	g.currentBet = max(sbAmount, bbAmount)
}

func (g *Game) dealPlayerCards() {
	for _, p := range g.activePlayers {
		p.ReceiveCards(g.deck.DealCards(2, false)...)
	}
}

// nextSolventSeat returns the next seat after index held by a player with chips
// If there is no such seat, index is returned
func (g *Game) nextSolventSeat(index int) int {
	n := len(g.players)
	if n == 0 {
		return 0
	}

	for i := 1; i <= n; i++ {
		next := (index + i) % n
		if next == index {
			break
		}

		if !g.players[next].IsBankrupt() {
			return next
		}
	}

	return index
}

// activeIndex returns the position of the player in activePlayers, or 0 if the player is not in the hand
func (g *Game) activeIndex(p *Player) int {
	for i, ap := range g.activePlayers {
		if ap == p {
			return i
		}
	}

	return 0
}

func (g *Game) rebuildPots() {
	g.pots = potmanager.BuildPots(participants(g.dealtIn))
	g.currentPot = len(g.pots) - 1
}

func (g *Game) addLog(messages ...*playable.LogMessage) {
	g.log = append(g.log, messages...)
}

func participants(players []*Player) []potmanager.Participant {
	pts := make([]potmanager.Participant, len(players))
	for i, p := range players {
		pts[i] = p
	}

	return pts
}
