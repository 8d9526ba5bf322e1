package texasholdem

import (
	"github.com/sirupsen/logrus"
	"holdem-engine/pkg/playable"
	"holdem-engine/pkg/playable/poker/action"
)

// PlayerAction performs an action for the current player
// For action.Raise, amount is the player's new total bet for the street. It is ignored by every other action
// False is returned, and nothing changes, if the action is not allowed right now
func (g *Game) PlayerAction(a action.Action, amount int) bool {
	p := g.currentPlayer()
	if p == nil || !g.gameState.IsBettingRound() || p.IsAllIn() {
		return false
	}

	log := g.logger.WithFields(logrus.Fields{
		"round":  g.round,
		"player": p.ID(),
		"action": string(a),
		"amount": amount,
		"state":  g.gameState.String(),
	})

	contributed := 0
	switch a {
	case action.Fold:
		p.Fold()
		g.removeFromActive(p)
	case action.Check:
		if g.currentBet > p.Bet() {
			log.Debug("rejected: cannot check when there is a bet to call")
			return false
		}

		p.Check()
	case action.Call:
		if g.currentBet-p.Bet() <= 0 {
			log.Debug("rejected: nothing to call")
			return false
		}

		contributed = p.Call(g.currentBet)
	case action.Raise:
		if amount <= g.currentBet {
			log.Debug("rejected: raise must be more than the current bet")
			return false
		}

		contributed = p.Raise(amount)
		g.currentBet = max(g.currentBet, p.Bet())
	case action.AllIn:
		contributed = p.AllIn()
		g.currentBet = max(g.currentBet, p.Bet())
	default:
		log.Debug("rejected: unknown action")
		return false
	}

	logAmount := contributed
	if a == action.Raise {
		logAmount = p.Bet()
	}

	g.addLog(playable.SimpleLogMessage(p.ID(), "{} %s", a.LogMessage(logAmount)))
	log.WithField("contributed", contributed).Debug("action accepted")

	g.afterAction()
	return true
}

// afterAction moves the game along after an accepted action
func (g *Game) afterAction() {
	g.rebuildPots()

	if len(g.activePlayers) == 1 {
		g.endRound()
		return
	}

	if g.isBettingRoundComplete() {
		g.nextStreet()
		return
	}

	g.moveToNextPlayer()
}

// isBettingRoundComplete returns true once everyone who can still bet has matched the current bet and
// acted on this street. Players who are all-in are done. If no more than one player can still bet, nobody
// is left to bet against and the street is complete as soon as the bets are matched.
func (g *Game) isBettingRoundComplete() bool {
	if len(g.activePlayers) < 2 {
		return true
	}

	canBet := 0
	pending := 0
	for _, p := range g.activePlayers {
		if p.IsAllIn() {
			continue
		}

		if p.Bet() != g.currentBet {
			return false
		}

		canBet++
		if _, acted := p.LastAction(); !acted {
			pending++
		}
	}

	return canBet <= 1 || pending == 0
}

// moveToNextPlayer passes the action to the next position in activePlayers
// The position wraps around the active list and skips anyone who is all-in
func (g *Game) moveToNextPlayer() {
	n := len(g.activePlayers)
	if n <= 1 {
		return
	}

	index := g.currentPlayerIndex
	for i := 0; i < n; i++ {
		index = (index + 1) % n
		if !g.activePlayers[index].IsAllIn() {
			break
		}
	}

	g.currentPlayerIndex = index
}

// skipAllInPlayers moves the current position forward until it holds a player who can act
func (g *Game) skipAllInPlayers() {
	n := len(g.activePlayers)
	if n == 0 {
		g.currentPlayerIndex = 0
		return
	}

	g.currentPlayerIndex %= n
	for i := 0; i < n && g.activePlayers[g.currentPlayerIndex].IsAllIn(); i++ {
		g.currentPlayerIndex = (g.currentPlayerIndex + 1) % n
	}
}

func (g *Game) removeFromActive(p *Player) {
	active := make([]*Player, 0, len(g.activePlayers))
	for _, ap := range g.activePlayers {
		if ap != p {
			active = append(active, ap)
		}
	}

	g.activePlayers = active
}

func (g *Game) currentPlayer() *Player {
	if len(g.activePlayers) == 0 {
		return nil
	}

	return g.activePlayers[g.currentPlayerIndex%len(g.activePlayers)]
}
