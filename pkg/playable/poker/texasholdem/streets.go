package texasholdem

import (
	"github.com/sirupsen/logrus"
	"holdem-engine/pkg/playable"
)

// nextStreet deals the next street
// When no more than one player can still bet, each remaining street is dealt right away through to the showdown
func (g *Game) nextStreet() {
	for {
		switch g.gameState {
		case Preflop:
			g.gameState = Flop
			g.dealCommunityCards(3, "flop")
		case Flop:
			g.gameState = Turn
			g.dealCommunityCards(1, "turn")
		case Turn:
			g.gameState = River
			g.dealCommunityCards(1, "river")
		case River:
			g.showdown()
			return
		default:
			return
		}

		g.currentBet = 0
		for _, p := range g.activePlayers {
			p.resetForNewStreet()
		}

		g.currentPlayerIndex = 0
		g.skipAllInPlayers()

		g.logger.WithFields(logrus.Fields{
			"round": g.round,
			"state": g.gameState.String(),
			"pot":   g.pots.Total(),
		}).Debug("street dealt")

		if !g.isBettingRoundComplete() {
			return
		}
	}
}

func (g *Game) dealCommunityCards(n int, street string) {
	cards := g.deck.DealCards(n, true)
	g.communityCards = append(g.communityCards, cards...)
	g.addLog(playable.CardsLogMessage(cards, "dealt the %s", street))
}
