package texasholdem

import (
	"github.com/sirupsen/logrus"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable"
	"holdem-engine/pkg/playable/poker/handanalyzer"
	"holdem-engine/pkg/playable/poker/potmanager"
)

// Winner is a player's share of a pot
type Winner struct {
	Player PlayerView `json:"player"`
	// Result is nil when everyone else folded
	Result   *handanalyzer.Result `json:"result,omitempty"`
	PotIndex int                  `json:"potIndex"`
	Amount   int                  `json:"amount"`
}

func (w Winner) clone() Winner {
	cp := w
	cp.Player.Cards = deck.CloneCards(w.Player.Cards)
	if w.Result != nil {
		r := *w.Result
		r.RankCards = deck.CloneCards(r.RankCards)
		r.Kickers = deck.CloneCards(r.Kickers)
		cp.Result = &r
	}

	return cp
}

// endRound awards every pot to the last player standing
func (g *Game) endRound() {
	winner := g.activePlayers[0]
	total := g.pots.Total()
	winner.ReceiveChips(total)

	g.winners = []Winner{{
		Player:   winner.View(),
		PotIndex: 0,
		Amount:   total,
	}}

	g.addLog(playable.SimpleLogMessage(winner.ID(), "{} won ${%d}", total))
	g.logger.WithFields(logrus.Fields{
		"round":  g.round,
		"player": winner.ID(),
		"amount": total,
	}).Info("everyone else folded")

	g.gameState = GameOver
}

// showdown evaluates every hand still in play and pays out each pot
func (g *Game) showdown() {
	g.gameState = Showdown

	results := make(map[string]handanalyzer.Result, len(g.activePlayers))
	for _, p := range g.activePlayers {
		results[p.ID()] = p.hand.Evaluate(g.communityCards...)
		g.addLog(playable.CardsLogMessage(p.hand.Cards(), "%s shows %s", p.Name(), results[p.ID()].Rank.Description()))
	}

	payouts := potmanager.Distribute(g.pots, func(pt potmanager.Participant) handanalyzer.Result {
		return results[pt.ID()]
	})

	g.winners = make([]Winner, 0, len(payouts))
	for _, payout := range payouts {
		p := payout.Participant.(*Player)
		p.ReceiveChips(payout.Amount)

		g.winners = append(g.winners, Winner{
			Player:   p.View(),
			Result:   payout.Result,
			PotIndex: payout.PotIndex,
			Amount:   payout.Amount,
		})

		if payout.Result != nil {
			g.addLog(playable.SimpleLogMessage(p.ID(), "{} won ${%d} with %s", payout.Amount, payout.Result.Rank.Description()))
		} else {
			g.addLog(playable.SimpleLogMessage(p.ID(), "{} won ${%d}", payout.Amount))
		}

		g.logger.WithFields(logrus.Fields{
			"round":  g.round,
			"player": p.ID(),
			"amount": payout.Amount,
			"pot":    payout.PotIndex,
		}).Info("pot awarded")
	}

	g.gameState = GameOver
}
