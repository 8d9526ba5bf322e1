package potmanager

import (
	"sort"

	"holdem-engine/pkg/playable/poker/handanalyzer"
)

type tier struct {
	result       handanalyzer.Result
	participants []Participant
}

// WinManager groups participants by the strength of their hands
type WinManager struct {
	tiers []*tier
}

// NewWinManager returns an empty WinManager
func NewWinManager() *WinManager {
	return &WinManager{
		tiers: make([]*tier, 0),
	}
}

// AddParticipant adds the participant to the tier matching its result
// Participants in the same tier keep the order they were added in
func (w *WinManager) AddParticipant(p Participant, result handanalyzer.Result) {
	for _, t := range w.tiers {
		if t.result.Compare(result) == 0 {
			t.participants = append(t.participants, p)
			return
		}
	}

	w.tiers = append(w.tiers, &tier{
		result:       result,
		participants: []Participant{p},
	})
}

// GetSortedTiers returns the participants grouped by hand, best hand first
func (w *WinManager) GetSortedTiers() [][]Participant {
	tiers := make([]*tier, len(w.tiers))
	copy(tiers, w.tiers)

	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].result.Compare(tiers[j].result) > 0
	})

	tieredParticipants := make([][]Participant, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}

// Winners returns the participants holding the best hand
func (w *WinManager) Winners() []Participant {
	tiers := w.GetSortedTiers()
	if len(tiers) == 0 {
		return nil
	}

	return tiers[0]
}

// Payout is the share of a pot awarded to a single participant
type Payout struct {
	Participant Participant
	// Result is nil when the participant won without a showdown
	Result   *handanalyzer.Result
	PotIndex int
	Amount   int
}

// Split divides amount into n shares using integer division
// The remainder goes to the first share
func Split(amount, n int) []int {
	if n <= 0 {
		return nil
	}

	shares := make([]int, n)
	share := amount / n
	for i := range shares {
		shares[i] = share
	}

	shares[0] += amount - share*n
	return shares
}

// Distribute awards every pot to the best hands among its eligible participants
//
// Pots without eligible participants are skipped. A pot with a single eligible participant is awarded
// without consulting the results. Otherwise, the evaluate function is called for each eligible participant
// and the pot is split between the participants tied for the best hand, in eligibility order.
func Distribute(pots Pots, evaluate func(p Participant) handanalyzer.Result) []Payout {
	payouts := make([]Payout, 0, len(pots))
	for i, pot := range pots {
		switch len(pot.EligiblePlayers) {
		case 0:
			continue
		case 1:
			payouts = append(payouts, Payout{
				Participant: pot.EligiblePlayers[0],
				PotIndex:    i,
				Amount:      pot.Amount,
			})
			continue
		}

		results := make(map[string]handanalyzer.Result, len(pot.EligiblePlayers))
		wm := NewWinManager()
		for _, p := range pot.EligiblePlayers {
			result := evaluate(p)
			results[p.ID()] = result
			wm.AddParticipant(p, result)
		}

		winners := wm.Winners()
		shares := Split(pot.Amount, len(winners))
		for j, winner := range winners {
			result := results[winner.ID()]
			payouts = append(payouts, Payout{
				Participant: winner,
				Result:      &result,
				PotIndex:    i,
				Amount:      shares[j],
			})
		}
	}

	return payouts
}
