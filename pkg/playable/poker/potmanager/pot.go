package potmanager

import (
	"encoding/json"
	"sort"
)

// Pot is an amount of chips and the participants who can win it
type Pot struct {
	Amount          int
	EligiblePlayers []Participant
}

type potJSON struct {
	Amount          int      `json:"amount"`
	EligiblePlayers []string `json:"eligiblePlayers"`
}

// MarshalJSON provides custom marshalling
func (p Pot) MarshalJSON() ([]byte, error) {
	ids := make([]string, len(p.EligiblePlayers))
	for i, pt := range p.EligiblePlayers {
		ids[i] = pt.ID()
	}

	return json.Marshal(potJSON{
		Amount:          p.Amount,
		EligiblePlayers: ids,
	})
}

// IsEligible returns true if the participant can win the pot
func (p *Pot) IsEligible(pt Participant) bool {
	for _, e := range p.EligiblePlayers {
		if e.ID() == pt.ID() {
			return true
		}
	}

	return false
}

// Pots is an ordered collection of pots. The main pot is always first
type Pots []*Pot

// NewPots returns a single, empty main pot that every participant is eligible for
func NewPots(participants []Participant) Pots {
	eligible := make([]Participant, len(participants))
	copy(eligible, participants)

	return Pots{{EligiblePlayers: eligible}}
}

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// Clone returns a copy of the pots that can be modified without changing the original
func (p Pots) Clone() Pots {
	pots := make(Pots, len(p))
	for i, pot := range p {
		eligible := make([]Participant, len(pot.EligiblePlayers))
		copy(eligible, pot.EligiblePlayers)
		pots[i] = &Pot{
			Amount:          pot.Amount,
			EligiblePlayers: eligible,
		}
	}

	return pots
}

// BuildPots layers the participants' contributions into a main pot and side pots
//
// Active participants are sorted by contribution, lowest first. Every time an all-in participant's contribution
// exceeds the previous level, a pot is formed from what everyone put in between the two levels, and only the
// participants who put in more than the previous level are eligible. Anything bet above the last all-in
// forms the final pot. Folded participants add to the pots up to what they put in, but are never eligible.
// Without any all-ins, the result is one pot that all active participants are eligible for, in the order given.
func BuildPots(participants []Participant) Pots {
	active := make([]Participant, 0, len(participants))
	allIn := false
	for _, pt := range participants {
		if !pt.IsActive() {
			continue
		}

		active = append(active, pt)
		if pt.IsAllIn() {
			allIn = true
		}
	}

	if !allIn {
		pots := NewPots(active)
		pots[0].Amount = totalContribution(participants)
		return pots
	}

	sorted := make([]Participant, len(active))
	copy(sorted, active)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Contribution() < sorted[j].Contribution()
	})

	pots := make(Pots, 0, len(sorted))
	threshold := 0
	start := 0
	for i, pt := range sorted {
		level := pt.Contribution()
		isLast := i+1 == len(sorted)
		if level <= threshold || (!pt.IsAllIn() && !isLast) {
			continue
		}

		// everyone who has put in more than the previous level can win this one
		for sorted[start].Contribution() <= threshold {
			start++
		}

		eligible := make([]Participant, len(sorted)-start)
		copy(eligible, sorted[start:])
		pots = append(pots, &Pot{
			Amount:          layerAmount(participants, threshold, level),
			EligiblePlayers: eligible,
		})

		threshold = level
	}

	if len(pots) == 0 {
		pots = NewPots(active)
	}

	// folded participants may have put in more than anyone who is still in the hand
	if extra := totalContribution(participants) - pots.Total(); extra > 0 {
		pots[len(pots)-1].Amount += extra
	}

	return pots
}

// layerAmount is what every participant contributed between the two levels
func layerAmount(participants []Participant, from, to int) int {
	amount := 0
	for _, pt := range participants {
		c := pt.Contribution()
		if c > to {
			c = to
		}

		if c > from {
			amount += c - from
		}
	}

	return amount
}

func totalContribution(participants []Participant) int {
	total := 0
	for _, pt := range participants {
		total += pt.Contribution()
	}

	return total
}
