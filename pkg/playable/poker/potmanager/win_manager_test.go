package potmanager

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-engine/pkg/deck"
	"holdem-engine/pkg/playable/poker/handanalyzer"
)

func evaluate(s string) handanalyzer.Result {
	return handanalyzer.Evaluate(deck.CardsFromString(s))
}

func tiersToString(tiers [][]Participant) string {
	s := make([]string, len(tiers))
	for i, participants := range tiers {
		ids := make([]string, len(participants))
		for j, p := range participants {
			ids[j] = p.ID()
		}

		s[i] = strings.Join(ids, "-")
	}

	return strings.Join(s, "|")
}

func TestWinManager_GetSortedTiers(t *testing.T) {
	a := assert.New(t)

	wm := NewWinManager()
	a.Nil(wm.Winners())

	wm.AddParticipant(newTestParticipant("1", 0), evaluate("2c,4d,6h,8s,10c"))
	wm.AddParticipant(newTestParticipant("2", 0), evaluate("2c,2d,6h,8s,10c"))
	wm.AddParticipant(newTestParticipant("3", 0), evaluate("5c,5d,5h,8s,10c"))
	wm.AddParticipant(newTestParticipant("4", 0), evaluate("2s,2h,6c,8d,10s"))
	wm.AddParticipant(newTestParticipant("5", 0), evaluate("5s,5h,5c,8d,10d"))

	a.Equal("3-5|2-4|1", tiersToString(wm.GetSortedTiers()))
	a.Equal("3-5", tiersToString([][]Participant{wm.Winners()}))
}

func TestWinManager_kickersSeparateTiers(t *testing.T) {
	a := assert.New(t)

	wm := NewWinManager()
	wm.AddParticipant(newTestParticipant("1", 0), evaluate("14c,14d,6h,8s,10c"))
	wm.AddParticipant(newTestParticipant("2", 0), evaluate("14s,14h,6c,8d,13s"))

	a.Equal("2|1", tiersToString(wm.GetSortedTiers()))
}

func TestSplit(t *testing.T) {
	a := assert.New(t)

	a.Equal([]int{50, 50}, Split(100, 2))
	a.Equal([]int{34, 33, 33}, Split(100, 3))
	a.Equal([]int{25}, Split(25, 1))
	a.Equal([]int{0, 0}, Split(0, 2))
	a.Nil(Split(100, 0))

	shares := Split(101, 4)
	total := 0
	for _, share := range shares {
		total += share
	}

	a.Equal(101, total)
	a.Equal([]int{26, 25, 25, 25}, shares)
}

func TestDistribute_sidePots(t *testing.T) {
	a := assert.New(t)

	pa := allIn("a", 30)
	pb := allIn("b", 80)
	pc := newTestParticipant("c", 80)
	pots := BuildPots([]Participant{pa, pb, pc})

	// a has the best hand, then c, then b
	results := map[string]handanalyzer.Result{
		"a": evaluate("14c,14d,14h,8s,10c"),
		"b": evaluate("2c,4d,6h,8s,10c"),
		"c": evaluate("13c,13d,6h,8s,10c"),
	}

	payouts := Distribute(pots, func(p Participant) handanalyzer.Result {
		return results[p.ID()]
	})

	a.Equal(2, len(payouts))
	a.Equal("a", payouts[0].Participant.ID())
	a.Equal(0, payouts[0].PotIndex)
	a.Equal(90, payouts[0].Amount)
	a.Equal(handanalyzer.ThreeOfAKind, payouts[0].Result.Rank)
	a.Equal("c", payouts[1].Participant.ID())
	a.Equal(1, payouts[1].PotIndex)
	a.Equal(100, payouts[1].Amount)
}

func TestDistribute_split(t *testing.T) {
	a := assert.New(t)

	pots := Pots{{
		Amount: 101,
		EligiblePlayers: []Participant{
			newTestParticipant("a", 0),
			newTestParticipant("b", 0),
			newTestParticipant("c", 0),
		},
	}}

	// a and b play the board
	results := map[string]handanalyzer.Result{
		"a": evaluate("14c,13d,12h,11s,10c"),
		"b": evaluate("14d,13c,12s,11h,10d"),
		"c": evaluate("2c,2d,6h,8s,10c"),
	}

	payouts := Distribute(pots, func(p Participant) handanalyzer.Result {
		return results[p.ID()]
	})

	a.Equal(2, len(payouts))
	a.Equal("a", payouts[0].Participant.ID())
	a.Equal(51, payouts[0].Amount)
	a.Equal("b", payouts[1].Participant.ID())
	a.Equal(50, payouts[1].Amount)
}

func TestDistribute_soleEligible(t *testing.T) {
	a := assert.New(t)

	called := false
	pots := Pots{
		{Amount: 40},
		{Amount: 60, EligiblePlayers: []Participant{newTestParticipant("a", 60)}},
	}

	payouts := Distribute(pots, func(p Participant) handanalyzer.Result {
		called = true
		return handanalyzer.Result{}
	})

	a.False(called)
	a.Equal(1, len(payouts))
	a.Equal(1, payouts[0].PotIndex)
	a.Equal(60, payouts[0].Amount)
	a.Nil(payouts[0].Result)
}
