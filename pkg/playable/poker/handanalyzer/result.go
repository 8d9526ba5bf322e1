package handanalyzer

import (
	"fmt"

	"holdem-engine/pkg/deck"
)

// Result is the best five-card hand found in a pool of cards
type Result struct {
	Rank Rank `json:"rank"`
	// RankCards are the cards that make up the combination, i.e., the four cards of four-of-a-kind
	RankCards []*deck.Card `json:"rankCards"`
	// Kickers break ties between equal combinations, highest first
	Kickers []*deck.Card `json:"kickers"`
}

func newResult(rank Rank, rankCards, kickers []*deck.Card) Result {
	if kickers == nil {
		kickers = []*deck.Card{}
	}

	return Result{
		Rank:      rank,
		RankCards: rankCards,
		Kickers:   kickers,
	}
}

// Clone returns a copy of the result whose slices can be modified safely
// The cards themselves are shared
func (r Result) Clone() Result {
	return Result{
		Rank:      r.Rank,
		RankCards: cloneSlice(r.RankCards),
		Kickers:   cloneSlice(r.Kickers),
	}
}

// Cards returns the rank cards followed by the kickers
func (r Result) Cards() []*deck.Card {
	cards := make([]*deck.Card, 0, len(r.RankCards)+len(r.Kickers))
	cards = append(cards, r.RankCards...)
	return append(cards, r.Kickers...)
}

// Compare returns a positive number if r beats other, a negative number if other beats r, or zero on a tie
func (r Result) Compare(other Result) int {
	if r.Rank != other.Rank {
		return int(r.Rank) - int(other.Rank)
	}

	if cmp := compareCards(r.RankCards, other.RankCards); cmp != 0 {
		return cmp
	}

	return compareCards(r.Kickers, other.Kickers)
}

func (r Result) String() string {
	return fmt.Sprintf("%s (%s)", r.Rank, deck.CardsToString(r.Cards()))
}

// compareCards compares cards position by position by rank
func compareCards(a, b []*deck.Card) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if cmp := a[i].Rank - b[i].Rank; cmp != 0 {
			return cmp
		}
	}

	return 0
}
