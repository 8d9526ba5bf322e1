package handanalyzer

import "holdem-engine/pkg/deck"

// findStraight returns the best five sequential cards, highest first
// cards must be sorted by rank descending. A wheel (A-2-3-4-5) is returned as 5,4,3,2,A
func findStraight(cards []*deck.Card) []*deck.Card {
	if len(cards) < 5 {
		return nil
	}

	unique := uniqueRanks(cards)
	if len(unique) < 5 {
		return nil
	}

	for i := 0; i+4 < len(unique); i++ {
		if unique[i].Rank == unique[i+4].Rank+4 {
			return cloneSlice(unique[i : i+5])
		}
	}

	if unique[0].Rank != deck.Ace {
		return nil
	}

	// the ace plays low, so it trails the 5-4-3-2
	wheel := make([]*deck.Card, 0, 5)
	for rank := deck.Five; rank >= deck.Two; rank-- {
		card := cardOfRank(unique, rank)
		if card == nil {
			return nil
		}

		wheel = append(wheel, card)
	}

	return append(wheel, unique[0])
}

// uniqueRanks keeps the first card of every rank
func uniqueRanks(cards []*deck.Card) []*deck.Card {
	unique := make([]*deck.Card, 0, len(cards))
	prevRank := 0
	for _, card := range cards {
		if card.Rank == prevRank {
			continue
		}

		unique = append(unique, card)
		prevRank = card.Rank
	}

	return unique
}

func cardOfRank(cards []*deck.Card, rank int) *deck.Card {
	for _, card := range cards {
		if card.Rank == rank {
			return card
		}
	}

	return nil
}

func cloneSlice(cards []*deck.Card) []*deck.Card {
	cp := make([]*deck.Card, len(cards))
	copy(cp, cards)
	return cp
}
