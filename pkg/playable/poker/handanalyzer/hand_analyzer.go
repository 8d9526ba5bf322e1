package handanalyzer

import (
	"sort"

	"holdem-engine/pkg/deck"
)

// MinCards is the number of cards needed to form a ranked hand
const MinCards = 5

// rankGroup is every card in the pool that shares a rank
type rankGroup struct {
	rank  int
	cards []*deck.Card
}

// suitGroup is every card in the pool that shares a suit, highest rank first
type suitGroup struct {
	suit  deck.Suit
	cards []*deck.Card
}

// HandAnalyzer can analyze a pool of cards and find the best five-card hand
type HandAnalyzer struct {
	cards deck.Hand

	// rankGroups are ordered by rank descending
	rankGroups []rankGroup
	// suitGroups are ordered by deck.Suits
	suitGroups []suitGroup

	result Result
}

// Evaluate returns the best five-card hand the cards can make
func Evaluate(cards []*deck.Card) Result {
	return New(cards).Result()
}

// New will return a new HandAnalyzer instance
func New(cards []*deck.Card) *HandAnalyzer {
	// clone to prevent modifying original
	sortedCards := make(deck.Hand, len(cards))
	copy(sortedCards, cards)
	sort.Sort(sort.Reverse(sortedCards))

	h := &HandAnalyzer{
		cards: sortedCards,
	}

	h.analyzeHand()
	h.calculateHand()
	return h
}

// analyzeHand groups the sorted cards by rank and by suit
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.rankGroups = make([]rankGroup, 0, len(h.cards))
	for _, card := range h.cards {
		n := len(h.rankGroups)
		if n > 0 && h.rankGroups[n-1].rank == card.Rank {
			h.rankGroups[n-1].cards = append(h.rankGroups[n-1].cards, card)
			continue
		}

		h.rankGroups = append(h.rankGroups, rankGroup{
			rank:  card.Rank,
			cards: []*deck.Card{card},
		})
	}

	h.suitGroups = make([]suitGroup, 0, len(deck.Suits))
	for _, suit := range deck.Suits {
		group := suitGroup{suit: suit}
		for _, card := range h.cards {
			if card.Suit == suit {
				group.cards = append(group.cards, card)
			}
		}

		if len(group.cards) > 0 {
			h.suitGroups = append(h.suitGroups, group)
		}
	}
}

// Result returns the evaluation of the best hand
func (h *HandAnalyzer) Result() Result {
	return h.result.Clone()
}

// GetRoyalFlush will return the royal flush, if possible
func (h *HandAnalyzer) GetRoyalFlush() ([]*deck.Card, bool) {
	sf, ok := h.GetStraightFlush()
	if ok && sf[0].Rank == deck.Ace {
		return sf, true
	}

	return nil, false
}

// GetStraightFlush will return the best straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() ([]*deck.Card, bool) {
	var best []*deck.Card
	for _, group := range h.suitGroups {
		if len(group.cards) < MinCards {
			continue
		}

		if straight := findStraight(group.cards); straight != nil {
			if best == nil || straight[0].Rank > best[0].Rank {
				best = straight
			}
		}
	}

	return best, best != nil
}

// GetFourOfAKind will return the four cards and the kicker, if possible
func (h *HandAnalyzer) GetFourOfAKind() ([]*deck.Card, []*deck.Card, bool) {
	for _, group := range h.rankGroups {
		if len(group.cards) == 4 {
			return cloneSlice(group.cards), h.kickers(1, group.rank), true
		}
	}

	return nil, nil, false
}

// GetFullHouse will return the three cards followed by the two cards, if possible
func (h *HandAnalyzer) GetFullHouse() ([]*deck.Card, bool) {
	var trips *rankGroup
	for i := range h.rankGroups {
		if len(h.rankGroups[i].cards) >= 3 {
			trips = &h.rankGroups[i]
			break
		}
	}

	if trips == nil {
		return nil, false
	}

	for _, group := range h.rankGroups {
		if group.rank != trips.rank && len(group.cards) >= 2 {
			cards := make([]*deck.Card, 0, 5)
			cards = append(cards, trips.cards[0:3]...)
			return append(cards, group.cards[0:2]...), true
		}
	}

	return nil, false
}

// GetFlush will return the five highest cards of the best flush, if possible
func (h *HandAnalyzer) GetFlush() ([]*deck.Card, bool) {
	var best []*deck.Card
	for _, group := range h.suitGroups {
		if len(group.cards) < MinCards {
			continue
		}

		flush := group.cards[0:5]
		if best == nil || compareCards(flush, best) > 0 {
			best = flush
		}
	}

	if best == nil {
		return nil, false
	}

	return cloneSlice(best), true
}

// GetStraight will return the best straight, if possible
func (h *HandAnalyzer) GetStraight() ([]*deck.Card, bool) {
	straight := findStraight(h.cards)
	return straight, straight != nil
}

// GetThreeOfAKind will return the best three of a kind and two kickers, if possible
func (h *HandAnalyzer) GetThreeOfAKind() ([]*deck.Card, []*deck.Card, bool) {
	for _, group := range h.rankGroups {
		if len(group.cards) == 3 {
			return cloneSlice(group.cards), h.kickers(2, group.rank), true
		}
	}

	return nil, nil, false
}

// GetTwoPair will return the best two pairs and a kicker, if possible
func (h *HandAnalyzer) GetTwoPair() ([]*deck.Card, []*deck.Card, bool) {
	pairs := make([]*deck.Card, 0, 4)
	ranks := make([]int, 0, 2)
	for _, group := range h.rankGroups {
		if len(group.cards) < 2 {
			continue
		}

		pairs = append(pairs, group.cards[0:2]...)
		ranks = append(ranks, group.rank)
		if len(ranks) == 2 {
			return pairs, h.kickers(1, ranks...), true
		}
	}

	return nil, nil, false
}

// GetPair will return the best pair and three kickers, if possible
func (h *HandAnalyzer) GetPair() ([]*deck.Card, []*deck.Card, bool) {
	for _, group := range h.rankGroups {
		if len(group.cards) >= 2 {
			return cloneSlice(group.cards[0:2]), h.kickers(3, group.rank), true
		}
	}

	return nil, nil, false
}

// GetHighCard will return the high card and the next four cards as kickers
func (h *HandAnalyzer) GetHighCard() ([]*deck.Card, []*deck.Card) {
	n := len(h.cards)
	if n == 0 {
		return []*deck.Card{}, []*deck.Card{}
	}

	if n > 5 {
		n = 5
	}

	return cloneSlice(h.cards[0:1]), cloneSlice(h.cards[1:n])
}

// kickers returns the n highest cards whose rank is not excluded
func (h *HandAnalyzer) kickers(n int, excludeRanks ...int) []*deck.Card {
	kickers := make([]*deck.Card, 0, n)
CardLoop:
	for _, card := range h.cards {
		if len(kickers) == n {
			break
		}

		for _, rank := range excludeRanks {
			if card.Rank == rank {
				continue CardLoop
			}
		}

		kickers = append(kickers, card)
	}

	return kickers
}

// calculateHand will determine the best hand
// Rankings are checked strongest first and the first match wins
func (h *HandAnalyzer) calculateHand() {
	if len(h.cards) < MinCards {
		h.result = Result{
			Rank:      HighCard,
			RankCards: []*deck.Card{},
			Kickers:   []*deck.Card{},
		}
		return
	}

	if cards, ok := h.GetRoyalFlush(); ok {
		h.result = newResult(RoyalFlush, cards, nil)
	} else if cards, ok := h.GetStraightFlush(); ok {
		h.result = newResult(StraightFlush, cards, nil)
	} else if cards, kickers, ok := h.GetFourOfAKind(); ok {
		h.result = newResult(FourOfAKind, cards, kickers)
	} else if cards, ok := h.GetFullHouse(); ok {
		h.result = newResult(FullHouse, cards, nil)
	} else if cards, ok := h.GetFlush(); ok {
		h.result = newResult(Flush, cards, nil)
	} else if cards, ok := h.GetStraight(); ok {
		h.result = newResult(Straight, cards, nil)
	} else if cards, kickers, ok := h.GetThreeOfAKind(); ok {
		h.result = newResult(ThreeOfAKind, cards, kickers)
	} else if cards, kickers, ok := h.GetTwoPair(); ok {
		h.result = newResult(TwoPair, cards, kickers)
	} else if cards, kickers, ok := h.GetPair(); ok {
		h.result = newResult(OnePair, cards, kickers)
	} else {
		cards, kickers := h.GetHighCard()
		h.result = newResult(HighCard, cards, kickers)
	}
}
