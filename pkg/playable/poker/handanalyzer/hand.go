package handanalyzer

import (
	"errors"

	"holdem-engine/pkg/deck"
)

// ErrNotEvaluated is returned when comparing a hand that has not been evaluated
var ErrNotEvaluated = errors.New("hands must be evaluated before they can be compared")

// Hand holds a player's cards in the order they were received
// The evaluation is cached until the cards change
type Hand struct {
	cards  deck.Hand
	result *Result
}

// NewHand returns a hand holding the cards
func NewHand(cards ...*deck.Card) *Hand {
	h := &Hand{
		cards: make(deck.Hand, 0, len(cards)),
	}

	h.cards = append(h.cards, cards...)
	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *deck.Card) {
	h.cards.AddCard(card)
	h.result = nil
}

// AddCards adds the cards to the hand
func (h *Hand) AddCards(cards ...*deck.Card) {
	h.cards = append(h.cards, cards...)
	h.result = nil
}

// Clear removes every card from the hand
func (h *Hand) Clear() {
	h.cards = h.cards[:0:0]
	h.result = nil
}

// Cards returns a copy of the cards in the hand
func (h *Hand) Cards() []*deck.Card {
	return deck.CloneCards(h.cards)
}

// Size returns the number of cards in the hand
func (h *Hand) Size() int {
	return len(h.cards)
}

// Evaluate finds the best hand using the hand's cards plus the community cards
// The result is cached on the hand
func (h *Hand) Evaluate(community ...*deck.Card) Result {
	pool := make([]*deck.Card, 0, len(h.cards)+len(community))
	pool = append(pool, h.cards...)
	pool = append(pool, community...)

	result := Evaluate(pool)
	h.result = &result
	return result.Clone()
}

// Result returns the cached evaluation. The second value is false if the hand has not been
// evaluated since it last changed
func (h *Hand) Result() (Result, bool) {
	if h.result == nil {
		return Result{}, false
	}

	return h.result.Clone(), true
}

// IsEvaluated returns true if there is a cached evaluation
func (h *Hand) IsEvaluated() bool {
	return h.result != nil
}

// CompareTo returns a positive number if h beats other, a negative number if other beats h, or zero on a tie
func (h *Hand) CompareTo(other *Hand) (int, error) {
	if h.result == nil || other.result == nil {
		return 0, ErrNotEvaluated
	}

	return h.result.Compare(*other.result), nil
}

func (h *Hand) String() string {
	return h.cards.String()
}
