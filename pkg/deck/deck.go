package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"

	"holdem-engine/internal/rng"
)

// Deck represents a playing deck
// The top of the deck is the end of Cards; dealing pops from there.
type Deck struct {
	Cards []*Card `json:"cards"`
	gen   rng.Generator
}

// New returns a new deck of cards that shuffles with a cryptographically secure generator.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	return NewWithGenerator(rng.Crypto{})
}

// NewWithGenerator returns a new, unshuffled deck that shuffles with the provided generator
func NewWithGenerator(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	d := &Deck{
		gen: gen,
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the cards currently in the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Reset returns every card to the deck and shuffles it
func (d *Deck) Reset() {
	d.buildDeck()
	d.Shuffle()
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// DealCard will deal the top card
// If there are no more cards, false is returned along with a nil card.
func (d *Deck) DealCard(faceUp bool) (*Card, bool) {
	n := len(d.Cards)
	if n == 0 {
		return nil, false
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	if faceUp {
		card.TurnFaceUp()
	}

	return card, true
}

// DealCards deals up to n cards. If the deck runs out, the cards dealt so far are returned
func (d *Deck) DealCards(n int, faceUp bool) []*Card {
	cards := make([]*Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.DealCard(faceUp)
		if !ok {
			break
		}

		cards = append(cards, card)
	}

	return cards
}

// AddCards puts the cards back on top of the deck
func (d *Deck) AddCards(cards ...*Card) {
	d.Cards = append(d.Cards, cards...)
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// IsEmpty returns true if there are no cards left to deal
func (d *Deck) IsEmpty() bool {
	return len(d.Cards) == 0
}
