package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-engine/internal/rng"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Equal(52, d.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Spades}, *d.Cards[0])
	a.Equal(Card{Rank: 14, Suit: Diamonds}, *d.Cards[51])

	assertFullDeck(t, d)
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	unshuffled := New().HashCode()

	d1 := NewWithGenerator(rng.NewSeeded(1))
	d1.Shuffle()
	d2 := NewWithGenerator(rng.NewSeeded(1))
	d2.Shuffle()

	a.NotEqual(unshuffled, d1.HashCode())
	a.Equal(d1.HashCode(), d2.HashCode(), "same seed should produce the same order")
	assertFullDeck(t, d1)

	d3 := NewWithGenerator(rng.NewSeeded(2))
	d3.Shuffle()
	a.NotEqual(d1.HashCode(), d3.HashCode())

	before := d1.HashCode()
	d1.Shuffle()
	a.NotEqual(before, d1.HashCode())
	assertFullDeck(t, d1)
}

func TestDeck_DealCard(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	card, ok := d.DealCard(false)
	a.True(ok)
	a.Equal("14d", CardToString(card))
	a.False(card.FaceUp)

	card, ok = d.DealCard(true)
	a.True(ok)
	a.Equal("13d", CardToString(card))
	a.True(card.FaceUp)

	for i := 0; i < 50; i++ {
		card, ok := d.DealCard(false)
		a.True(ok)
		a.NotNil(card)
	}

	a.True(d.IsEmpty())
	card, ok = d.DealCard(false)
	a.False(ok)
	a.Nil(card)
}

func TestDeck_DealCards(t *testing.T) {
	a := assert.New(t)
	d := New()

	cards := d.DealCards(3, true)
	a.Equal("14d,13d,12d", CardsToString(cards))
	for _, c := range cards {
		a.True(c.FaceUp)
	}

	d.Cards = CardsFromString("2c,3c")
	cards = d.DealCards(5, false)
	a.Equal("3c,2c", CardsToString(cards))
	a.Equal(0, d.CardsLeft())
	a.Equal(0, len(d.DealCards(1, false)))
}

func TestDeck_AddCards(t *testing.T) {
	a := assert.New(t)
	d := NewWithGenerator(rng.NewSeeded(7))
	d.Shuffle()

	cards := d.DealCards(5, false)
	a.Equal(47, d.CardsLeft())

	d.AddCards(cards...)
	a.Equal(52, d.CardsLeft())
	assertFullDeck(t, d)
}

func TestDeck_Reset(t *testing.T) {
	d := NewWithGenerator(rng.NewSeeded(3))
	d.DealCards(20, false)
	d.Reset()

	assert.Equal(t, 52, d.CardsLeft())
	assert.NotEqual(t, New().HashCode(), d.HashCode())
	assertFullDeck(t, d)
}

func assertFullDeck(t *testing.T, d *Deck) {
	t.Helper()

	seen := make(map[string]bool)
	for _, c := range d.Cards {
		seen[CardToString(c)] = true
	}

	assert.Equal(t, 52, len(d.Cards))
	assert.Equal(t, 52, len(seen), "deck contains duplicates")
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			assert.True(t, seen[CardToString(&Card{Rank: rank, Suit: suit})])
		}
	}
}
