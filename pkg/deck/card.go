package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
)

// Suits is every suit in a standard deck, in deck-building order
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// Letter returns the short form used by CardToString (s, h, c, d)
func (s Suit) Letter() string {
	if s == "" {
		return ""
	}

	return string(s[0])
}

// Symbol returns the suit's unicode symbol
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♡"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♢"
	}

	panic(fmt.Sprintf("unknown suit: %s", string(s)))
}

func suitFromLetter(letter string) (Suit, bool) {
	for _, s := range Suits {
		if s.Letter() == strings.ToLower(letter) {
			return s, true
		}
	}

	return "", false
}

// Card is an individual playing card
// Rank and Suit never change once the card is built. Only the face-up flag is mutable.
type Card struct {
	Rank   int  `json:"rank"`
	Suit   Suit `json:"suit"`
	FaceUp bool `json:"faceUp"`
}

// ranks with special meaning
const (
	Two    = 2
	Five   = 5
	Jack   = 11
	Queen  = 12
	King   = 13
	Ace    = 14
	LowAce = 1
)

var faces = map[int]string{
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// String returns the card the way a player would read it, e.g. A♠ or 10♡
func (c *Card) String() string {
	rank, ok := faces[c.Rank]
	if !ok {
		rank = strconv.Itoa(c.Rank)
	}

	return rank + c.Suit.Symbol()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c *Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// TurnFaceUp shows the card
func (c *Card) TurnFaceUp() {
	c.FaceUp = true
}

// TurnFaceDown hides the card
func (c *Card) TurnFaceDown() {
	c.FaceUp = false
}

// Clone returns a clone of the card
// The clone is Equal to the original but is a distinct object
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
// An empty string returns nil, anything else that doesn't parse panics
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	// both are guaranteed by the regexp
	rank, _ := strconv.Atoi(match[1])
	suit, _ := suitFromLetter(match[2])

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString returns a slice of cards from a comma separated list
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	return strconv.Itoa(card.Rank) + card.Suit.Letter()
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}

// CloneCards returns a slice where every card is cloned
func CloneCards(cards []*Card) []*Card {
	cp := make([]*Card, len(cards))
	for i, card := range cards {
		cp[i] = card.Clone()
	}

	return cp
}
