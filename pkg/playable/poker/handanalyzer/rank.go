package handanalyzer

import "fmt"

// Rank is a poker hand ranking, i.e., royal flush
// The ordinal value orders the rankings from weakest to strongest
type Rank int

// Constants for Rank
const (
	HighCard Rank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Ranks lists every ranking from weakest to strongest
var Ranks = []Rank{
	HighCard,
	OnePair,
	TwoPair,
	ThreeOfAKind,
	Straight,
	Flush,
	FullHouse,
	FourOfAKind,
	StraightFlush,
	RoyalFlush,
}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown rank: %d", r))
	}
}

// Description returns the table-talk label shown to players
func (r Rank) Description() string {
	switch r {
	case RoyalFlush:
		return "Royal flush"
	case StraightFlush:
		return "Straight flush"
	case FourOfAKind:
		return "Quads"
	case FullHouse:
		return "Full house"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Trips"
	case TwoPair:
		return "Two pair"
	case OnePair:
		return "Pair"
	default:
		return "High card"
	}
}
