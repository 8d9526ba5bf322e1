package texasholdem

import (
	"errors"

	"holdem-engine/internal/rng"
)

// Options configures how Texas Hold'em is played
type Options struct {
	SmallBlind    int
	BigBlind      int
	MinPlayers    int
	MaxPlayers    int
	StartingChips int

	// Generator shuffles every new deck. A cryptographically secure generator is used when nil
	Generator rng.Generator
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind:    5,
		BigBlind:      10,
		MinPlayers:    2,
		MaxPlayers:    10,
		StartingChips: 1000,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind < 0 {
		return errors.New("small blind must be >= 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.MinPlayers < 2 || opts.MaxPlayers < opts.MinPlayers {
		return PlayerCountError{
			Min: opts.MinPlayers,
			Max: opts.MaxPlayers,
		}
	}

	if opts.StartingChips <= 0 {
		return errors.New("starting chips must be > 0")
	}

	return nil
}
