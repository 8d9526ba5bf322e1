// Package sim plays hands of hold'em between random bots
package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"holdem-engine/internal/rng"
	"holdem-engine/internal/util"
	"holdem-engine/pkg/playable/poker/action"
	"holdem-engine/pkg/playable/poker/texasholdem"
)

// maxActionsPerHand guards against a bot that can never finish a hand
const maxActionsPerHand = 1000

// ErrStuck is returned when a hand stops accepting actions
var ErrStuck = errors.New("the hand stopped accepting actions")

// Settings controls a simulation
type Settings struct {
	Tables  int
	Players int
	Rounds  int

	// Seed for table n is Seed+n, so every table plays a different deck
	Seed    int64
	Options texasholdem.Options
}

// Result is the outcome of a single table
type Result struct {
	Table   int
	Seed    int64
	Rounds  int
	Players []texasholdem.PlayerView
}

// Run plays every table in parallel and returns their results in table order
func Run(ctx context.Context, logger logrus.FieldLogger, settings Settings) ([]Result, error) {
	if settings.Tables < 1 {
		return nil, fmt.Errorf("expected at least one table, got %d", settings.Tables)
	}

	results := make([]Result, settings.Tables)
	g, ctx := errgroup.WithContext(ctx)
	for table := 0; table < settings.Tables; table++ {
		table := table // per-iteration copy (Go <1.22 loop semantics)
		g.Go(func() error {
			result, err := runTable(ctx, logger.WithField("table", table), settings, table)
			if err != nil {
				return fmt.Errorf("table %d: %w", table, err)
			}

			results[table] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func runTable(ctx context.Context, logger logrus.FieldLogger, settings Settings, table int) (Result, error) {
	seed := settings.Seed + int64(table)
	gen := rng.NewSeeded(seed)

	opts := settings.Options
	opts.Generator = gen

	game, err := texasholdem.NewGame(logger, opts)
	if err != nil {
		return Result{}, err
	}

	for i := 0; i < settings.Players; i++ {
		if _, err := game.AddPlayer(util.GetRandomName()); err != nil {
			return Result{}, err
		}
	}

	logger.WithFields(logrus.Fields{
		"game":    game.Name(),
		"players": settings.Players,
		"seed":    seed,
	}).Info("table started")

	played := 0
	for played < settings.Rounds {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if !game.StartNewRound() {
			logger.Info("not enough players left to start a hand")
			break
		}

		played++
		if err := playHand(game, gen); err != nil {
			return Result{}, fmt.Errorf("round %d: %w", played, err)
		}

		if details, ok := game.GetEndOfGameDetails(); ok {
			logger.WithFields(logrus.Fields{
				"round":       played,
				"adjustments": details.BalanceAdjustments,
			}).Debug("hand complete")
		}
	}

	logger.WithField("rounds", played).Info("table finished")

	return Result{
		Table:   table,
		Seed:    seed,
		Rounds:  played,
		Players: game.Players(),
	}, nil
}

// playHand acts for whoever is on the clock until the hand is over
func playHand(game *texasholdem.Game, gen rng.Generator) error {
	for actions := 0; game.GameState().IsBettingRound(); actions++ {
		if actions >= maxActionsPerHand {
			return ErrStuck
		}

		a, amount := chooseAction(game, gen)
		if game.PlayerAction(a, amount) {
			continue
		}

		if !game.PlayerAction(action.Fold, 0) {
			return ErrStuck
		}
	}

	return nil
}

// weights biases the bots towards seeing more streets
var weights = map[action.Action]int{
	action.Check: 12,
	action.Call:  12,
	action.Raise: 5,
	action.Fold:  3,
	action.AllIn: 1,
}

// legalActions returns the actions that make sense for the current player, in action.Actions order
func legalActions(facingBet bool) []action.Action {
	legal := make([]action.Action, 0, len(action.Actions))
	for _, a := range action.Actions {
		switch a {
		case action.Check:
			if facingBet {
				continue
			}
		case action.Call, action.Fold:
			if !facingBet {
				continue
			}
		}

		legal = append(legal, a)
	}

	return legal
}

// chooseAction picks a weighted random legal action
func chooseAction(game *texasholdem.Game, gen rng.Generator) (action.Action, int) {
	p, _ := game.CurrentPlayer()
	legal := legalActions(game.CurrentBet() > p.Bet)

	total := 0
	for _, a := range legal {
		total += weights[a]
	}

	roll := gen.Intn(total)
	for _, a := range legal {
		if roll -= weights[a]; roll < 0 {
			if a == action.Raise {
				return a, game.CurrentBet() + game.BigBlind()*(1+gen.Intn(3))
			}

			return a, 0
		}
	}

	return action.Fold, 0
}
