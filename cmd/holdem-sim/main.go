package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"holdem-engine/internal/config"
	"holdem-engine/internal/sim"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

// CLI holds the command line flags
// Chips and LogLevel fall back to the loaded configuration when unset
type CLI struct {
	Tables   int              `default:"1" help:"Number of tables to run in parallel"`
	Players  int              `default:"6" help:"Bots seated at each table"`
	Rounds   int              `default:"100" help:"Hands to play at each table"`
	Seed     int64            `default:"0" help:"RNG seed (0 for random)"`
	Chips    int              `help:"Starting chips for each bot"`
	LogLevel string           `help:"Log level, overrides the configuration"`
	Version  kong.VersionFlag `help:"Print the version and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-sim"),
		kong.Description("Plays no-limit Texas Hold'em between random bots."),
		kong.Vars{"version": Version},
	)

	cfg := config.Instance()
	setupLogger(cfg, cli.LogLevel)

	settings := sim.Settings{
		Tables:  cli.Tables,
		Players: cli.Players,
		Rounds:  cli.Rounds,
		Seed:    cli.Seed,
		Options: cfg.Options(),
	}

	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}

	if cli.Chips > 0 {
		settings.Options.StartingChips = cli.Chips
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := sim.Run(runCtx, logrus.StandardLogger(), settings)
	ctx.FatalIfErrorf(err)

	for _, result := range results {
		for _, p := range result.Players {
			logrus.WithFields(logrus.Fields{
				"table":  result.Table,
				"seed":   result.Seed,
				"rounds": result.Rounds,
				"player": p.Name,
				"chips":  p.Chips,
			}).Info("final stack")
		}
	}
}

func setupLogger(cfg config.Config, override string) {
	lvl := cfg.Log.Level
	if override != "" {
		lvl = override
	}

	if lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	format := cfg.Log.Format
	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}

	if strings.ToLower(format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
