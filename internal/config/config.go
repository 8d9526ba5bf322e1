package config

import (
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"holdem-engine/internal/util"
	"holdem-engine/pkg/playable/poker/texasholdem"
)

// Config provides configuration for the hold'em engine
type Config struct {
	loaded bool
	Table  Table `yaml:"table"`
	Log    Log   `yaml:"log"`
}

// Table holds the table stakes and limits
type Table struct {
	SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
	MinPlayers    int `yaml:"minPlayers" envconfig:"min_players"`
	MaxPlayers    int `yaml:"maxPlayers" envconfig:"max_players"`
	StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`
}

// Log configures the logger
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	opts := texasholdem.DefaultOptions()

	return Config{
		Table: Table{
			SmallBlind:    opts.SmallBlind,
			BigBlind:      opts.BigBlind,
			MinPlayers:    opts.MinPlayers,
			MaxPlayers:    opts.MaxPlayers,
			StartingChips: opts.StartingChips,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file leaves the defaults in place
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Options returns the game options for the configured table
func (c Config) Options() texasholdem.Options {
	opts := texasholdem.DefaultOptions()
	opts.SmallBlind = c.Table.SmallBlind
	opts.BigBlind = c.Table.BigBlind
	opts.MinPlayers = c.Table.MinPlayers
	opts.MaxPlayers = c.Table.MaxPlayers
	opts.StartingChips = c.Table.StartingChips

	return opts
}
