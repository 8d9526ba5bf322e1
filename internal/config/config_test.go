package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"holdem-engine/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_TABLE_STARTING_CHIPS", "5000")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(25, cfg.Table.SmallBlind)
	a.Equal(50, cfg.Table.BigBlind)
	a.Equal(6, cfg.Table.MaxPlayers)
	a.Equal("debug", cfg.Log.Level)
	a.Equal(5000, cfg.Table.StartingChips)

	// values missing from the file keep their defaults
	a.Equal(2, cfg.Table.MinPlayers)
	a.Equal("text", cfg.Log.Format)

	// ensure that it's only loaded once
	_ = os.Setenv("HOLDEM_TABLE_STARTING_CHIPS", "6000")
	// ensure we aren't using a pointer
	cfg.Table.StartingChips = 1
	cfg = Instance()
	a.Equal(5000, cfg.Table.StartingChips)

	opts := cfg.Options()
	a.Equal(25, opts.SmallBlind)
	a.Equal(50, opts.BigBlind)
	a.Equal(2, opts.MinPlayers)
	a.Equal(6, opts.MaxPlayers)
	a.Equal(5000, opts.StartingChips)
	a.Nil(opts.Generator)
}

func TestDefaults(t *testing.T) {
	unset := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer unset()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(5, cfg.Table.SmallBlind)
	a.Equal(10, cfg.Table.BigBlind)
	a.Equal(1000, cfg.Table.StartingChips)
	a.Equal("info", cfg.Log.Level)

	expected := DefaultConfig()
	expected.loaded = true
	a.Equal(expected, cfg)
}

func TestLoad_invalidEnv(t *testing.T) {
	clear1 := util.SetEnv("HOLDEM_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("HOLDEM_TABLE_BIG_BLIND", "lots")
	defer clear2()

	assert.Error(t, Load())
}
