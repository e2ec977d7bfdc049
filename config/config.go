// Package config loads settings from defaults, an optional YAML file,
// ROKUDOKU_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/rokudoku/brick"
)

const (
	ConfigDebug           = "debug"
	ConfigCPUProfile      = "cpu-profile"
	ConfigMemProfile      = "mem-profile"
	ConfigThreads         = "threads"
	ConfigAutoplayThreads = "autoplay-threads"
	ConfigEpisodes        = "episodes"
	ConfigMaxMoves        = "max-moves"
	ConfigSeed            = "seed"
	ConfigAutoplayLog     = "autoplay-log"
	ConfigAutoplaySummary = "autoplay-summary"
	ConfigDrawWeighting   = "draw-weighting"
	ConfigFile            = "config-file"

	envPrefix = "ROKUDOKU"
)

type Config struct {
	*viper.Viper
	args []string
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigAutoplayThreads, runtime.NumCPU())
	c.SetDefault(ConfigEpisodes, 100)
	c.SetDefault(ConfigMaxMoves, 0)
	c.SetDefault(ConfigSeed, 0)
	c.SetDefault(ConfigDrawWeighting, brick.WeightByOrientation.String())
}

// Load reads every configuration source. args are the command-line
// arguments without the program name; anything that is not a flag is left
// for the caller in c.Args().
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("rokudoku", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "file to write a CPU profile to")
	fs.String(ConfigMemProfile, "", "file to write a memory profile to")
	fs.Int(ConfigThreads, 1, "goroutines used by the planner for one decision")
	fs.Int(ConfigAutoplayThreads, runtime.NumCPU(), "episodes played at once by autoplay")
	fs.Int(ConfigEpisodes, 100, "number of episodes autoplay plays")
	fs.Int(ConfigMaxMoves, 0, "stop an autoplay episode after this many moves; 0 for no limit")
	fs.Uint64(ConfigSeed, 0, "seed for reproducible brick draws; 0 draws from system entropy")
	fs.String(ConfigAutoplayLog, "", "CSV file for the per-turn autoplay log")
	fs.String(ConfigAutoplaySummary, "", "YAML file for the autoplay summary")
	fs.String(ConfigDrawWeighting, brick.WeightByOrientation.String(),
		"how bricks are drawn: orientation or shape")
	fs.String(ConfigFile, "", "YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cf := c.GetString(ConfigFile); cf != "" {
		c.SetConfigFile(cf)
		c.SetConfigType("yaml")
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cf, err)
		}
	}
	c.args = fs.Args()
	_, err := brick.WeightingFromString(c.GetString(ConfigDrawWeighting))
	return err
}

// Args are the command-line arguments left over after flags.
func (c *Config) Args() []string {
	return c.args
}

// DrawWeighting is the configured brick draw weighting. Load has already
// rejected unknown values.
func (c *Config) DrawWeighting() brick.Weighting {
	w, err := brick.WeightingFromString(c.GetString(ConfigDrawWeighting))
	if err != nil {
		return brick.WeightByOrientation
	}
	return w
}

// SanitizedSettings is every setting, for logging at startup.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
