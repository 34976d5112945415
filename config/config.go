// Package config loads engine settings from defaults, an optional
// yaml config file, and TETRON_-prefixed environment variables.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/jwlothian/tetron/heuristic"
)

type Config struct {
	Rows    int       `mapstructure:"rows"`
	Cols    int       `mapstructure:"cols"`
	Threads int       `mapstructure:"threads"`
	Games   int       `mapstructure:"games"`
	Seed    uint64    `mapstructure:"seed"`
	Weights []float64 `mapstructure:"weights"`
	Debug   bool      `mapstructure:"debug"`
}

// Load reads the configuration. A tetron.yaml in path (or the current
// directory when path is empty) overrides defaults; environment
// variables like TETRON_THREADS override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("rows", 21)
	v.SetDefault("cols", 10)
	v.SetDefault("threads", runtime.NumCPU())
	v.SetDefault("games", 1)
	v.SetDefault("seed", 0)
	v.SetDefault("weights", heuristic.DefaultWeights.Slice())
	v.SetDefault("debug", false)

	v.SetConfigName("tetron")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	} else {
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("tetron")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if cfg.Rows < 4 || cfg.Cols < 4 {
		return nil, fmt.Errorf("board %dx%d is too small for the piece set", cfg.Rows, cfg.Cols)
	}
	return cfg, nil
}

// AgentWeights converts the configured 7-element weight vector.
func (c *Config) AgentWeights() (heuristic.Weights, error) {
	return heuristic.WeightsFromSlice(c.Weights)
}
