// Package config manages pivotscale's configuration using Viper,
// mirroring pkg/louvain's Config shape (spec §6 AMBIENT STACK).
package config

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/ucsc-vama/pivotscale/internal/ordering"
)

// Config wraps a Viper instance preloaded with the algorithm's
// defaults. Zero-value Config is not usable; always build one through
// New.
type Config struct {
	v *viper.Viper
}

// New creates a Config with every default populated.
func New() *Config {
	v := viper.New()

	// Ordering heuristic parameters (ordering.h's CoreIsAdvantageous
	// thresholds and CoreApprox's epsilon slack).
	v.SetDefault("ordering.param_a", ordering.DefaultParamA)
	v.SetDefault("ordering.param_b", ordering.DefaultParamB)
	v.SetDefault("ordering.epsilon", ordering.DefaultEpsilon)
	v.SetDefault("ordering.force_strategy", "") // "", "core", or "degree"

	// Performance parameters.
	v.SetDefault("performance.num_workers", runtime.NumCPU())

	// Count width: "64" (default) or "128".
	v.SetDefault("count.width", "64")

	// Logging parameters.
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", true)

	return &Config{v: v}
}

// LoadFromFile merges a config file (any format Viper supports: yaml,
// toml, json, ...) on top of the defaults.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

func (c *Config) ParamA() float64       { return c.v.GetFloat64("ordering.param_a") }
func (c *Config) ParamB() float64       { return c.v.GetFloat64("ordering.param_b") }
func (c *Config) Epsilon() float64      { return c.v.GetFloat64("ordering.epsilon") }
func (c *Config) ForceStrategy() string { return c.v.GetString("ordering.force_strategy") }

func (c *Config) NumWorkers() int { return c.v.GetInt("performance.num_workers") }

func (c *Config) CountWidth() string { return c.v.GetString("count.width") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) LogPretty() bool  { return c.v.GetBool("logging.pretty") }

// Set allows ad hoc overrides, e.g. from CLI flags the caller has
// already parsed.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// OrderingOptions builds an ordering.Options from the configured
// values, for a given worker count.
func (c *Config) OrderingOptions() ordering.Options {
	opt := ordering.Options{
		ParamA:     c.ParamA(),
		ParamB:     c.ParamB(),
		Epsilon:    c.Epsilon(),
		NumWorkers: c.NumWorkers(),
	}
	switch c.ForceStrategy() {
	case "core":
		opt.ForceCore = true
	case "degree":
		opt.ForceDegree = true
	}
	return opt
}

// CreateLogger builds a zerolog.Logger from the logging section,
// exactly the pattern pkg/louvain.Config.CreateLogger uses: a
// console writer in pretty mode, parsed level with an info fallback,
// a run-scoped service tag.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	base := zerolog.New(os.Stdout)
	if c.LogPretty() {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"})
	}
	return base.Level(level).With().Timestamp().Str("service", "pivotscale").Logger()
}
