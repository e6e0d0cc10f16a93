package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/twoopt/tsp"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("twoopt: invalid config")

// Config is the resolved run configuration: DefaultConfig, then the YAML file
// given by --config, then explicitly set flags.
type Config struct {
	Restarts      int    `yaml:"restarts"`
	Seed          int64  `yaml:"seed"`
	Workers       int    `yaml:"workers"`
	FirstFit      bool   `yaml:"first_fit"`
	Delta         bool   `yaml:"delta"`
	MaxIterations int    `yaml:"max_iterations"`
	LogLevel      string `yaml:"log_level"`
}

// DefaultConfig mirrors tsp.DefaultMultiStartOptions with info logging.
func DefaultConfig() Config {
	def := tsp.DefaultMultiStartOptions()

	return Config{
		Restarts: def.Restarts,
		Seed:     1,
		Workers:  def.Workers,
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML config on top of DefaultConfig. Unknown keys are
// rejected; an empty file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%s: %v: %w", path, err, ErrInvalidConfig)
	}

	return cfg, nil
}

// Validate reports the first meaningless field.
func (c Config) Validate() error {
	switch {
	case c.Restarts < 1:
		return fmt.Errorf("restarts=%d, want >= 1: %w", c.Restarts, ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("workers=%d, want >= 0: %w", c.Workers, ErrInvalidConfig)
	case c.MaxIterations < 0:
		return fmt.Errorf("max_iterations=%d, want >= 0: %w", c.MaxIterations, ErrInvalidConfig)
	}
	if _, err := level.Parse(c.LogLevel); err != nil {
		return fmt.Errorf("log_level=%q: %w", c.LogLevel, ErrInvalidConfig)
	}

	return nil
}

// multiStartOptions maps the config onto tsp.MultiStartOptions.
func (c Config) multiStartOptions() tsp.MultiStartOptions {
	return tsp.MultiStartOptions{
		Restarts:  c.Restarts,
		Seed:      c.Seed,
		Workers:   c.Workers,
		Selection: tsp.SelectionOf(c.FirstFit),
	}
}

// engineOptions maps the config onto engine options.
func (c Config) engineOptions() []tsp.Option {
	return []tsp.Option{
		tsp.WithDeltaCosting(c.Delta),
		tsp.WithMaxIterations(c.MaxIterations),
	}
}
