// Package config loads sweepmind configuration from YAML with defaults and
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all sweepmind configuration.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Simulate SimulateConfig `yaml:"simulate"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Seed is the base RNG seed. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// BoardConfig sets the grid and mine count.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Mines  int `yaml:"mines"`
}

// SimulateConfig sets batch-run parameters for the simulate command.
type SimulateConfig struct {
	Games   int `yaml:"games"`
	Workers int `yaml:"workers"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the default configuration: the classic 8x8 board with
// eight mines.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Height: 8,
			Width:  8,
			Mines:  8,
		},
		Simulate: SimulateConfig{
			Games:   100,
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults
// with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment trump file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SWEEP_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
	if v := os.Getenv("SWEEP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SWEEP_SIMULATE_GAMES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Simulate.Games = n
		}
	}
}

// Validate rejects configurations no game can be played on.
func (c *Config) Validate() error {
	if c.Board.Height <= 0 || c.Board.Width <= 0 {
		return fmt.Errorf("config: invalid board dimensions %dx%d", c.Board.Height, c.Board.Width)
	}
	if c.Board.Mines < 0 || c.Board.Mines >= c.Board.Height*c.Board.Width {
		return fmt.Errorf("config: mine count %d out of range for %dx%d board",
			c.Board.Mines, c.Board.Height, c.Board.Width)
	}
	if c.Simulate.Games <= 0 {
		return fmt.Errorf("config: simulate games must be positive, got %d", c.Simulate.Games)
	}
	if c.Simulate.Workers <= 0 {
		return fmt.Errorf("config: simulate workers must be positive, got %d", c.Simulate.Workers)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	return nil
}
