package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	padelelo "github.com/hedon954/padel-elo"
)

// Config struct to hold the configuration settings
type Config struct {
	Match  padelelo.Config `yaml:"match"`
	Ladder padelelo.Config `yaml:"ladder"`
	Runner RunnerConfig    `yaml:"runner"`
	Log    LogConfig       `yaml:"log"`
}

// RunnerConfig holds settlement runner configuration.
type RunnerConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

// Default returns the league presets.
func Default() *Config {
	return &Config{
		Match:  padelelo.DefaultMatchConfig(),
		Ladder: padelelo.DefaultLadderConfig(),
		Runner: RunnerConfig{TickInterval: time.Second},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig loads the configuration from a YAML file on top of the presets.
// A missing file leaves the presets in place; environment variables win over
// both.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal config %s", filename)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, errors.Wrapf(err, "failed to read config %s", filename)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks both engine configurations.
func (c *Config) Validate() error {
	if err := c.Match.ValidateMatch(); err != nil {
		return errors.Wrap(err, "match")
	}
	if err := c.Ladder.ValidateLadder(); err != nil {
		return errors.Wrap(err, "ladder")
	}
	if c.Runner.TickInterval <= 0 {
		return errors.Errorf("runner: tick_interval must be > 0, got %s", c.Runner.TickInterval)
	}
	return nil
}

// SlogLevel maps the configured level onto slog.
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger builds the process logger.
func (c LogConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func applyEnv(cfg *Config) error {
	floats := map[string]*float64{
		"PADELELO_MATCH_K":      &cfg.Match.K,
		"PADELELO_MATCH_RATIO":  &cfg.Match.Ratio,
		"PADELELO_MATCH_BASE":   &cfg.Match.Base,
		"PADELELO_LADDER_K":     &cfg.Ladder.K,
		"PADELELO_LADDER_RATIO": &cfg.Ladder.Ratio,
		"PADELELO_LADDER_BASE":  &cfg.Ladder.Base,
	}
	for key, dst := range floats {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", key)
		}
		*dst = f
	}

	if v := os.Getenv("PADELELO_LADDER_NUM_LANES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "invalid PADELELO_LADDER_NUM_LANES")
		}
		cfg.Ladder.NumLanes = n
	}
	if v := os.Getenv("PADELELO_TICK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, "invalid PADELELO_TICK_INTERVAL")
		}
		cfg.Runner.TickInterval = d
	}
	if v := os.Getenv("PADELELO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}
