package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	padelelo "github.com/hedon954/padel-elo"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigMissingFileUsesPresets(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, padelelo.DefaultMatchConfig(), cfg.Match)
	assert.Equal(t, padelelo.DefaultLadderConfig(), cfg.Ladder)
	assert.Equal(t, time.Second, cfg.Runner.TickInterval)
}

func TestLoadConfigOverlaysYAML(t *testing.T) {
	path := writeFile(t, `
match:
  k: 24
  base_tiers:
    - above: 500
      reduction: 8
ladder:
  num_lanes: 8
  edge_compensation: 10
  edge_reach: 3
runner:
  tick_interval: 250ms
log:
  level: debug
  format: json
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 24.0, cfg.Match.K)
	assert.Equal(t, 400.0, cfg.Match.Ratio, "unset keys keep the preset")
	assert.Equal(t, []padelelo.BaseTier{{Above: 500, Reduction: 8}}, cfg.Match.BaseTiers)
	assert.Equal(t, 8, cfg.Ladder.NumLanes)
	assert.Equal(t, 10.0, cfg.Ladder.EdgeCompensation)
	assert.Equal(t, 3, cfg.Ladder.EdgeReach)
	assert.Equal(t, 0.7, cfg.Ladder.FactorAvg)
	assert.Equal(t, 250*time.Millisecond, cfg.Runner.TickInterval)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeFile(t, "match:\n  k: 24\n")
	t.Setenv("PADELELO_MATCH_K", "40")
	t.Setenv("PADELELO_LADDER_NUM_LANES", "4")
	t.Setenv("PADELELO_TICK_INTERVAL", "2s")
	t.Setenv("PADELELO_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.Match.K)
	assert.Equal(t, 4, cfg.Ladder.NumLanes)
	assert.Equal(t, 2*time.Second, cfg.Runner.TickInterval)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "match: [1, 2"))
		assert.Error(t, err)
	})

	t.Run("invalid env", func(t *testing.T) {
		t.Setenv("PADELELO_LADDER_K", "lots")
		_, err := LoadConfig(writeFile(t, ""))
		assert.ErrorContains(t, err, "PADELELO_LADDER_K")
	})

	t.Run("invalid coefficient", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "ladder:\n  num_lanes: 0\n"))
		var cfgErr *padelelo.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "num_lanes", cfgErr.Field)
		assert.ErrorContains(t, err, "ladder")
	})

	t.Run("invalid tick", func(t *testing.T) {
		_, err := LoadConfig(writeFile(t, "runner:\n  tick_interval: 0s\n"))
		assert.ErrorContains(t, err, "tick_interval")
	})
}

func TestSlogLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "chatty"}.SlogLevel())
	assert.NotNil(t, LogConfig{Format: "json"}.NewLogger())
}
