package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "instance", cfg.InstanceDir)
	assert.Equal(t, 100, cfg.LeaderboardLimit)
	assert.Equal(t, 50, cfg.LatestGamesLimit)
	assert.Equal(t, 15, cfg.PlayerGamesLimit)
	assert.Equal(t, 10, cfg.MinDatapoints)
	assert.Equal(t, 50, cfg.CurveWidth)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("RATING_CURVE_WIDTH", "25")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, 25, cfg.CurveWidth)
}

func TestLoadRejectsBadIntegers(t *testing.T) {
	t.Setenv("RATING_MIN_DATAPOINTS", "plenty")

	_, err := Load()
	assert.Error(t, err)
}
