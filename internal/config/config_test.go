package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func load(t *testing.T) *Config {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	setDefaults()
	viper.AutomaticEnv()
	return fromViper()
}

func TestDefaults(t *testing.T) {
	cfg := load(t)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Engine.SurplusMargin)
	assert.Equal(t, 0.3, cfg.Engine.HighPriorityRatio)
	assert.Equal(t, 10, cfg.Engine.MediumDeficit)
	assert.Equal(t, 3*time.Second, cfg.Engine.SettleDelay)
	assert.Zero(t, cfg.Engine.RefreshInterval)
	assert.Equal(t, "builtin", cfg.Seed.Source)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "rebalance:network:", cfg.Cache.KeyPrefix)
	assert.Equal(t, 10*time.Second, cfg.Cache.OverviewTTL)
	assert.Equal(t, 30*time.Second, cfg.Cache.LocationsTTL)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENGINE_SETTLE_DELAY", "0s")
	t.Setenv("ENGINE_REFRESH_INTERVAL", "1m")
	t.Setenv("ENGINE_SURPLUS_MARGIN", "8")
	t.Setenv("SEED_SOURCE", "postgres")
	t.Setenv("CACHE_ENABLED", "true")

	cfg := load(t)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Zero(t, cfg.Engine.SettleDelay)
	assert.Equal(t, time.Minute, cfg.Engine.RefreshInterval)
	assert.Equal(t, 8, cfg.Engine.SurplusMargin)
	assert.Equal(t, "postgres", cfg.Seed.Source)
	assert.True(t, cfg.Cache.Enabled)
}

func TestExplicitZeroThresholdsSurvive(t *testing.T) {
	t.Setenv("ENGINE_SURPLUS_MARGIN", "0")
	t.Setenv("ENGINE_MEDIUM_DEFICIT", "0")

	cfg := load(t)

	assert.Zero(t, cfg.Engine.SurplusMargin)
	assert.Zero(t, cfg.Engine.MediumDeficit)
}
