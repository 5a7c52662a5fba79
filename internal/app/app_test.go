package app

import (
	"context"
	"testing"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/config"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultEngine() config.EngineConfig {
	return config.EngineConfig{
		SurplusMargin:     5,
		HighPriorityRatio: 0.3,
		MediumDeficit:     10,
		CostRateMin:       15,
		CostRateMax:       25,
	}
}

func TestNewCoreFromBuiltinSeed(t *testing.T) {
	cfg := &config.Config{Engine: defaultEngine(), Seed: config.SeedConfig{Source: "builtin"}}

	locations, err := LoadNetwork(context.Background(), cfg)
	require.NoError(t, err)

	core, err := NewCore(cfg, locations)
	require.NoError(t, err)
	assert.Equal(t, 5, core.Store.Len())

	routes := core.Engine.Generate(context.Background(), core.Store.Snapshot())
	require.Len(t, routes, 7)
	for _, r := range routes {
		assert.GreaterOrEqual(t, r.Cost, 15.0*float64(r.Quantity))
		assert.LessOrEqual(t, r.Cost, 25.0*float64(r.Quantity))
	}
}

func TestNewEngineHonoursThresholds(t *testing.T) {
	cfg := defaultEngine()
	cfg.SurplusMargin = 1000
	assert.Empty(t, NewEngine(cfg).Generate(context.Background(), inventory.DefaultNetwork()))
}

func TestNewEngineKeepsExplicitZeroThresholds(t *testing.T) {
	network := []domain.Location{
		{ID: "a", Name: "A", Kind: domain.KindStore, Inventory: []domain.InventoryLine{{ItemName: "X", Stock: 8, Demand: 10, Optimal: 20}}},
		{ID: "b", Name: "B", Kind: domain.KindWarehouse, Inventory: []domain.InventoryLine{{ItemName: "X", Stock: 12, Demand: 10, Optimal: 20}}},
	}

	// margin 5 leaves b with nothing to give
	assert.Empty(t, NewEngine(defaultEngine()).Generate(context.Background(), network))

	cfg := defaultEngine()
	cfg.SurplusMargin = 0
	cfg.MediumDeficit = 0
	routes := NewEngine(cfg).Generate(context.Background(), network)
	require.Len(t, routes, 1)
	assert.Equal(t, "b", routes[0].From)
	assert.Equal(t, 2, routes[0].Quantity)
	assert.Equal(t, domain.PriorityMedium, routes[0].Priority)
}

func TestLoadNetworkPostgresUnreachable(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{Host: "127.0.0.1", Port: "1", User: "u", DBName: "n", SSLMode: "disable"},
		Seed:     config.SeedConfig{Source: "postgres"},
	}

	_, err := LoadNetwork(context.Background(), cfg)
	assert.ErrorContains(t, err, "failed to connect to database")
}

func TestNewCoreRejectsBadSeed(t *testing.T) {
	_, err := NewCore(&config.Config{}, []domain.Location{{ID: "a", Kind: "moon"}})
	assert.ErrorIs(t, err, domain.ErrInvalidSeed)
}
