// Package app assembles the core components from configuration for the server and the CLI.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/config"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/inventory"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/recommend"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/repository/postgres"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/seed"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/transfer"
	"github.com/rs/zerolog/log"
)

// Core is the in-process rebalancing core
type Core struct {
	Store    *inventory.Store
	Engine   *recommend.Engine
	Executor *transfer.Executor
}

// NewEngine builds an engine with the configured thresholds and a randomised estimator.
// Values pass through as given; defaults live in the config layer.
func NewEngine(cfg config.EngineConfig) *recommend.Engine {
	rc := recommend.Config{
		SurplusMargin:     cfg.SurplusMargin,
		HighPriorityRatio: cfg.HighPriorityRatio,
		MediumDeficit:     cfg.MediumDeficit,
	}
	estimator := recommend.NewRandomEstimator(cfg.CostRateMin, cfg.CostRateMax, time.Now().UnixNano())
	return recommend.NewEngine(rc, estimator)
}

// LoadNetwork reads the seed from the configured source. Postgres is opened only for the
// postgres source and closed once the seed is read, since runtime state is never persisted.
func LoadNetwork(ctx context.Context, cfg *config.Config) ([]domain.Location, error) {
	if !strings.EqualFold(strings.TrimSpace(cfg.Seed.Source), seed.SourcePostgres) {
		return seed.Load(ctx, cfg.Seed, nil)
	}

	conn, err := postgres.Open(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Warn().Err(err).Msg("app: closing seed database failed")
		}
	}()

	return seed.Load(ctx, cfg.Seed, postgres.NewLocationRepository(conn))
}

func NewCore(cfg *config.Config, locations []domain.Location) (*Core, error) {
	store, err := inventory.NewStore(locations)
	if err != nil {
		return nil, err
	}
	return &Core{
		Store:    store,
		Engine:   NewEngine(cfg.Engine),
		Executor: transfer.NewExecutor(store, transfer.NewHistory()),
	}, nil
}
