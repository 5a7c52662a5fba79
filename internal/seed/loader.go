package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/config"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/inventory"
	"github.com/rs/zerolog/log"
)

const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceObject   = "object"
	SourcePostgres = "postgres"
)

// NetworkSource yields the initial network
type NetworkSource interface {
	LoadNetwork(ctx context.Context) ([]domain.Location, error)
}

// Load resolves the configured source and returns a validated network.
// db is only consulted for the postgres source and may be nil otherwise.
func Load(ctx context.Context, cfg config.SeedConfig, db NetworkSource) ([]domain.Location, error) {
	source := strings.ToLower(strings.TrimSpace(cfg.Source))

	var (
		locations []domain.Location
		err       error
	)
	switch source {
	case SourceBuiltin, "":
		locations = inventory.DefaultNetwork()
	case SourceFile:
		locations, err = LoadFile(cfg.FilePath)
	case SourceObject:
		var src *ObjectSource
		if src, err = NewObjectSource(cfg); err == nil {
			locations, err = src.LoadNetwork(ctx)
		}
	case SourcePostgres:
		if db == nil {
			return nil, fmt.Errorf("seed source %q needs a database", source)
		}
		locations, err = db.LoadNetwork(ctx)
	default:
		return nil, fmt.Errorf("unknown seed source %q", cfg.Source)
	}
	if err != nil {
		return nil, err
	}

	if err := inventory.Validate(locations); err != nil {
		return nil, err
	}

	log.Info().
		Str("source", source).
		Int("locations", len(locations)).
		Msg("seed: network loaded")
	return locations, nil
}
