package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
)

// Schema creates the seed tables. Positions keep the order locations and items were published in.
const Schema = `
CREATE TABLE IF NOT EXISTS network_locations (
	id        TEXT PRIMARY KEY,
	position  INTEGER NOT NULL,
	name      TEXT NOT NULL,
	kind      TEXT NOT NULL CHECK (kind IN ('store', 'warehouse', 'distribution')),
	address   TEXT NOT NULL DEFAULT '',
	x         DOUBLE PRECISION NOT NULL DEFAULT 0,
	y         DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS network_inventory (
	location_id TEXT NOT NULL REFERENCES network_locations(id) ON DELETE CASCADE,
	position    INTEGER NOT NULL,
	item_name   TEXT NOT NULL,
	stock       INTEGER NOT NULL CHECK (stock >= 0),
	demand      INTEGER NOT NULL CHECK (demand >= 0),
	optimal     INTEGER NOT NULL CHECK (optimal > 0),
	PRIMARY KEY (location_id, item_name)
);
`

type LocationRepository struct {
	db *DB
}

func NewLocationRepository(db *DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create seed schema: %w", err)
	}
	return nil
}

type inventoryRow struct {
	LocationID string `db:"location_id"`
	domain.InventoryLine
}

// LoadNetwork reads the published seed in publication order
func (r *LocationRepository) LoadNetwork(ctx context.Context) ([]domain.Location, error) {
	var locations []domain.Location
	err := r.db.SelectContext(ctx, &locations, `
		SELECT id, name, kind, address, x, y
		FROM network_locations
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	var rows []inventoryRow
	err = r.db.SelectContext(ctx, &rows, `
		SELECT i.location_id, i.item_name, i.stock, i.demand, i.optimal
		FROM network_inventory i
		JOIN network_locations l ON l.id = i.location_id
		ORDER BY l.position, i.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	index := make(map[string]int, len(locations))
	for i, loc := range locations {
		index[loc.ID] = i
	}
	for _, row := range rows {
		i := index[row.LocationID]
		locations[i].Inventory = append(locations[i].Inventory, row.InventoryLine)
	}

	return locations, nil
}

// PublishNetwork replaces the stored seed with locations
func (r *LocationRepository) PublishNetwork(ctx context.Context, locations []domain.Location) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM network_locations`); err != nil {
			return fmt.Errorf("failed to clear locations: %w", err)
		}

		locStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO network_locations (id, position, name, kind, address, x, y)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer locStmt.Close()

		lineStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO network_inventory (location_id, position, item_name, stock, demand, optimal)
			VALUES ($1, $2, $3, $4, $5, $6)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer lineStmt.Close()

		for i, loc := range locations {
			if _, err := locStmt.ExecContext(ctx, loc.ID, i, loc.Name, string(loc.Kind), loc.Address, loc.X, loc.Y); err != nil {
				return fmt.Errorf("failed to insert location %s: %w", loc.ID, err)
			}
			for j, line := range loc.Inventory {
				if _, err := lineStmt.ExecContext(ctx, loc.ID, j, line.ItemName, line.Stock, line.Demand, line.Optimal); err != nil {
					return fmt.Errorf("failed to insert %s at %s: %w", line.ItemName, loc.ID, err)
				}
			}
		}

		return nil
	})
}
