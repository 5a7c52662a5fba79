package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/app"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/config"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/inventory"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/repository/postgres"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/seed"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v2"
)

func loadCore(c *cli.Context) (*app.Core, error) {
	cfg := config.Load()

	var (
		locations []domain.Location
		err       error
	)
	if path := c.String("seed-file"); path != "" {
		locations, err = seed.LoadFile(path)
	} else {
		locations, err = app.LoadNetwork(c.Context, cfg)
	}
	if err != nil {
		return nil, err
	}
	return app.NewCore(cfg, locations)
}

func runRecommend(c *cli.Context) error {
	core, err := loadCore(c)
	if err != nil {
		return err
	}

	routes := core.Engine.Generate(c.Context, core.Store.Snapshot())
	return printRoutes(c.App.Writer, c.String("format"), routes)
}

func runTransfer(c *cli.Context) error {
	core, err := loadCore(c)
	if err != nil {
		return err
	}

	rec, err := core.Executor.Execute(c.Context, domain.TransferRequest{
		FromLocationID: c.String("from"),
		ToLocationID:   c.String("to"),
		ItemName:       c.String("item"),
		Quantity:       c.Int("quantity"),
	}, domain.OriginManual)
	if err != nil {
		return cli.Exit(fmt.Sprintf("transfer rejected: %v", err), 2)
	}

	routes := core.Engine.Generate(c.Context, core.Store.Snapshot())
	if c.String("format") == "json" {
		return writeJSON(c.App.Writer, map[string]any{"transfer": rec, "routes": routes})
	}

	fmt.Fprintf(c.App.Writer, "%s: %d x %s %s -> %s at %s\n\n",
		rec.ID, rec.Quantity, rec.Item, rec.FromLocation, rec.ToLocation, rec.Timestamp.Format("2006-01-02 15:04:05"))
	return printRoutes(c.App.Writer, "table", routes)
}

func runSeed(c *cli.Context) error {
	locations := inventory.DefaultNetwork()
	if path := c.String("file"); path != "" {
		var err error
		if locations, err = seed.LoadFile(path); err != nil {
			return err
		}
	}

	sqlDB, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(c.Context); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	repo := postgres.NewLocationRepository(postgres.Wrap(sqlx.NewDb(sqlDB, "pgx")))
	if err := publish(c.Context, repo, locations); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "published %d locations\n", len(locations))
	return nil
}

func publish(ctx context.Context, repo *postgres.LocationRepository, locations []domain.Location) error {
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	return repo.PublishNetwork(ctx, locations)
}

func printRoutes(w io.Writer, format string, routes []domain.Route) error {
	if format == "json" {
		return writeJSON(w, routes)
	}
	if len(routes) == 0 {
		_, err := fmt.Fprintln(w, "no transfers recommended")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFROM\tTO\tITEM\tQTY\tPRIORITY\tETA\tCOST")
	for _, r := range routes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%.2f\n",
			r.ID, r.From, r.To, r.Item, r.Quantity, r.Priority, r.EstimatedTime, r.Cost)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
