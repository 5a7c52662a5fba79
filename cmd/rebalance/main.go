package main

import (
	"os"

	"github.com/andresuchdata/supplychain-ai/backend-go/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load(".env")

	app := &cli.App{
		Name:  "rebalance",
		Usage: "Inspect and rebalance a supply network from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "seed-file",
				Usage:   "CSV or XLSX network seed; the configured SEED_SOURCE is used when empty",
				EnvVars: []string{"SEED_FILE_OVERRIDE"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "warn",
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "recommend",
				Usage:  "Print the recommended transfer routes for the seed network",
				Flags:  []cli.Flag{formatFlag()},
				Action: runRecommend,
			},
			{
				Name:  "transfer",
				Usage: "Apply a manual transfer to the seed network and print the record and the next batch",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "Source location id", Required: true},
					&cli.StringFlag{Name: "to", Usage: "Destination location id", Required: true},
					&cli.StringFlag{Name: "item", Usage: "Item name", Required: true},
					&cli.IntFlag{Name: "quantity", Aliases: []string{"q"}, Usage: "Units to move", Required: true},
					formatFlag(),
				},
				Action: runTransfer,
			},
			{
				Name:  "seed",
				Usage: "Publish a network seed file to Postgres",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db-url",
						Usage:    "Database connection string",
						Required: true,
						EnvVars:  []string{"DATABASE_URL"},
					},
					&cli.StringFlag{
						Name:    "file",
						Usage:   "CSV or XLSX seed; the built-in network is published when empty",
						EnvVars: []string{"SEED_FILE"},
					},
				},
				Action: runSeed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Error().Err(err).Msg("rebalance failed")
		os.Exit(1)
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "format",
		Usage: "Output format: table or json",
		Value: "table",
	}
}
