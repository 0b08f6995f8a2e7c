package main

import (
	"github.com/Priya8975/travel-agency/internal/store"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Drop all data, recreate the schema and load the reference catalog",
		Long: `Drop all data, recreate the schema and load the reference catalog.

This erases newsletter subscribers. It is the same reset that serve runs
on start, without starting the HTTP server.

Example:
  travel-agency seed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pgStore, err := store.NewPostgres(ctx, cfg.DatabaseURL)
			if err != nil {
				logger.Error("failed to connect to postgres", "error", err)
				return err
			}
			defer pgStore.Close()

			if err := pgStore.ResetAndSeed(ctx); err != nil {
				logger.Error("failed to seed database", "error", err)
				return err
			}

			logger.Info("database reset and seeded")
			return nil
		},
	}
}
