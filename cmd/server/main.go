package main

import (
	"log/slog"
	"os"

	"github.com/Priya8975/travel-agency/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "travel-agency",
		Short: "Travel agency marketing site backend",
		Long: `Serves the travel agency marketing site: continent and destination
pages plus the newsletter signup endpoint.

Every start wipes the database and reloads the reference catalog.
Newsletter subscribers do not survive a restart.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	root.AddCommand(newServeCmd(), newSeedCmd())
	return root
}

// setup loads configuration and builds the process logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		logger.Error("failed to load config", "error", err)
		return nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
