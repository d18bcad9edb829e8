package main

import (
	"context"
	"fmt"

	"painting_crm/internal/adapter/persistence"
	"painting_crm/internal/infrastructure/config"
	"painting_crm/internal/infrastructure/logging"
	"painting_crm/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once the root pre-run has loaded
// configuration and built the logger.
type app struct {
	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "painting-crm",
		Short:         "KPI and estimate API for painting contractors",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
				cfg.LogLevel = lvl
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().String("log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(newServeCmd(a), newSeedCmd(a))
	return root
}

// repositories opens the configured store; the caller must run the returned
// close func.
func (a *app) repositories(ctx context.Context) (usecase.Repositories, func() error, error) {
	repos, closeFn, err := persistence.Open(ctx, a.cfg, a.logger)
	if err != nil {
		return usecase.Repositories{}, closeFn, fmt.Errorf("open %s store: %w", a.cfg.DBDriver, err)
	}
	return repos, closeFn, nil
}
