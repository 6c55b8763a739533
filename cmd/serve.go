package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/manager"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the fulfillment pipeline",
	Long:  `run the fulfillment pipeline until interrupted`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx = logger.WithCtx(ctx, log)

		m, cfg, err := buildManager(ctx)
		if err != nil {
			log.Fatalw("failed to build pipeline", "error", err)
		}

		scheduler := manager.NewScheduler(m, cfg.Manager)

		log.Infow("pipeline started",
			"check_interval", cfg.Manager.CheckInterval,
			"reconcile_interval", cfg.Manager.ReconcileInterval,
		)

		if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalw("pipeline stopped", "error", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
