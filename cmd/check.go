package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aldesouky/seedarr/pkg/logger"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [item-id]",
	Short: "run a detection pass",
	Long:  `run a detection pass for one tracked item, or all of them`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ctx = logger.WithCtx(ctx, log)

		m, _, err := buildManager(ctx)
		if err != nil {
			log.Fatalw("failed to build pipeline", "error", err)
		}

		if len(args) == 0 {
			if err := m.CheckAllItems(ctx); err != nil {
				log.Fatalw("detection pass failed", "error", err)
			}
			return
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalw("item id must be a number", "arg", args[0])
		}

		created, err := m.CheckItem(ctx, id)
		if err != nil {
			log.Fatalw("detection failed", "item_id", id, "error", err)
		}

		log.Infow("detection finished", "item_id", id, "new_episodes", len(created))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
