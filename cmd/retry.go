package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aldesouky/seedarr/pkg/logger"
)

// retryCmd represents the retry command
var retryCmd = &cobra.Command{
	Use:   "retry <download-id>",
	Short: "retry a failed download",
	Long:  `retry a failed download with a fresh resolution`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		ctx = logger.WithCtx(ctx, log)

		m, _, err := buildManager(ctx)
		if err != nil {
			log.Fatalw("failed to build pipeline", "error", err)
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalw("download id must be a number", "arg", args[0])
		}

		newID, err := m.RetryDownload(ctx, id)
		if err != nil {
			log.Fatalw("retry failed", "download_id", id, "error", err)
		}

		log.Infow("retry submitted", "download_id", id, "new_download_id", newID)
	},
}

func init() {
	rootCmd.AddCommand(retryCmd)
}
