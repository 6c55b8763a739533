package cmd

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aldesouky/seedarr/pkg/logger"
)

// placeCmd represents the place command
var placeCmd = &cobra.Command{
	Use:   "place <download-id>",
	Short: "place a completed download into the library",
	Long:  `place a completed download whose file never made it into the library`,
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

		path, err := m.PlaceDownload(ctx, id)
		if err != nil {
			log.Fatalw("placement failed", "download_id", id, "error", err)
		}

		log.Infow("placed", "download_id", id, "path", path)
	},
}

func init() {
	rootCmd.AddCommand(placeCmd)
}
