package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/manager"
	"github.com/aldesouky/seedarr/pkg/storage"
)

var (
	trackTitle    string
	trackKind     string
	trackLanguage string
	trackQuality  string
	trackSeasons  []int
	trackYear     int32
)

// trackCmd represents the track command
var trackCmd = &cobra.Command{
	Use:   "track <source-url>",
	Short: "track a series or movie",
	Long:  `track a series or movie by its source page URL`,
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

		req := manager.TrackRequest{
			Title:     trackTitle,
			SourceURL: args[0],
			Kind:      storage.MediaKind(trackKind),
			Language:  storage.Language(trackLanguage),
			Quality:   trackQuality,
		}
		if cmd.Flags().Changed("seasons") {
			req.Seasons = trackSeasons
		}
		if cmd.Flags().Changed("year") {
			req.Year = &trackYear
		}

		id, err := m.TrackItem(ctx, req)
		if err != nil {
			log.Fatalw("failed to track item", "error", err)
		}

		log.Infow("tracked", "item_id", id, "title", trackTitle)
	},
}

func init() {
	trackCmd.Flags().StringVarP(&trackTitle, "title", "t", "", "display title")
	trackCmd.Flags().StringVarP(&trackKind, "kind", "k", "series", "content kind (series|movie)")
	trackCmd.Flags().StringVarP(&trackLanguage, "language", "l", "arabic", "content language (arabic|english)")
	trackCmd.Flags().StringVarP(&trackQuality, "quality", "q", "", "preferred quality label")
	trackCmd.Flags().IntSliceVar(&trackSeasons, "seasons", nil, "seasons to fulfill, all when omitted")
	trackCmd.Flags().Int32Var(&trackYear, "year", 0, "release year, used in movie file names")
	_ = trackCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(trackCmd)
}
