package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/aldesouky/seedarr/config"
	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/storage"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list catalog state",
	Long:  `list catalog state`,
}

// listItemsCmd lists tracked items
var listItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "list tracked items",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx, store := listStorage(log)

		items, err := store.ListTrackedItems(ctx)
		if err != nil {
			log.Fatalw("failed to list items", "error", err)
		}

		for _, item := range items {
			seasons := "all seasons"
			if item.Seasons != nil {
				seasons = "seasons " + *item.Seasons
			}
			checked := "never checked"
			if item.LastCheckedAt != nil {
				checked = "checked " + humanize.Time(*item.LastCheckedAt)
			}
			fmt.Printf("%-4d %-8s %-8s %-40s %s, %s\n", item.ID, item.Kind, item.Language, item.Title, seasons, checked)
		}
	},
}

// listEpisodesCmd lists known episodes
var listEpisodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "list known episodes",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx, store := listStorage(log)

		episodes, err := store.ListEpisodes(ctx)
		if err != nil {
			log.Fatalw("failed to list episodes", "error", err)
		}

		for _, e := range episodes {
			state := "wanted"
			if e.Downloaded {
				state = "downloaded"
				if e.FileSize != nil {
					state = fmt.Sprintf("downloaded (%s)", humanize.IBytes(uint64(*e.FileSize)))
				}
			}
			fmt.Printf("%-4d item=%-4d S%02dE%02d %-12s %s\n", e.ID, e.TrackedItemID, e.Season, e.EpisodeNumber, state, e.SourceURL)
		}
	},
}

// listDownloadsCmd lists download records
var listDownloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "list download records",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx, store := listStorage(log)

		downloads, err := store.ListDownloads(ctx)
		if err != nil {
			log.Fatalw("failed to list downloads", "error", err)
		}

		for _, d := range downloads {
			detail := fmt.Sprintf("%.0f%%", d.Progress)
			switch {
			case d.State == storage.DownloadStateFailed && d.ErrorMessage != nil:
				detail = *d.ErrorMessage
			case d.State == storage.DownloadStateCompleted && d.FinalPath != nil:
				detail = *d.FinalPath
			}
			fmt.Printf("%-4d %-12s attempts=%d %s\n", d.ID, d.State, d.Attempts, detail)
		}
	},
}

func listStorage(log *zap.SugaredLogger) (context.Context, storage.Storage) {
	ctx := context.Background()
	ctx = logger.WithCtx(ctx, log)

	cfg, err := config.New(viper.GetViper())
	if err != nil {
		log.Fatalw("failed to read configuration", "error", err)
	}

	store, err := buildStorage(ctx, cfg)
	if err != nil {
		log.Fatalw("failed to open catalog", "error", err)
	}

	return ctx, store
}

func init() {
	listCmd.AddCommand(listItemsCmd)
	listCmd.AddCommand(listEpisodesCmd)
	listCmd.AddCommand(listDownloadsCmd)
	rootCmd.AddCommand(listCmd)
}
