package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/source"
)

var searchKind string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "search the content source",
	Long:  `search the content source catalog`,
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

		results, err := m.SearchMedia(ctx, args[0], source.Kind(searchKind))
		if err != nil {
			log.Fatalw("search failed", "error", err)
		}

		for _, r := range results {
			fmt.Printf("%-8s %-40s %s\n", r.Kind, r.Title, r.URL)
		}
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchKind, "kind", "k", "", "restrict to a content kind (series|movie)")
	rootCmd.AddCommand(searchCmd)
}
