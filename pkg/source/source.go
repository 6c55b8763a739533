// Package source defines the discovery contract against the content source:
// searching the catalog and enumerating a series' seasons and episodes.
package source

import (
	"context"
)

//go:generate mockgen -source=source.go -destination=mocks/mock.go -package=mocks

// Kind distinguishes the two content kinds the source serves.
type Kind string

const (
	KindSeries Kind = "series"
	KindMovie  Kind = "movie"
)

// SearchResult is a single entry on the source's search page.
type SearchResult struct {
	Title     string
	URL       string
	Kind      Kind
	Badge     string
	PosterURL string
}

// EpisodeRef locates one episode of a series on the source.
type EpisodeRef struct {
	Season  int
	Episode int
	Title   string
	URL     string
}

// Discovery finds content on the source. Implementations drive a rendering
// session since the source serves no machine-readable API.
type Discovery interface {
	// Search queries the source catalog. An empty kind searches both kinds.
	Search(ctx context.Context, query string, kind Kind) ([]SearchResult, error)

	// ListSeasons reports the season numbers available for a series page,
	// sorted ascending.
	ListSeasons(ctx context.Context, seriesURL string) ([]int, error)

	// ListEpisodes enumerates every episode of a series across all of its
	// seasons.
	ListEpisodes(ctx context.Context, seriesURL string) ([]EpisodeRef, error)
}
