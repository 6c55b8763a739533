// Package manager wires the pipeline together: discovery feeds the catalog,
// the resolver turns catalog entries into direct URLs, the external download
// manager fetches them, and completed transfers are placed into the library.
package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aldesouky/seedarr/config"
	"github.com/aldesouky/seedarr/pkg/cache"
	"github.com/aldesouky/seedarr/pkg/downloader"
	mio "github.com/aldesouky/seedarr/pkg/io"
	"github.com/aldesouky/seedarr/pkg/library"
	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/resolver"
	"github.com/aldesouky/seedarr/pkg/source"
	"github.com/aldesouky/seedarr/pkg/storage"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/model"
)

// LinkResolver resolves a content page into a direct media URL.
type LinkResolver interface {
	Resolve(ctx context.Context, req resolver.Request) (*resolver.Result, error)
}

type MediaManager struct {
	storage    storage.Storage
	discovery  source.Discovery
	resolver   LinkResolver
	downloader downloader.Client
	library    *library.Library
	fileIO     mio.FileIO
	config     config.Config

	// detectLocks serializes detection per tracked item so a manual check
	// and a scheduled check cannot race.
	detectLocks *cache.Cache[int64, *sync.Mutex]
	// targetLocks serializes submission per download target.
	targetLocks *cache.Cache[string, *sync.Mutex]
}

func New(store storage.Storage, discovery source.Discovery, res LinkResolver, client downloader.Client, lib *library.Library, fileIO mio.FileIO, cfg config.Config) MediaManager {
	return MediaManager{
		storage:     store,
		discovery:   discovery,
		resolver:    res,
		downloader:  client,
		library:     lib,
		fileIO:      fileIO,
		config:      cfg,
		detectLocks: cache.New[int64, *sync.Mutex](),
		targetLocks: cache.New[string, *sync.Mutex](),
	}
}

// SearchMedia queries the content source.
func (m MediaManager) SearchMedia(ctx context.Context, query string, kind source.Kind) ([]source.SearchResult, error) {
	log := logger.FromCtx(ctx)
	if query == "" {
		log.Debug("search query is empty")
		return nil, errors.New("query is empty")
	}

	return m.discovery.Search(ctx, query, kind)
}

// TrackRequest describes a catalog entry to start monitoring.
type TrackRequest struct {
	Title     string
	SourceURL string
	Kind      storage.MediaKind
	Language  storage.Language
	Quality   string
	// Seasons selects which seasons to fulfill; nil selects all.
	Seasons []int
	Year    *int32
}

// TrackItem adds an item to the catalog and runs the initial detection.
// Tracking an already tracked URL is a no-op returning the existing item.
func (m MediaManager) TrackItem(ctx context.Context, req TrackRequest) (int64, error) {
	log := logger.FromCtx(ctx)

	if req.SourceURL == "" {
		return 0, errors.New("source url is empty")
	}

	existing, err := m.storage.GetTrackedItemByURL(ctx, req.SourceURL)
	if err == nil {
		return m.updateTracked(ctx, existing, req)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return 0, err
	}

	quality := req.Quality
	if quality == "" {
		quality = m.quality()
	}

	item := model.TrackedItem{
		Title:     req.Title,
		Kind:      string(req.Kind),
		Language:  string(req.Language),
		SourceURL: req.SourceURL,
		Quality:   quality,
		Seasons:   storage.FormatSeasons(req.Seasons),
		Year:      req.Year,
		Monitored: true,
	}

	id, err := m.storage.CreateTrackedItem(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("failed to track item: %w", err)
	}

	log.Infow("tracking new item", "title", req.Title, "kind", req.Kind)

	if _, err := m.CheckItem(ctx, id); err != nil {
		log.Warnw("initial detection failed", "item_id", id, "error", err)
	}

	return id, nil
}

// updateTracked handles tracking a URL that is already in the catalog. A
// request carrying a season selection replaces the stored selection and
// re-runs detection so newly selected seasons are picked up; otherwise the
// call is an idempotent no-op.
func (m MediaManager) updateTracked(ctx context.Context, item *model.TrackedItem, req TrackRequest) (int64, error) {
	log := logger.FromCtx(ctx)
	id := int64(item.ID)

	if req.Seasons == nil {
		log.Debugw("already tracked", "source_url", req.SourceURL)
		return id, nil
	}

	seasons := storage.FormatSeasons(req.Seasons)
	if err := m.storage.UpdateTrackedItemSeasons(ctx, id, seasons); err != nil {
		return 0, fmt.Errorf("failed to update season selection: %w", err)
	}

	log.Infow("updated season selection", "item_id", id, "seasons", req.Seasons)

	if _, err := m.CheckItem(ctx, id); err != nil {
		log.Warnw("detection after season update failed", "item_id", id, "error", err)
	}

	return id, nil
}

func (m MediaManager) quality() string {
	if m.config.Source.Quality != "" {
		return m.config.Source.Quality
	}
	return resolver.DefaultQuality
}
