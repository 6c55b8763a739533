package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/storage"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/table"
)

// CheckAllItems runs detection for every monitored item and queues
// fulfillment for anything new. Per-item failures are logged and do not
// stop the pass.
func (m MediaManager) CheckAllItems(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	items, err := m.storage.ListTrackedItems(ctx, table.TrackedItem.Monitored.EQ(sqlite.Bool(true)))
	if err != nil {
		return fmt.Errorf("failed to list monitored items: %w", err)
	}

	for _, item := range items {
		created, err := m.CheckItem(ctx, int64(item.ID))
		if err != nil {
			log.Warnw("detection failed", "item_id", item.ID, "title", item.Title, "error", err)
			continue
		}

		for i := range created {
			if _, err := m.FulfillEpisode(ctx, item, &created[i]); err != nil {
				log.Warnw("fulfillment failed", "item_id", item.ID, "episode_id", created[i].ID, "error", err)
			}
		}
	}

	return nil
}

// CheckItem computes the episodes present on the source but absent from the
// catalog, creates them, and returns them. Detection for one item is
// serialized, so a manual check overlapping a scheduled one cannot create
// duplicates.
func (m MediaManager) CheckItem(ctx context.Context, itemID int64) ([]model.Episode, error) {
	lock := m.detectLocks.GetOrSet(itemID, func() *sync.Mutex { return &sync.Mutex{} })
	lock.Lock()
	defer lock.Unlock()

	log := logger.FromCtx(ctx)

	item, err := m.storage.GetTrackedItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var created []model.Episode
	if item.Kind == string(storage.MediaKindMovie) {
		created, err = m.ensureMovieEntry(ctx, item)
	} else {
		created, err = m.detectEpisodes(ctx, item)
	}
	if err != nil {
		return nil, err
	}

	if err := m.storage.UpdateTrackedItemChecked(ctx, itemID, time.Now()); err != nil {
		log.Warnw("failed to record check time", "item_id", itemID, "error", err)
	}

	return created, nil
}

// ensureMovieEntry is the movie degenerate case of detection: a single
// fulfillment entry keyed by the item's own source URL, created once.
func (m MediaManager) ensureMovieEntry(ctx context.Context, item *model.TrackedItem) ([]model.Episode, error) {
	_, err := m.storage.GetEpisode(ctx,
		table.Episode.TrackedItemID.EQ(sqlite.Int32(item.ID)).
			AND(table.Episode.SourceURL.EQ(sqlite.String(item.SourceURL))))
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	entry := model.Episode{
		TrackedItemID: item.ID,
		Season:        0,
		EpisodeNumber: 0,
		SourceURL:     item.SourceURL,
	}

	id, err := m.storage.CreateEpisode(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create movie entry: %w", err)
	}

	entry.ID = int32(id)
	return []model.Episode{entry}, nil
}

// detectEpisodes diffs the source's episode list against the catalog by
// source URL and creates what is missing, filtered by the item's season
// selection.
func (m MediaManager) detectEpisodes(ctx context.Context, item *model.TrackedItem) ([]model.Episode, error) {
	log := logger.FromCtx(ctx)

	refs, err := m.discovery.ListEpisodes(ctx, item.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes from source: %w", err)
	}

	known, err := m.storage.ListEpisodes(ctx, table.Episode.TrackedItemID.EQ(sqlite.Int32(item.ID)))
	if err != nil {
		return nil, err
	}

	knownURLs := make(map[string]struct{}, len(known))
	for _, e := range known {
		knownURLs[e.SourceURL] = struct{}{}
	}

	var created []model.Episode
	for _, ref := range refs {
		if !storage.WantsSeason(item.Seasons, ref.Season) {
			continue
		}
		if _, ok := knownURLs[ref.URL]; ok {
			continue
		}

		title := ref.Title
		episode := model.Episode{
			TrackedItemID: item.ID,
			Season:        int32(ref.Season),
			EpisodeNumber: int32(ref.Episode),
			Title:         &title,
			SourceURL:     ref.URL,
		}

		id, err := m.storage.CreateEpisode(ctx, episode)
		if err != nil {
			log.Warnw("failed to create episode", "source_url", ref.URL, "error", err)
			continue
		}

		episode.ID = int32(id)
		created = append(created, episode)
	}

	if len(created) > 0 {
		log.Infow("detected new episodes", "item_id", item.ID, "title", item.Title, "count", len(created))
	}

	return created, nil
}
