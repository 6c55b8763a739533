package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/aldesouky/seedarr/pkg/downloader"
	"github.com/aldesouky/seedarr/pkg/library"
	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/resolver"
	"github.com/aldesouky/seedarr/pkg/storage"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/table"
)

// FulfillEpisode resolves a catalog entry and submits it to the download
// manager. A target that already has an active download, or is already
// downloaded, is an idempotent no-op. Resolution and submission failures
// are recorded as failed download records, never silently dropped.
func (m MediaManager) FulfillEpisode(ctx context.Context, item *model.TrackedItem, episode *model.Episode) (int64, error) {
	key := fmt.Sprintf("%d/%d", item.ID, episode.ID)
	lock := m.targetLocks.GetOrSet(key, func() *sync.Mutex { return &sync.Mutex{} })
	lock.Lock()
	defer lock.Unlock()

	log := logger.FromCtx(ctx)

	if episode.Downloaded {
		log.Debugw("target already downloaded", "episode_id", episode.ID)
		return 0, nil
	}

	episodeID := int64(episode.ID)
	active, err := m.storage.GetActiveDownload(ctx, int64(item.ID), &episodeID)
	if err == nil {
		log.Debugw("target already has an active download", "download_id", active.ID)
		return int64(active.ID), nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return 0, err
	}

	res, err := m.resolver.Resolve(ctx, resolver.Request{
		SourceURL: episode.SourceURL,
		Quality:   item.Quality,
	})
	if err != nil {
		recordErr := m.recordFailure(ctx, item, episode, episode.SourceURL, err)
		if recordErr != nil {
			log.Errorw("failed to record resolution failure", "error", recordErr)
		}
		return 0, fmt.Errorf("resolution failed for %s: %w", episode.SourceURL, err)
	}

	status, err := m.downloader.Add(ctx, downloader.AddRequest{
		URL:         res.URL,
		Destination: m.config.Downloader.DestinationDir,
		PackageName: packageName(item, episode),
		Headers:     res.Headers,
	})
	if err != nil {
		recordErr := m.recordFailure(ctx, item, episode, res.URL, err)
		if recordErr != nil {
			log.Errorw("failed to record submission failure", "error", recordErr)
		}
		return 0, fmt.Errorf("submission failed for %s: %w", res.URL, err)
	}

	download := storage.Download{
		DownloadRecord: model.DownloadRecord{
			TrackedItemID:   item.ID,
			EpisodeID:       &episode.ID,
			DownloadURL:     res.URL,
			ExternalID:      &status.ID,
			DestinationPath: m.config.Downloader.DestinationDir,
			Attempts:        int32(res.Attempts),
		},
	}

	id, err := m.storage.CreateDownload(ctx, download, storage.DownloadStatePending)
	if err != nil {
		return 0, fmt.Errorf("failed to create download record: %w", err)
	}

	log.Infow("submitted download", "download_id", id, "external_id", status.ID, "url", res.URL)
	return id, nil
}

// recordFailure persists a failed download record for a fulfillment that
// never reached the manager, so the attempt shows up in listings and can be
// retried. Resolution failures carry how many attempts they consumed.
func (m MediaManager) recordFailure(ctx context.Context, item *model.TrackedItem, episode *model.Episode, url string, cause error) error {
	attempts := int32(1)
	var resErr *resolver.Error
	if errors.As(cause, &resErr) && resErr.Attempts > 0 {
		attempts = int32(resErr.Attempts)
	}

	download := storage.Download{
		DownloadRecord: model.DownloadRecord{
			TrackedItemID:   item.ID,
			EpisodeID:       &episode.ID,
			DownloadURL:     url,
			DestinationPath: m.config.Downloader.DestinationDir,
			Attempts:        attempts,
		},
	}

	id, err := m.storage.CreateDownload(ctx, download, storage.DownloadStatePending)
	if err != nil {
		return err
	}

	msg := cause.Error()
	return m.storage.UpdateDownloadState(ctx, id, storage.DownloadStateFailed, &storage.TransitionMetadata{Error: &msg})
}

// RetryDownload re-enters the submission path for a failed download. The
// previously resolved URL may have expired, so a fresh resolution is
// performed and a fresh record created; the failed record stays as history.
func (m MediaManager) RetryDownload(ctx context.Context, downloadID int64) (int64, error) {
	download, err := m.storage.GetDownload(ctx, downloadID)
	if err != nil {
		return 0, err
	}

	if download.State != storage.DownloadStateFailed {
		return 0, fmt.Errorf("download %d is %s, only failed downloads can be retried", downloadID, download.State)
	}
	if download.EpisodeID == nil {
		return 0, fmt.Errorf("download %d has no fulfillment target", downloadID)
	}

	item, err := m.storage.GetTrackedItem(ctx, int64(download.TrackedItemID))
	if err != nil {
		return 0, err
	}

	episode, err := m.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int32(*download.EpisodeID)))
	if err != nil {
		return 0, err
	}

	return m.FulfillEpisode(ctx, item, episode)
}

// PlaceDownload re-runs placement for a completed transfer whose file never
// made it into the library. Completion already happened, so the record is
// left untouched; only the catalog entry gains its placed file.
func (m MediaManager) PlaceDownload(ctx context.Context, downloadID int64) (string, error) {
	download, err := m.storage.GetDownload(ctx, downloadID)
	if err != nil {
		return "", err
	}

	if download.State != storage.DownloadStateCompleted {
		return "", fmt.Errorf("download %d is %s, only completed downloads can be placed", downloadID, download.State)
	}
	if download.FinalPath != nil {
		return "", fmt.Errorf("download %d is already placed at %s", downloadID, *download.FinalPath)
	}
	if download.EpisodeID == nil {
		return "", fmt.Errorf("download %d has no fulfillment target", downloadID)
	}
	if download.ExternalID == nil {
		return "", fmt.Errorf("download %d was never submitted", downloadID)
	}

	episode, err := m.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int32(*download.EpisodeID)))
	if err != nil {
		return "", err
	}
	if episode.Downloaded {
		return "", fmt.Errorf("episode %d already has a placed file", episode.ID)
	}

	item, err := m.storage.GetTrackedItem(ctx, int64(download.TrackedItemID))
	if err != nil {
		return "", err
	}

	status, err := m.downloader.Get(ctx, downloader.GetRequest{ID: *download.ExternalID})
	if err != nil {
		return "", fmt.Errorf("download manager unreachable: %w", err)
	}

	file, size, err := m.verifyOutput(status)
	if err != nil {
		return "", err
	}

	finalPath, err := m.place(ctx, file, item, episode)
	if err != nil {
		return "", fmt.Errorf("placement failed: %w", err)
	}

	if err := m.storage.MarkEpisodeDownloaded(ctx, int64(episode.ID), finalPath, size); err != nil {
		return "", err
	}

	logger.FromCtx(ctx).Infow("manually placed download", "download_id", downloadID, "path", finalPath)
	return finalPath, nil
}

// packageName labels the transfer at the download manager so reconciliation
// and a human can recognize it.
func packageName(item *model.TrackedItem, episode *model.Episode) string {
	title := library.SanitizeTitle(item.Title)
	if item.Kind == string(storage.MediaKindMovie) {
		return title
	}
	return fmt.Sprintf("%s - S%02dE%02d", title, episode.Season, episode.EpisodeNumber)
}
