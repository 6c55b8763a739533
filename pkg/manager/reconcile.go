package manager

import (
	"context"
	"fmt"
	"os"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/aldesouky/seedarr/pkg/downloader"
	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/storage"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/table"
)

// Reconcile updates every non-terminal download record from one batched
// status query against the external manager. An unreachable manager aborts
// the pass without touching any record; the next tick retries.
func (m MediaManager) Reconcile(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	active, err := m.activeDownloads(ctx)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		return nil
	}

	statuses, err := m.downloader.List(ctx)
	if err != nil {
		return fmt.Errorf("download manager unreachable: %w", err)
	}

	byID := make(map[string]downloader.Status, len(statuses))
	for _, s := range statuses {
		byID[s.ID] = s
	}

	for _, d := range active {
		if d.ExternalID == nil {
			continue
		}

		status, ok := byID[*d.ExternalID]
		if !ok {
			log.Debugw("external id not reported yet", "download_id", d.ID, "external_id", *d.ExternalID)
			continue
		}

		if err := m.reconcileOne(ctx, d, status); err != nil {
			log.Warnw("reconciliation failed", "download_id", d.ID, "error", err)
		}
	}

	return nil
}

func (m MediaManager) activeDownloads(ctx context.Context) ([]*storage.Download, error) {
	pending, err := m.storage.ListDownloadsByState(ctx, storage.DownloadStatePending)
	if err != nil {
		return nil, err
	}

	inProgress, err := m.storage.ListDownloadsByState(ctx, storage.DownloadStateInProgress)
	if err != nil {
		return nil, err
	}

	return append(pending, inProgress...), nil
}

func (m MediaManager) reconcileOne(ctx context.Context, d *storage.Download, status downloader.Status) error {
	switch status.State {
	case downloader.StateDownloading:
		if d.State == storage.DownloadStatePending {
			if err := m.storage.UpdateDownloadState(ctx, int64(d.ID), storage.DownloadStateInProgress, nil); err != nil {
				return err
			}
		}
		return m.storage.UpdateDownloadProgress(ctx, int64(d.ID), status.Progress)

	case downloader.StateFailed:
		msg := fmt.Sprintf("download manager reported failure for package %s", status.Name)
		return m.storage.UpdateDownloadState(ctx, int64(d.ID), storage.DownloadStateFailed, &storage.TransitionMetadata{Error: &msg})

	case downloader.StateFinished:
		return m.completeDownload(ctx, d, status)

	default:
		return nil
	}
}

// completeDownload verifies the transfer output and places it into the
// library. Transfer success and placement success are independent facts: a
// placement failure still marks the record completed, but the catalog entry
// stays un-downloaded for manual remediation.
func (m MediaManager) completeDownload(ctx context.Context, d *storage.Download, status downloader.Status) error {
	log := logger.FromCtx(ctx)

	file, size, err := m.verifyOutput(status)
	if err != nil {
		return err
	}

	item, err := m.storage.GetTrackedItem(ctx, int64(d.TrackedItemID))
	if err != nil {
		return err
	}

	if d.EpisodeID == nil {
		return fmt.Errorf("download %d has no fulfillment target", d.ID)
	}
	episode, err := m.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int32(*d.EpisodeID)))
	if err != nil {
		return err
	}

	// the manager can finish before a pass ever saw it downloading
	if d.State == storage.DownloadStatePending {
		if err := m.storage.UpdateDownloadState(ctx, int64(d.ID), storage.DownloadStateInProgress, nil); err != nil {
			return err
		}
	}

	finalPath, placeErr := m.place(ctx, file, item, episode)
	if placeErr != nil {
		msg := fmt.Sprintf("placement failed: %v", placeErr)
		if err := m.storage.UpdateDownloadState(ctx, int64(d.ID), storage.DownloadStateCompleted, &storage.TransitionMetadata{Error: &msg}); err != nil {
			return err
		}
		return fmt.Errorf("transfer completed but placement failed: %w", placeErr)
	}

	if err := m.storage.UpdateDownloadState(ctx, int64(d.ID), storage.DownloadStateCompleted, &storage.TransitionMetadata{FinalPath: &finalPath}); err != nil {
		return err
	}

	if err := m.storage.MarkEpisodeDownloaded(ctx, int64(episode.ID), finalPath, size); err != nil {
		return err
	}

	log.Infow("download completed and placed", "download_id", d.ID, "path", finalPath)
	return nil
}

// verifyOutput picks the largest of the files the manager claims to have
// written and checks it exists and is non-empty.
func (m MediaManager) verifyOutput(status downloader.Status) (string, int64, error) {
	var (
		best     string
		bestSize int64
	)

	for _, path := range status.FilePaths {
		info, err := m.fileIO.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", 0, err
		}
		if info.Size() > bestSize {
			best = path
			bestSize = info.Size()
		}
	}

	if best == "" {
		return "", 0, fmt.Errorf("no non-empty output file found for package %s", status.Name)
	}

	return best, bestSize, nil
}

func (m MediaManager) place(ctx context.Context, file string, item *model.TrackedItem, episode *model.Episode) (string, error) {
	language := storage.Language(item.Language)

	if item.Kind == string(storage.MediaKindMovie) {
		return m.library.PlaceMovie(ctx, file, language, item.Title, item.Year)
	}

	return m.library.PlaceEpisode(ctx, file, language, item.Title, int(episode.Season), int(episode.EpisodeNumber))
}
