package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/aldesouky/seedarr/pkg/storage"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/table"
)

// CreateDownload stores a download record and creates its initial state
func (s *SQLite) CreateDownload(ctx context.Context, download storage.Download, initialState storage.DownloadState) (int64, error) {
	err := download.Machine().ToState(initialState)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	stmt := table.DownloadRecord.
		INSERT(table.DownloadRecord.AllColumns.
			Except(table.DownloadRecord.ID, table.DownloadRecord.CreatedAt)).
		MODEL(download.DownloadRecord).
		RETURNING(table.DownloadRecord.ID)

	result, err := stmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	inserted, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	transition := model.DownloadTransition{
		DownloadID: int32(inserted),
		ToState:    string(initialState),
		MostRecent: true,
		SortKey:    1,
	}

	transitionStmt := table.DownloadTransition.
		INSERT(table.DownloadTransition.AllColumns.
			Except(table.DownloadTransition.ID, table.DownloadTransition.CreatedAt, table.DownloadTransition.UpdatedAt)).
		MODEL(transition)

	_, err = transitionStmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	return inserted, nil
}

// GetDownload retrieves a download by ID with its current state
func (s *SQLite) GetDownload(ctx context.Context, id int64) (*storage.Download, error) {
	stmt := table.DownloadRecord.
		SELECT(
			table.DownloadRecord.AllColumns,
			table.DownloadTransition.ToState,
		).
		FROM(
			table.DownloadRecord.INNER_JOIN(
				table.DownloadTransition,
				table.DownloadRecord.ID.EQ(table.DownloadTransition.DownloadID),
			),
		).
		WHERE(
			table.DownloadRecord.ID.EQ(sqlite.Int(id)).
				AND(table.DownloadTransition.MostRecent.EQ(sqlite.Bool(true))),
		)

	download := new(storage.Download)
	err := stmt.QueryContext(ctx, s.db, download)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get download: %w", err)
	}

	return download, nil
}

// ListDownloads lists downloads with their current state, matching the
// optional where expressions
func (s *SQLite) ListDownloads(ctx context.Context, where ...sqlite.BoolExpression) ([]*storage.Download, error) {
	condition := table.DownloadTransition.MostRecent.EQ(sqlite.Bool(true))
	for _, w := range where {
		condition = condition.AND(w)
	}

	stmt := table.DownloadRecord.
		SELECT(
			table.DownloadRecord.AllColumns,
			table.DownloadTransition.ToState,
		).
		FROM(
			table.DownloadRecord.INNER_JOIN(
				table.DownloadTransition,
				table.DownloadRecord.ID.EQ(table.DownloadTransition.DownloadID),
			),
		).
		WHERE(condition).
		ORDER_BY(table.DownloadRecord.CreatedAt.ASC())

	downloads := make([]*storage.Download, 0)
	err := stmt.QueryContext(ctx, s.db, &downloads)
	if err != nil {
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}

	return downloads, nil
}

// ListDownloadsByState lists downloads currently in the given state
func (s *SQLite) ListDownloadsByState(ctx context.Context, state storage.DownloadState) ([]*storage.Download, error) {
	return s.ListDownloads(ctx, table.DownloadTransition.ToState.EQ(sqlite.String(string(state))))
}

// GetActiveDownload finds the pending or in-progress download for a target.
// episodeID is nil for movie targets.
func (s *SQLite) GetActiveDownload(ctx context.Context, trackedItemID int64, episodeID *int64) (*storage.Download, error) {
	target := table.DownloadRecord.TrackedItemID.EQ(sqlite.Int32(int32(trackedItemID)))
	if episodeID != nil {
		target = target.AND(table.DownloadRecord.EpisodeID.EQ(sqlite.Int32(int32(*episodeID))))
	} else {
		target = target.AND(table.DownloadRecord.EpisodeID.IS_NULL())
	}

	stmt := table.DownloadRecord.
		SELECT(
			table.DownloadRecord.AllColumns,
			table.DownloadTransition.ToState,
		).
		FROM(
			table.DownloadRecord.INNER_JOIN(
				table.DownloadTransition,
				table.DownloadRecord.ID.EQ(table.DownloadTransition.DownloadID),
			),
		).
		WHERE(
			target.
				AND(table.DownloadTransition.MostRecent.EQ(sqlite.Bool(true))).
				AND(table.DownloadTransition.ToState.IN(
					sqlite.String(string(storage.DownloadStatePending)),
					sqlite.String(string(storage.DownloadStateInProgress)),
				)),
		)

	download := new(storage.Download)
	err := stmt.QueryContext(ctx, s.db, download)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active download: %w", err)
	}

	return download, nil
}

// UpdateDownloadState transitions a download to a new state, applying any
// record fields that change with it
func (s *SQLite) UpdateDownloadState(ctx context.Context, id int64, state storage.DownloadState, metadata *storage.TransitionMetadata) error {
	download, err := s.GetDownload(ctx, id)
	if err != nil {
		return err
	}

	err = download.Machine().ToState(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	previousStmt := table.DownloadTransition.
		UPDATE().
		SET(
			table.DownloadTransition.MostRecent.SET(sqlite.Bool(false)),
			table.DownloadTransition.UpdatedAt.SET(sqlite.TimestampExp(sqlite.String(time.Now().Format(timestampFormat)))),
		).
		WHERE(
			table.DownloadTransition.DownloadID.EQ(sqlite.Int32(int32(id))).
				AND(table.DownloadTransition.MostRecent.EQ(sqlite.Bool(true))),
		).
		RETURNING(table.DownloadTransition.AllColumns)

	var previousTransition model.DownloadTransition
	err = previousStmt.QueryContext(ctx, tx, &previousTransition)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update previous download transition: %w", err)
	}

	transition := model.DownloadTransition{
		DownloadID: int32(id),
		FromState:  &previousTransition.ToState,
		ToState:    string(state),
		MostRecent: true,
		SortKey:    previousTransition.SortKey + 1,
	}
	if metadata != nil {
		transition.Error = metadata.Error
	}

	insertStmt := table.DownloadTransition.
		INSERT(table.DownloadTransition.AllColumns.
			Except(table.DownloadTransition.ID, table.DownloadTransition.CreatedAt, table.DownloadTransition.UpdatedAt)).
		MODEL(transition)

	_, err = insertStmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert new download transition: %w", err)
	}

	columns := make([]interface{}, 0, 4)
	if metadata != nil && metadata.ExternalID != nil {
		columns = append(columns, table.DownloadRecord.ExternalID.SET(sqlite.String(*metadata.ExternalID)))
	}
	if metadata != nil && metadata.Error != nil {
		columns = append(columns, table.DownloadRecord.ErrorMessage.SET(sqlite.String(*metadata.Error)))
	}
	if state == storage.DownloadStateCompleted {
		columns = append(columns,
			table.DownloadRecord.Progress.SET(sqlite.Float(100)),
			table.DownloadRecord.CompletedAt.SET(sqlite.TimestampExp(sqlite.String(time.Now().UTC().Format(timestampFormat)))),
		)
		if metadata != nil && metadata.FinalPath != nil {
			columns = append(columns, table.DownloadRecord.FinalPath.SET(sqlite.String(*metadata.FinalPath)))
		}
	}

	if len(columns) > 0 {
		recordStmt := table.DownloadRecord.
			UPDATE().
			SET(columns[0], columns[1:]...).
			WHERE(table.DownloadRecord.ID.EQ(sqlite.Int64(id)))

		_, err = recordStmt.ExecContext(ctx, tx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to update download record: %w", err)
		}
	}

	return tx.Commit()
}

// UpdateDownloadProgress stores the manager reported progress percentage
func (s *SQLite) UpdateDownloadProgress(ctx context.Context, id int64, progress float64) error {
	stmt := table.DownloadRecord.
		UPDATE().
		SET(table.DownloadRecord.Progress.SET(sqlite.Float(progress))).
		WHERE(table.DownloadRecord.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update download progress: %w", err)
	}

	return nil
}

// DeleteDownload removes a download record by ID
func (s *SQLite) DeleteDownload(ctx context.Context, id int64) error {
	stmt := table.DownloadRecord.
		DELETE().
		WHERE(table.DownloadRecord.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete download: %w", err)
	}

	return nil
}
