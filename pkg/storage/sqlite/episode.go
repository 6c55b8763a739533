package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/aldesouky/seedarr/pkg/storage"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/table"
)

// CreateEpisode stores a newly detected episode
func (s *SQLite) CreateEpisode(ctx context.Context, episode model.Episode) (int64, error) {
	stmt := table.Episode.
		INSERT(table.Episode.AllColumns.Except(table.Episode.ID, table.Episode.CreatedAt)).
		MODEL(episode)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create episode: %w", err)
	}

	return result.LastInsertId()
}

// GetEpisode retrieves a single episode matching the where expression
func (s *SQLite) GetEpisode(ctx context.Context, where sqlite.BoolExpression) (*model.Episode, error) {
	stmt := table.Episode.
		SELECT(table.Episode.AllColumns).
		FROM(table.Episode).
		WHERE(where)

	episode := new(model.Episode)
	err := stmt.QueryContext(ctx, s.db, episode)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get episode: %w", err)
	}

	return episode, nil
}

// ListEpisodes lists episodes matching the optional where expressions
func (s *SQLite) ListEpisodes(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Episode, error) {
	stmt := table.Episode.
		SELECT(table.Episode.AllColumns).
		FROM(table.Episode).
		ORDER_BY(table.Episode.Season.ASC(), table.Episode.EpisodeNumber.ASC())

	// WHERE replaces the clause, so the expressions are folded into one
	if len(where) > 0 {
		condition := where[0]
		for _, w := range where[1:] {
			condition = condition.AND(w)
		}
		stmt = stmt.WHERE(condition)
	}

	episodes := make([]*model.Episode, 0)
	err := stmt.QueryContext(ctx, s.db, &episodes)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}

	return episodes, nil
}

// MarkEpisodeDownloaded records the placed file for an episode
func (s *SQLite) MarkEpisodeDownloaded(ctx context.Context, id int64, filePath string, fileSize int64) error {
	stmt := table.Episode.
		UPDATE().
		SET(
			table.Episode.Downloaded.SET(sqlite.Bool(true)),
			table.Episode.FilePath.SET(sqlite.String(filePath)),
			table.Episode.FileSize.SET(sqlite.Int64(fileSize)),
		).
		WHERE(table.Episode.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to mark episode downloaded: %w", err)
	}

	return nil
}

// DeleteEpisode removes an episode by ID
func (s *SQLite) DeleteEpisode(ctx context.Context, id int64) error {
	stmt := table.Episode.
		DELETE().
		WHERE(table.Episode.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete episode: %w", err)
	}

	return nil
}
