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

// CreateTrackedItem stores a new tracked item
func (s *SQLite) CreateTrackedItem(ctx context.Context, item model.TrackedItem) (int64, error) {
	stmt := table.TrackedItem.
		INSERT(table.TrackedItem.AllColumns.Except(table.TrackedItem.ID, table.TrackedItem.CreatedAt)).
		MODEL(item)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create tracked item: %w", err)
	}

	return result.LastInsertId()
}

// GetTrackedItem retrieves a tracked item by ID
func (s *SQLite) GetTrackedItem(ctx context.Context, id int64) (*model.TrackedItem, error) {
	stmt := table.TrackedItem.
		SELECT(table.TrackedItem.AllColumns).
		FROM(table.TrackedItem).
		WHERE(table.TrackedItem.ID.EQ(sqlite.Int64(id)))

	item := new(model.TrackedItem)
	err := stmt.QueryContext(ctx, s.db, item)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tracked item: %w", err)
	}

	return item, nil
}

// GetTrackedItemByURL retrieves a tracked item by its source URL
func (s *SQLite) GetTrackedItemByURL(ctx context.Context, sourceURL string) (*model.TrackedItem, error) {
	stmt := table.TrackedItem.
		SELECT(table.TrackedItem.AllColumns).
		FROM(table.TrackedItem).
		WHERE(table.TrackedItem.SourceURL.EQ(sqlite.String(sourceURL)))

	item := new(model.TrackedItem)
	err := stmt.QueryContext(ctx, s.db, item)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tracked item by url: %w", err)
	}

	return item, nil
}

// ListTrackedItems lists tracked items matching the optional where expressions
func (s *SQLite) ListTrackedItems(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.TrackedItem, error) {
	stmt := table.TrackedItem.
		SELECT(table.TrackedItem.AllColumns).
		FROM(table.TrackedItem).
		ORDER_BY(table.TrackedItem.CreatedAt.ASC())

	// WHERE replaces the clause, so the expressions are folded into one
	if len(where) > 0 {
		condition := where[0]
		for _, w := range where[1:] {
			condition = condition.AND(w)
		}
		stmt = stmt.WHERE(condition)
	}

	items := make([]*model.TrackedItem, 0)
	err := stmt.QueryContext(ctx, s.db, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked items: %w", err)
	}

	return items, nil
}

// UpdateTrackedItemSeasons replaces the season selection of a tracked item
func (s *SQLite) UpdateTrackedItemSeasons(ctx context.Context, id int64, seasons *string) error {
	value := sqlite.StringExp(sqlite.NULL)
	if seasons != nil {
		value = sqlite.String(*seasons)
	}

	stmt := table.TrackedItem.
		UPDATE().
		SET(table.TrackedItem.Seasons.SET(value)).
		WHERE(table.TrackedItem.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update tracked item seasons: %w", err)
	}

	return nil
}

// UpdateTrackedItemChecked records when the item was last diffed against the source
func (s *SQLite) UpdateTrackedItemChecked(ctx context.Context, id int64, at time.Time) error {
	stmt := table.TrackedItem.
		UPDATE().
		SET(table.TrackedItem.LastCheckedAt.SET(sqlite.TimestampExp(sqlite.String(at.UTC().Format(timestampFormat))))).
		WHERE(table.TrackedItem.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update tracked item checked time: %w", err)
	}

	return nil
}

// DeleteTrackedItem removes a tracked item; episodes and downloads cascade
func (s *SQLite) DeleteTrackedItem(ctx context.Context, id int64) error {
	stmt := table.TrackedItem.
		DELETE().
		WHERE(table.TrackedItem.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete tracked item: %w", err)
	}

	return nil
}
