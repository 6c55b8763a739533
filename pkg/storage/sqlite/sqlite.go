package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"github.com/go-jet/jet/v2/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/storage"
)

const timestampFormat = "2006-01-02 15:04:05"

type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new sqlite database given a path to the database file
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// A single connection keeps in-memory databases coherent and avoids
	// SQLITE_BUSY under concurrent writers.
	db.SetMaxOpenConns(1)

	return &SQLite{
		db: db,
	}, nil
}

// Init applies pending schema migrations
func (s *SQLite) Init(ctx context.Context) error {
	return runMigrations(s.db)
}

func (s *SQLite) handleInsert(ctx context.Context, stmt sqlite.InsertStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleDelete(ctx context.Context, stmt sqlite.DeleteStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleUpdate(ctx context.Context, stmt sqlite.UpdateStatement) (sql.Result, error) {
	return s.handleStatement(ctx, stmt)
}

func (s *SQLite) handleStatement(ctx context.Context, stmt sqlite.Statement) (sql.Result, error) {
	log := logger.FromCtx(ctx)
	var result sql.Result

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Debug("failed to init transaction", zap.Error(err))
		return result, err
	}

	result, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		log.Debug("failed to execute statement", zap.String("query", stmt.DebugSql()), zap.Error(err))
		tx.Rollback()
		return result, err
	}

	return result, tx.Commit()
}
