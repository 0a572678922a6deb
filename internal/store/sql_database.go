package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/migrations"
)

// querier is the part of *sql.DB and *sql.Tx the repositories need.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// syncState implements [SyncState] on top of a connection pool or a
// single transaction.
type syncState struct {
	q      querier
	logger *logger.Logger
}

// syncStore is the SQLite-backed [SyncStore].
type syncStore struct {
	*syncState
	db *DB
}

// NewSyncStore wraps an opened and migrated database.
func NewSyncStore(db *DB, logger *logger.Logger) SyncStore {
	return &syncStore{
		syncState: &syncState{q: db.DB, logger: logger},
		db:        db,
	}
}

// PerformAndSave implements [SyncStore].
func (s *syncStore) PerformAndSave(ctx context.Context, fn func(ctx context.Context, state SyncState) error) error {
	log := logger.FromContext(ctx)

	if fn == nil {
		return ErrNilUnitOfWork
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "syncStore.PerformAndSave").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(ctx, &syncState{q: tx, logger: s.logger}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "syncStore.PerformAndSave").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Close implements [SyncStore].
func (s *syncStore) Close() error {
	return s.db.Close()
}
