package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-client/internal/config"
	"github.com/MKhiriev/go-sync-client/internal/logger"
)

// NewClientSyncStore initialises the client sync state store. It performs
// the following steps:
//  1. Opens an SQLite connection to the file named by cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Returns a [SyncStore] bound to the connection.
func NewClientSyncStore(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (SyncStore, error) {
	logger.Info().Msg("creating sync state store...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSyncStore(db, logger), nil
}
