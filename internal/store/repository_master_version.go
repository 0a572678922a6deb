package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/models"
)

const (
	selectMasterVersion = `SELECT master_version FROM master_versions WHERE sharing_group_id = ?;`

	upsertMasterVersion = `
		INSERT INTO master_versions (sharing_group_id, master_version) VALUES (?, ?)
		ON CONFLICT (sharing_group_id) DO UPDATE SET master_version = excluded.master_version;`
)

// GetMasterVersion implements [MasterVersionRepository].
func (s *syncState) GetMasterVersion(ctx context.Context, sharingGroupID models.SharingGroupID) (models.MasterVersion, error) {
	var mv models.MasterVersion

	err := s.q.QueryRowContext(ctx, selectMasterVersion, sharingGroupID).Scan(&mv)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("master version of sharing group %d: %w", sharingGroupID, ErrNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.GetMasterVersion").
			Int64("sharing_group_id", int64(sharingGroupID)).
			Msg("failed to read master version")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return mv, nil
}

// SetMasterVersion implements [MasterVersionRepository].
func (s *syncState) SetMasterVersion(ctx context.Context, sharingGroupID models.SharingGroupID, version models.MasterVersion) error {
	if _, err := s.q.ExecContext(ctx, upsertMasterVersion, sharingGroupID, version); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.SetMasterVersion").
			Int64("sharing_group_id", int64(sharingGroupID)).
			Int64("master_version", int64(version)).
			Msg("failed to store master version")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
