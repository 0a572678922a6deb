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
	selectDirectoryEntry = `
		SELECT
			file_uuid,
			file_group_uuid,
			sharing_group_id,
			mime_type,
			file_version,
			app_meta_data_version,
			deleted_locally,
			deleted_on_server,
			local_path
		FROM directory_entries
		WHERE file_uuid = ?;`

	selectDirectoryEntries = `
		SELECT
			file_uuid,
			file_group_uuid,
			sharing_group_id,
			mime_type,
			file_version,
			app_meta_data_version,
			deleted_locally,
			deleted_on_server,
			local_path
		FROM directory_entries
		WHERE sharing_group_id = ?
		ORDER BY file_uuid;`
)

// GetDirectoryEntry implements [DirectoryRepository].
func (s *syncState) GetDirectoryEntry(ctx context.Context, fileUUID string) (models.DirectoryEntry, error) {
	e, err := scanDirectoryEntry(s.q.QueryRowContext(ctx, selectDirectoryEntry, fileUUID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DirectoryEntry{}, fmt.Errorf("directory entry %s: %w", fileUUID, ErrNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.GetDirectoryEntry").
			Str("file_uuid", fileUUID).
			Msg("failed to scan directory entry")
		return models.DirectoryEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return e, nil
}

// ListDirectoryEntries implements [DirectoryRepository].
func (s *syncState) ListDirectoryEntries(ctx context.Context, sharingGroupID models.SharingGroupID) ([]models.DirectoryEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := s.q.QueryContext(ctx, selectDirectoryEntries, sharingGroupID)
	if err != nil {
		log.Err(err).
			Str("func", "syncState.ListDirectoryEntries").
			Int64("sharing_group_id", int64(sharingGroupID)).
			Msg("failed to query directory entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.DirectoryEntry
	for rows.Next() {
		e, scanErr := scanDirectoryEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "syncState.ListDirectoryEntries").Msg("failed to scan directory entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, e)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// UpsertDirectoryEntry implements [DirectoryRepository].
func (s *syncState) UpsertDirectoryEntry(ctx context.Context, entry models.DirectoryEntry) error {
	query, args, err := buildUpsertDirectoryEntryQuery(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.UpsertDirectoryEntry").
			Str("file_uuid", entry.FileUUID).
			Msg("failed to upsert directory entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanDirectoryEntry(row rowScanner) (models.DirectoryEntry, error) {
	var (
		e                  models.DirectoryEntry
		mimeType           string
		fileVersion        sql.NullInt32
		appMetaDataVersion sql.NullInt32
	)

	err := row.Scan(
		&e.FileUUID,
		&e.FileGroupUUID,
		&e.SharingGroupID,
		&mimeType,
		&fileVersion,
		&appMetaDataVersion,
		&e.DeletedLocally,
		&e.DeletedOnServer,
		&e.LocalPath,
	)
	if err != nil {
		return models.DirectoryEntry{}, err
	}

	e.MimeType = models.MimeType(mimeType)
	e.FileVersion = fileVersionPtr(fileVersion)
	e.AppMetaDataVersion = appMetaDataVersionPtr(appMetaDataVersion)

	return e, nil
}
