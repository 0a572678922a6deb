package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/models"
)

const (
	insertUploadTracker = `
		INSERT INTO upload_trackers (
			file_uuid,
			file_group_uuid,
			sharing_group_id,
			file_version,
			app_meta_data_version,
			mime_type,
			operation,
			status,
			local_path,
			app_meta_data,
			undelete,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	updateUploadTrackerStatus = `UPDATE upload_trackers SET status = ? WHERE id = ?;`

	resetUploadTrackers = `UPDATE upload_trackers SET status = 'notStarted';`

	revertUploadingTrackers = `UPDATE upload_trackers SET status = 'notStarted' WHERE status = 'uploading';`
)

// CreateUploadTracker implements [UploadTrackerRepository].
func (s *syncState) CreateUploadTracker(ctx context.Context, t *models.UploadTracker) error {
	log := logger.FromContext(ctx)

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if t.Status == "" {
		t.Status = models.TrackerStatusNotStarted
	}

	res, err := s.q.ExecContext(ctx, insertUploadTracker,
		t.FileUUID,
		t.FileGroupUUID,
		t.SharingGroupID,
		t.FileVersion,
		nullAppMetaDataVersion(t.AppMetaDataVersion),
		string(t.MimeType),
		string(t.Operation),
		string(t.Status),
		t.LocalPath,
		nullString(t.AppMetaData),
		t.Undelete,
		t.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncState.CreateUploadTracker").
			Str("file_uuid", t.FileUUID).
			Str("operation", string(t.Operation)).
			Msg("failed to insert upload tracker")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if t.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListUploadTrackers implements [UploadTrackerRepository].
func (s *syncState) ListUploadTrackers(ctx context.Context, statuses ...models.TrackerStatus) ([]models.UploadTracker, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUploadTrackersQuery(statuses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "syncState.ListUploadTrackers").Msg("failed to query upload trackers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var trackers []models.UploadTracker
	for rows.Next() {
		var (
			t                  models.UploadTracker
			appMetaDataVersion sql.NullInt32
			appMetaData        sql.NullString
			mimeType           string
			operation          string
			status             string
		)

		scanErr := rows.Scan(
			&t.ID,
			&t.FileUUID,
			&t.FileGroupUUID,
			&t.SharingGroupID,
			&t.FileVersion,
			&appMetaDataVersion,
			&mimeType,
			&operation,
			&status,
			&t.LocalPath,
			&appMetaData,
			&t.Undelete,
			&t.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "syncState.ListUploadTrackers").Msg("failed to scan upload tracker row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}

		t.AppMetaDataVersion = appMetaDataVersionPtr(appMetaDataVersion)
		t.AppMetaData = stringPtr(appMetaData)
		t.MimeType = models.MimeType(mimeType)
		t.Operation = models.Operation(operation)
		t.Status = models.TrackerStatus(status)

		trackers = append(trackers, t)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return trackers, nil
}

// UpdateUploadTrackerStatus implements [UploadTrackerRepository].
func (s *syncState) UpdateUploadTrackerStatus(ctx context.Context, id int64, status models.TrackerStatus) error {
	res, err := s.q.ExecContext(ctx, updateUploadTrackerStatus, string(status), id)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.UpdateUploadTrackerStatus").
			Int64("id", id).
			Msg("failed to update upload tracker")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, fmt.Sprintf("upload tracker %d", id))
}

// ResetUploadTrackers implements [UploadTrackerRepository].
func (s *syncState) ResetUploadTrackers(ctx context.Context) error {
	if _, err := s.q.ExecContext(ctx, resetUploadTrackers); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.ResetUploadTrackers").
			Msg("failed to reset upload trackers")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RevertUploadingTrackers implements [UploadTrackerRepository].
func (s *syncState) RevertUploadingTrackers(ctx context.Context) (int64, error) {
	res, err := s.q.ExecContext(ctx, revertUploadingTrackers)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.RevertUploadingTrackers").
			Msg("failed to revert uploading trackers")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}

// DeleteUploadTrackers implements [UploadTrackerRepository].
func (s *syncState) DeleteUploadTrackers(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildDeleteByIDsQuery(tableUploadTrackers, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.DeleteUploadTrackers").
			Int("count", len(ids)).
			Msg("failed to delete upload trackers")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
