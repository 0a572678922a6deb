package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-client/internal/logger"
	"github.com/MKhiriev/go-sync-client/models"
)

const (
	insertDownloadTracker = `
		INSERT INTO download_trackers (
			group_id,
			file_uuid,
			file_group_uuid,
			sharing_group_id,
			file_version,
			app_meta_data_version,
			mime_type,
			operation,
			status,
			app_meta_data,
			local_path,
			creation_date,
			update_date,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	selectDownloadTrackerByID = `
		SELECT
			id,
			group_id,
			file_uuid,
			file_group_uuid,
			sharing_group_id,
			file_version,
			app_meta_data_version,
			mime_type,
			operation,
			status,
			app_meta_data,
			local_path,
			creation_date,
			update_date,
			created_at
		FROM download_trackers
		WHERE id = ?;`

	updateDownloadTracker = `
		UPDATE download_trackers
		SET status = ?, local_path = ?, app_meta_data = ?
		WHERE id = ?;`

	deleteAllDownloadTrackers = `DELETE FROM download_trackers;`

	revertDownloadingTrackers = `UPDATE download_trackers SET status = 'notStarted' WHERE status = 'downloading';`
)

// CreateDownloadTracker implements [DownloadTrackerRepository].
func (s *syncState) CreateDownloadTracker(ctx context.Context, t *models.DownloadTracker) error {
	log := logger.FromContext(ctx)

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	res, err := s.q.ExecContext(ctx, insertDownloadTracker,
		t.GroupID,
		t.FileUUID,
		t.FileGroupUUID,
		t.SharingGroupID,
		t.FileVersion,
		nullAppMetaDataVersion(t.AppMetaDataVersion),
		string(t.MimeType),
		string(t.Operation),
		string(t.Status),
		nullString(t.AppMetaData),
		t.LocalPath,
		nullTime(t.CreationDate),
		nullTime(t.UpdateDate),
		t.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncState.CreateDownloadTracker").
			Str("file_uuid", t.FileUUID).
			Msg("failed to insert download tracker")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	t.ID = id

	return nil
}

// GetDownloadTracker implements [DownloadTrackerRepository].
func (s *syncState) GetDownloadTracker(ctx context.Context, id int64) (models.DownloadTracker, error) {
	log := logger.FromContext(ctx)

	t, err := scanDownloadTracker(s.q.QueryRowContext(ctx, selectDownloadTrackerByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DownloadTracker{}, fmt.Errorf("download tracker %d: %w", id, ErrNotFound)
	}
	if err != nil {
		log.Err(err).
			Str("func", "syncState.GetDownloadTracker").
			Int64("id", id).
			Msg("failed to scan download tracker row")
		return models.DownloadTracker{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return t, nil
}

// ListDownloadTrackers implements [DownloadTrackerRepository].
func (s *syncState) ListDownloadTrackers(ctx context.Context, statuses ...models.TrackerStatus) ([]models.DownloadTracker, error) {
	query, args, err := buildSelectDownloadTrackersQuery(statuses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryDownloadTrackers(ctx, "syncState.ListDownloadTrackers", query, args...)
}

// ListGroupTrackers implements [DownloadTrackerRepository].
func (s *syncState) ListGroupTrackers(ctx context.Context, groupID int64) ([]models.DownloadTracker, error) {
	query, args, err := buildSelectGroupTrackersQuery(groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryDownloadTrackers(ctx, "syncState.ListGroupTrackers", query, args...)
}

// UpdateDownloadTracker implements [DownloadTrackerRepository].
func (s *syncState) UpdateDownloadTracker(ctx context.Context, t models.DownloadTracker) error {
	log := logger.FromContext(ctx)

	res, err := s.q.ExecContext(ctx, updateDownloadTracker,
		string(t.Status),
		t.LocalPath,
		nullString(t.AppMetaData),
		t.ID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncState.UpdateDownloadTracker").
			Int64("id", t.ID).
			Str("status", string(t.Status)).
			Msg("failed to update download tracker")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, fmt.Sprintf("download tracker %d", t.ID))
}

// DeleteDownloadTrackers implements [DownloadTrackerRepository].
func (s *syncState) DeleteDownloadTrackers(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := buildDeleteByIDsQuery(tableDownloadTrackers, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.DeleteDownloadTrackers").
			Int("count", len(ids)).
			Msg("failed to delete download trackers")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteAllDownloadTrackers implements [DownloadTrackerRepository].
func (s *syncState) DeleteAllDownloadTrackers(ctx context.Context) error {
	if _, err := s.q.ExecContext(ctx, deleteAllDownloadTrackers); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.DeleteAllDownloadTrackers").
			Msg("failed to delete download trackers")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RevertDownloadingTrackers implements [DownloadTrackerRepository].
func (s *syncState) RevertDownloadingTrackers(ctx context.Context) (int64, error) {
	res, err := s.q.ExecContext(ctx, revertDownloadingTrackers)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.RevertDownloadingTrackers").
			Msg("failed to revert downloading trackers")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}

func (s *syncState) queryDownloadTrackers(ctx context.Context, funcName, query string, args ...any) ([]models.DownloadTracker, error) {
	log := logger.FromContext(ctx)

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query download trackers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var trackers []models.DownloadTracker
	for rows.Next() {
		t, scanErr := scanDownloadTracker(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan download tracker row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		trackers = append(trackers, t)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return trackers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDownloadTracker(row rowScanner) (models.DownloadTracker, error) {
	var (
		t                  models.DownloadTracker
		appMetaDataVersion sql.NullInt32
		appMetaData        sql.NullString
		mimeType           string
		operation          string
		status             string
		creationDate       sql.NullTime
		updateDate         sql.NullTime
	)

	err := row.Scan(
		&t.ID,
		&t.GroupID,
		&t.FileUUID,
		&t.FileGroupUUID,
		&t.SharingGroupID,
		&t.FileVersion,
		&appMetaDataVersion,
		&mimeType,
		&operation,
		&status,
		&appMetaData,
		&t.LocalPath,
		&creationDate,
		&updateDate,
		&t.CreatedAt,
	)
	if err != nil {
		return models.DownloadTracker{}, err
	}

	t.AppMetaDataVersion = appMetaDataVersionPtr(appMetaDataVersion)
	t.AppMetaData = stringPtr(appMetaData)
	t.MimeType = models.MimeType(mimeType)
	t.Operation = models.Operation(operation)
	t.Status = models.TrackerStatus(status)
	t.CreationDate = timePtr(creationDate)
	t.UpdateDate = timePtr(updateDate)

	return t, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
