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
	selectPendingContentGroupByKey = `
		SELECT id, group_key, file_group_uuid, sharing_group_id, status, created_at
		FROM content_groups
		WHERE group_key = ? AND status <> 'completed'
		ORDER BY id
		LIMIT 1;`

	insertContentGroup = `
		INSERT INTO content_groups (group_key, file_group_uuid, sharing_group_id, status, created_at)
		VALUES (?, ?, ?, ?, ?);`

	selectContentGroupByID = `
		SELECT id, group_key, file_group_uuid, sharing_group_id, status, created_at
		FROM content_groups
		WHERE id = ?;`

	updateContentGroupStatus = `UPDATE content_groups SET status = ? WHERE id = ?;`

	deleteContentGroupTrackers = `DELETE FROM download_trackers WHERE group_id = ?;`
	deleteContentGroup         = `DELETE FROM content_groups WHERE id = ?;`
	deleteAllContentGroups     = `DELETE FROM content_groups;`
)

// FindOrCreateContentGroup implements [ContentGroupRepository].
func (s *syncState) FindOrCreateContentGroup(ctx context.Context, groupKey, fileGroupUUID string, sharingGroupID models.SharingGroupID) (models.ContentGroup, error) {
	log := logger.FromContext(ctx)

	g, err := scanContentGroup(s.q.QueryRowContext(ctx, selectPendingContentGroupByKey, groupKey))
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "syncState.FindOrCreateContentGroup").
			Str("group_key", groupKey).
			Msg("failed to look up content group")
		return models.ContentGroup{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	g = models.ContentGroup{
		GroupKey:       groupKey,
		FileGroupUUID:  fileGroupUUID,
		SharingGroupID: sharingGroupID,
		Status:         models.GroupStatusNotStarted,
		CreatedAt:      time.Now().UTC(),
	}

	res, err := s.q.ExecContext(ctx, insertContentGroup, g.GroupKey, g.FileGroupUUID, g.SharingGroupID, string(g.Status), g.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "syncState.FindOrCreateContentGroup").
			Str("group_key", groupKey).
			Msg("failed to insert content group")
		return models.ContentGroup{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if g.ID, err = res.LastInsertId(); err != nil {
		return models.ContentGroup{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return g, nil
}

// GetContentGroup implements [ContentGroupRepository].
func (s *syncState) GetContentGroup(ctx context.Context, id int64) (models.ContentGroup, error) {
	g, err := scanContentGroup(s.q.QueryRowContext(ctx, selectContentGroupByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ContentGroup{}, fmt.Errorf("content group %d: %w", id, ErrNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.GetContentGroup").
			Int64("id", id).
			Msg("failed to scan content group row")
		return models.ContentGroup{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	g.Trackers, err = s.ListGroupTrackers(ctx, id)
	if err != nil {
		return models.ContentGroup{}, err
	}

	return g, nil
}

// ListContentGroups implements [ContentGroupRepository].
func (s *syncState) ListContentGroups(ctx context.Context, statuses ...models.GroupStatus) ([]models.ContentGroup, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectContentGroupsQuery(statuses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "syncState.ListContentGroups").Msg("failed to query content groups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var groups []models.ContentGroup
	for rows.Next() {
		g, scanErr := scanContentGroup(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "syncState.ListContentGroups").Msg("failed to scan content group row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		groups = append(groups, g)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return groups, nil
}

// UpdateContentGroupStatus implements [ContentGroupRepository].
func (s *syncState) UpdateContentGroupStatus(ctx context.Context, id int64, status models.GroupStatus) error {
	res, err := s.q.ExecContext(ctx, updateContentGroupStatus, string(status), id)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.UpdateContentGroupStatus").
			Int64("id", id).
			Str("status", string(status)).
			Msg("failed to update content group")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, fmt.Sprintf("content group %d", id))
}

// DeleteContentGroup implements [ContentGroupRepository]. Trackers of the
// group are removed with it.
func (s *syncState) DeleteContentGroup(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.q.ExecContext(ctx, deleteContentGroupTrackers, id); err != nil {
		log.Err(err).Str("func", "syncState.DeleteContentGroup").Int64("id", id).Msg("failed to delete group trackers")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := s.q.ExecContext(ctx, deleteContentGroup, id); err != nil {
		log.Err(err).Str("func", "syncState.DeleteContentGroup").Int64("id", id).Msg("failed to delete content group")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteAllContentGroups implements [ContentGroupRepository]. Trackers must
// be removed first, see [syncState.DeleteAllDownloadTrackers].
func (s *syncState) DeleteAllContentGroups(ctx context.Context) error {
	if _, err := s.q.ExecContext(ctx, deleteAllContentGroups); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncState.DeleteAllContentGroups").
			Msg("failed to delete content groups")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanContentGroup(row rowScanner) (models.ContentGroup, error) {
	var (
		g      models.ContentGroup
		status string
	)

	if err := row.Scan(&g.ID, &g.GroupKey, &g.FileGroupUUID, &g.SharingGroupID, &status, &g.CreatedAt); err != nil {
		return models.ContentGroup{}, err
	}
	g.Status = models.GroupStatus(status)

	return g, nil
}
