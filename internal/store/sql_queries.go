package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-client/models"
)

// sqlb builds queries with "?" placeholders as SQLite expects.
var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

const (
	tableDownloadTrackers = "download_trackers"
	tableContentGroups    = "content_groups"
	tableMasterVersions   = "master_versions"
	tableUploadTrackers   = "upload_trackers"
	tableDirectoryEntries = "directory_entries"
	tableSettings         = "settings"
)

var downloadTrackerColumns = []string{
	"id",
	"group_id",
	"file_uuid",
	"file_group_uuid",
	"sharing_group_id",
	"file_version",
	"app_meta_data_version",
	"mime_type",
	"operation",
	"status",
	"app_meta_data",
	"local_path",
	"creation_date",
	"update_date",
	"created_at",
}

var contentGroupColumns = []string{
	"id",
	"group_key",
	"file_group_uuid",
	"sharing_group_id",
	"status",
	"created_at",
}

var uploadTrackerColumns = []string{
	"id",
	"file_uuid",
	"file_group_uuid",
	"sharing_group_id",
	"file_version",
	"app_meta_data_version",
	"mime_type",
	"operation",
	"status",
	"local_path",
	"app_meta_data",
	"undelete",
	"created_at",
}

var directoryEntryColumns = []string{
	"file_uuid",
	"file_group_uuid",
	"sharing_group_id",
	"mime_type",
	"file_version",
	"app_meta_data_version",
	"deleted_locally",
	"deleted_on_server",
	"local_path",
}

func buildSelectDownloadTrackersQuery(statuses []models.TrackerStatus) (string, []any, error) {
	q := sqlb.Select(downloadTrackerColumns...).From(tableDownloadTrackers).OrderBy("id")
	if len(statuses) > 0 {
		q = q.Where(sq.Eq{"status": statusStrings(statuses)})
	}
	return q.ToSql()
}

func buildSelectGroupTrackersQuery(groupID int64) (string, []any, error) {
	return sqlb.Select(downloadTrackerColumns...).
		From(tableDownloadTrackers).
		Where(sq.Eq{"group_id": groupID}).
		OrderBy("id").
		ToSql()
}

func buildSelectContentGroupsQuery(statuses []models.GroupStatus) (string, []any, error) {
	q := sqlb.Select(contentGroupColumns...).From(tableContentGroups).OrderBy("id")
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		q = q.Where(sq.Eq{"status": values})
	}
	return q.ToSql()
}

func buildSelectUploadTrackersQuery(statuses []models.TrackerStatus) (string, []any, error) {
	q := sqlb.Select(uploadTrackerColumns...).From(tableUploadTrackers).OrderBy("id")
	if len(statuses) > 0 {
		q = q.Where(sq.Eq{"status": statusStrings(statuses)})
	}
	return q.ToSql()
}

func buildDeleteByIDsQuery(table string, ids []int64) (string, []any, error) {
	return sqlb.Delete(table).Where(sq.Eq{"id": ids}).ToSql()
}

func buildUpsertDirectoryEntryQuery(e models.DirectoryEntry) (string, []any, error) {
	return sqlb.Insert(tableDirectoryEntries).
		Columns(directoryEntryColumns...).
		Values(
			e.FileUUID,
			e.FileGroupUUID,
			e.SharingGroupID,
			string(e.MimeType),
			nullFileVersion(e.FileVersion),
			nullAppMetaDataVersion(e.AppMetaDataVersion),
			e.DeletedLocally,
			e.DeletedOnServer,
			e.LocalPath,
		).
		Suffix(`ON CONFLICT (file_uuid) DO UPDATE SET
			file_group_uuid = excluded.file_group_uuid,
			sharing_group_id = excluded.sharing_group_id,
			mime_type = excluded.mime_type,
			file_version = excluded.file_version,
			app_meta_data_version = excluded.app_meta_data_version,
			deleted_locally = excluded.deleted_locally,
			deleted_on_server = excluded.deleted_on_server,
			local_path = excluded.local_path`).
		ToSql()
}

func statusStrings(statuses []models.TrackerStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return values
}
