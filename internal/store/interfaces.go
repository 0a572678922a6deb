package store

import (
	"context"

	"github.com/MKhiriev/go-sync-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DownloadTrackerRepository persists [models.DownloadTracker] records.
type DownloadTrackerRepository interface {
	// CreateDownloadTracker inserts t and sets its ID and CreatedAt.
	CreateDownloadTracker(ctx context.Context, t *models.DownloadTracker) error
	GetDownloadTracker(ctx context.Context, id int64) (models.DownloadTracker, error)
	// ListDownloadTrackers returns trackers ordered by id. Empty statuses
	// means every status.
	ListDownloadTrackers(ctx context.Context, statuses ...models.TrackerStatus) ([]models.DownloadTracker, error)
	ListGroupTrackers(ctx context.Context, groupID int64) ([]models.DownloadTracker, error)
	// UpdateDownloadTracker stores Status, LocalPath and AppMetaData of t.
	UpdateDownloadTracker(ctx context.Context, t models.DownloadTracker) error
	DeleteDownloadTrackers(ctx context.Context, ids ...int64) error
	DeleteAllDownloadTrackers(ctx context.Context) error
	// RevertDownloadingTrackers moves every downloading tracker back to
	// notStarted and returns how many rows changed.
	RevertDownloadingTrackers(ctx context.Context) (int64, error)
}

// ContentGroupRepository persists [models.ContentGroup] records.
type ContentGroupRepository interface {
	// FindOrCreateContentGroup returns the pending group with groupKey,
	// creating it when none exists.
	FindOrCreateContentGroup(ctx context.Context, groupKey, fileGroupUUID string, sharingGroupID models.SharingGroupID) (models.ContentGroup, error)
	// GetContentGroup returns the group with its trackers loaded.
	GetContentGroup(ctx context.Context, id int64) (models.ContentGroup, error)
	// ListContentGroups returns groups ordered by id, without trackers.
	ListContentGroups(ctx context.Context, statuses ...models.GroupStatus) ([]models.ContentGroup, error)
	UpdateContentGroupStatus(ctx context.Context, id int64, status models.GroupStatus) error
	DeleteContentGroup(ctx context.Context, id int64) error
	DeleteAllContentGroups(ctx context.Context) error
}

// MasterVersionRepository holds the cached master version per sharing group.
type MasterVersionRepository interface {
	// GetMasterVersion returns ErrNotFound when no version was stored yet.
	GetMasterVersion(ctx context.Context, sharingGroupID models.SharingGroupID) (models.MasterVersion, error)
	SetMasterVersion(ctx context.Context, sharingGroupID models.SharingGroupID, version models.MasterVersion) error
}

// UploadTrackerRepository persists [models.UploadTracker] records.
type UploadTrackerRepository interface {
	CreateUploadTracker(ctx context.Context, t *models.UploadTracker) error
	ListUploadTrackers(ctx context.Context, statuses ...models.TrackerStatus) ([]models.UploadTracker, error)
	UpdateUploadTrackerStatus(ctx context.Context, id int64, status models.TrackerStatus) error
	// ResetUploadTrackers moves every upload tracker back to notStarted.
	ResetUploadTrackers(ctx context.Context) error
	// RevertUploadingTrackers moves every uploading tracker back to
	// notStarted and returns how many rows changed.
	RevertUploadingTrackers(ctx context.Context) (int64, error)
	DeleteUploadTrackers(ctx context.Context, ids ...int64) error
}

// DirectoryRepository persists the local view of every known file.
type DirectoryRepository interface {
	// GetDirectoryEntry returns ErrNotFound for unknown files.
	GetDirectoryEntry(ctx context.Context, fileUUID string) (models.DirectoryEntry, error)
	ListDirectoryEntries(ctx context.Context, sharingGroupID models.SharingGroupID) ([]models.DirectoryEntry, error)
	UpsertDirectoryEntry(ctx context.Context, entry models.DirectoryEntry) error
}

// SettingsRepository is a small key/value slot for client settings such as
// the device UUID.
type SettingsRepository interface {
	// GetSetting returns ErrNotFound for unknown keys.
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// SyncState is every repository of the sync state bound to one connection
// or transaction.
type SyncState interface {
	DownloadTrackerRepository
	ContentGroupRepository
	MasterVersionRepository
	UploadTrackerRepository
	DirectoryRepository
	SettingsRepository
}

// SyncStore is the durable sync state of the client.
//
// Methods called directly on the store run in their own implicit
// transaction. PerformAndSave runs fn against a state bound to a single
// transaction that is committed only when fn returns nil; any error rolls
// every change of fn back. fn must only use the state it receives.
type SyncStore interface {
	SyncState
	PerformAndSave(ctx context.Context, fn func(ctx context.Context, state SyncState) error) error
	Close() error
}
