package service

import (
	"context"

	"github.com/MKhiriev/go-sync-client/internal/adapter"
	"github.com/MKhiriev/go-sync-client/models"
)

// DownloadCoordinator owns the durable queue of pending downloads,
// deletions and appMetaData downloads.
//
// Trackers move notStarted -> downloading -> downloaded, or back to
// notStarted on error. A master version update purges every tracker and
// group: the caller must Check again.
type DownloadCoordinator interface {
	// OnlyCheck fetches the file index and computes the delta against local
	// state without persisting anything. Any MIME type the client does not
	// understand fails the whole check with ErrBadMimeType.
	OnlyCheck(ctx context.Context, sharingGroupID models.SharingGroupID) (CheckResult, error)

	// Check runs OnlyCheck and, in one unit of work, stores the master
	// version and creates one tracker per delta entry. Concurrent calls are
	// serialized.
	Check(ctx context.Context, sharingGroupID models.SharingGroupID) (CheckOutcome, error)

	// Next starts the next download. Only for NextStarted the returned
	// channel is non-nil; it yields exactly one NextCompletion.
	// ErrAlreadyDownloadingAFile is returned while a tracker is downloading.
	Next(ctx context.Context, first bool) (NextResult, <-chan NextCompletion, error)

	// Acknowledge records a downloaded tracker in the directory and removes
	// it.
	Acknowledge(ctx context.Context, trackerID int64) error

	// FinishGroup applies the deletions of a group whose content trackers
	// were all acknowledged and removes the group with its trackers. A
	// downloaded tracker that was not acknowledged yet makes it fail with
	// ErrGroupNotComplete.
	FinishGroup(ctx context.Context, groupID int64) error

	// Reset removes every tracker and group.
	Reset(ctx context.Context) error

	// Recover reverts trackers left downloading by a previous process to
	// notStarted. It must run before the first Next.
	Recover(ctx context.Context) error
}

// UploadCoordinator owns the durable queue of client side operations.
// Upload trackers survive master version updates: they are reverted to
// notStarted and sent again after the caller ran a download Check.
type UploadCoordinator interface {
	QueueFile(ctx context.Context, upload FileUpload) (models.UploadTracker, error)
	QueueDeletion(ctx context.Context, fileUUID string) (models.UploadTracker, error)
	QueueAppMetaData(ctx context.Context, fileUUID, appMetaData string) (models.UploadTracker, error)

	// Next starts the next upload. Only for UploadNextStarted the returned
	// channel is non-nil.
	Next(ctx context.Context, first bool) (UploadNextResult, <-chan UploadCompletion, error)

	// DoneUploads commits the uploaded trackers of sharingGroupID.
	DoneUploads(ctx context.Context, sharingGroupID models.SharingGroupID) (DoneUploadsOutcome, error)

	// Reset reverts every upload tracker to notStarted.
	Reset(ctx context.Context) error

	// Recover reverts trackers left uploading by a previous process to
	// notStarted. Uploaded trackers keep waiting for DoneUploads.
	Recover(ctx context.Context) error
}

// UserService covers the account and sharing group operations.
type UserService interface {
	CheckForExistingUser(ctx context.Context) (adapter.CheckCredsResult, error)
	AddUser(ctx context.Context, cloudFolderName string) (adapter.AddUserResult, error)
	RemoveUser(ctx context.Context) error

	// SetupSharingGroups fetches and stores the sharing groups of the user.
	SetupSharingGroups(ctx context.Context) ([]models.SharingGroupID, error)
	// SharingGroups returns the ids stored by SetupSharingGroups.
	SharingGroups(ctx context.Context) ([]models.SharingGroupID, error)

	CreateSharingInvitation(ctx context.Context, permission models.Permission, sharingGroupID models.SharingGroupID) (string, error)
	RedeemSharingInvitation(ctx context.Context, invitationUUID, cloudFolderName string) (adapter.RedeemResult, error)
}

// Synchronizer runs complete synchronization rounds: downloads first, then
// uploads.
type Synchronizer interface {
	Sync(ctx context.Context, sharingGroupID models.SharingGroupID) (SyncReport, error)
}

// AccessTokenHolder receives long-lived tokens handed out by the server.
type AccessTokenHolder interface {
	SetAccessToken(tokenType, accessToken string)
	Clear()
}
