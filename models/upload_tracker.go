package models

import "time"

// UploadTracker is the durable record of one pending client-side operation:
// a file upload, an upload deletion or an appMetaData upload.
// Upload trackers are never discarded on a master version change; they are
// reverted to [TrackerStatusNotStarted] and retried.
type UploadTracker struct {
	ID                 int64
	FileUUID           string
	FileGroupUUID      string
	SharingGroupID     SharingGroupID
	FileVersion        FileVersion
	AppMetaDataVersion *AppMetaDataVersion
	MimeType           MimeType
	Operation          Operation
	Status             TrackerStatus
	LocalPath          string
	AppMetaData        *string
	Undelete           bool
	CreatedAt          time.Time
}
