package service

import "github.com/MKhiriev/go-sync-client/models"

// CheckResult is the proposed delta of OnlyCheck. Nothing was persisted.
type CheckResult struct {
	SharingGroupID models.SharingGroupID
	MasterVersion  models.MasterVersion
	Set            models.DownloadSet
}

// CheckOutcome is the answer of Check. When DownloadsAvailable is false no
// tracker was created.
type CheckOutcome struct {
	DownloadsAvailable        bool
	NumberOfContentDownloads  int
	NumberOfDownloadDeletions int
}

type NextResultKind int

const (
	NextStarted NextResultKind = iota + 1
	NextNoDownloadsOrDeletions
	NextCurrentGroupCompleted
	NextAllDownloadsCompleted
)

func (k NextResultKind) String() string {
	switch k {
	case NextStarted:
		return "started"
	case NextNoDownloadsOrDeletions:
		return "noDownloadsOrDeletions"
	case NextCurrentGroupCompleted:
		return "currentGroupCompleted"
	case NextAllDownloadsCompleted:
		return "allDownloadsCompleted"
	}
	return "unknown"
}

// NextResult is the synchronous answer of DownloadCoordinator.Next.
// Group is set for NextCurrentGroupCompleted, Tracker for NextStarted.
type NextResult struct {
	Kind    NextResultKind
	Group   *models.ContentGroup
	Tracker *models.DownloadTracker
}

type CompletionKind int

const (
	CompletionFileDownloaded CompletionKind = iota + 1
	CompletionAppMetaDataDownloaded
	CompletionMasterVersionUpdate
	CompletionError
)

func (k CompletionKind) String() string {
	switch k {
	case CompletionFileDownloaded:
		return "fileDownloaded"
	case CompletionAppMetaDataDownloaded:
		return "appMetaDataDownloaded"
	case CompletionMasterVersionUpdate:
		return "masterVersionUpdate"
	case CompletionError:
		return "error"
	}
	return "unknown"
}

// NextCompletion is the final outcome of a started download.
type NextCompletion struct {
	Kind          CompletionKind
	Tracker       models.DownloadTracker
	MasterVersion models.MasterVersion
	Err           error
}

type UploadNextResultKind int

const (
	UploadNextStarted UploadNextResultKind = iota + 1
	UploadNextNoUploads
	UploadNextAllUploadsCompleted
)

// UploadNextResult is the synchronous answer of UploadCoordinator.Next.
type UploadNextResult struct {
	Kind    UploadNextResultKind
	Tracker *models.UploadTracker
}

type UploadCompletionKind int

const (
	UploadCompletionUploaded UploadCompletionKind = iota + 1
	UploadCompletionMasterVersionUpdate
	UploadCompletionError
)

// UploadCompletion is the final outcome of a started upload.
type UploadCompletion struct {
	Kind          UploadCompletionKind
	Tracker       models.UploadTracker
	MasterVersion models.MasterVersion
	Err           error
}

// DoneUploadsOutcome carries exactly one of NumberUploadsTransferred and
// MasterVersionUpdate, or neither when there was nothing to commit.
type DoneUploadsOutcome struct {
	NumberUploadsTransferred int64
	MasterVersionUpdate      *models.MasterVersion
}

// FileUpload describes a local file to upload. An empty FileUUID creates a
// new file.
type FileUpload struct {
	LocalPath      string
	FileUUID       string
	FileGroupUUID  string
	MimeType       models.MimeType
	SharingGroupID models.SharingGroupID
	AppMetaData    *string
}

// SyncReport summarizes one synchronization round.
type SyncReport struct {
	Downloaded        int
	DeletionsApplied  int
	Uploaded          int
	MasterVersionHits int
}
