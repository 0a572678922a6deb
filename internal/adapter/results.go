package adapter

import (
	"time"

	"github.com/MKhiriev/go-sync-client/models"
)

// CheckCredsResult is either NoUser or the signed-in account.
type CheckCredsResult struct {
	NoUser bool
	User   models.User
}

type AddUserResult struct {
	UserID         int64
	SharingGroupID models.SharingGroupID
}

type FileIndexResult struct {
	Files         []models.FileInfo
	MasterVersion models.MasterVersion
}

type UploadedFile struct {
	SizeBytes    int64
	CreationDate time.Time
	UpdateDate   time.Time
}

// UploadFileResult carries exactly one of Uploaded and MasterVersionUpdate.
type UploadFileResult struct {
	Uploaded            *UploadedFile
	MasterVersionUpdate *models.MasterVersion
}

// DoneUploadsResult carries exactly one of NumberUploadsTransferred and
// MasterVersionUpdate.
type DoneUploadsResult struct {
	NumberUploadsTransferred *int64
	MasterVersionUpdate      *models.MasterVersion
}

// DownloadedFile is content written to LocalPath.
type DownloadedFile struct {
	LocalPath     string
	FileSizeBytes int64
	AppMetaData   *string
}

// DownloadFileResult carries exactly one of Downloaded and
// MasterVersionUpdate.
type DownloadFileResult struct {
	Downloaded          *DownloadedFile
	MasterVersionUpdate *models.MasterVersion
}

// UploadDeletionResult succeeded when MasterVersionUpdate is nil.
type UploadDeletionResult struct {
	MasterVersionUpdate *models.MasterVersion
}

// UploadAppMetaDataResult succeeded when MasterVersionUpdate is nil.
type UploadAppMetaDataResult struct {
	MasterVersionUpdate *models.MasterVersion
}

// DownloadAppMetaDataResult carries exactly one of AppMetaData and
// MasterVersionUpdate.
type DownloadAppMetaDataResult struct {
	AppMetaData         *string
	MasterVersionUpdate *models.MasterVersion
}

type RedeemResult struct {
	SharingGroupID models.SharingGroupID
	AccessToken    string
}
