package models

import "time"

// Wire responses of the sync server. Optional fields are pointers so that a
// missing key can be told apart from a zero value. Endpoints guarded by the
// master version may answer with MasterVersionUpdate instead of their
// payload.

type HealthCheckResponse struct {
	CurrentServerDateTime time.Time `json:"currentServerDateTime"`
	ServerUptime          float64   `json:"serverUptime"`
	DeployedGitTag        string    `json:"deployedGitTag,omitempty"`
	Diagnostics           string    `json:"diagnostics,omitempty"`
}

type AddUserResponse struct {
	UserID         *int64          `json:"userId,omitempty"`
	SharingGroupID *SharingGroupID `json:"sharingGroupId,omitempty"`
}

type CheckCredsResponse struct {
	UserID      *int64      `json:"userId,omitempty"`
	Permission  *Permission `json:"permission,omitempty"`
	AccessToken string      `json:"accessToken,omitempty"`
}

type GetSharingGroupsResponse struct {
	SharingGroupIDs []SharingGroupID `json:"sharingGroupIds"`
}

type FileIndexResponse struct {
	FileIndex     []FileInfo     `json:"fileIndex"`
	MasterVersion *MasterVersion `json:"masterVersion,omitempty"`
}

// UploadFileResponse travels in the [HeaderMessageParams] header.
type UploadFileResponse struct {
	Size                *int64         `json:"size,omitempty"`
	CreationDate        *time.Time     `json:"creationDate,omitempty"`
	UpdateDate          *time.Time     `json:"updateDate,omitempty"`
	MasterVersionUpdate *MasterVersion `json:"masterVersionUpdate,omitempty"`
}

type DoneUploadsResponse struct {
	NumberUploadsTransferred *int64         `json:"numberUploadsTransferred,omitempty"`
	MasterVersionUpdate      *MasterVersion `json:"masterVersionUpdate,omitempty"`
}

// DownloadFileResponse travels in the [HeaderMessageParams] header.
type DownloadFileResponse struct {
	FileSizeBytes       *int64         `json:"fileSizeBytes,omitempty"`
	AppMetaData         *string        `json:"appMetaData,omitempty"`
	MasterVersionUpdate *MasterVersion `json:"masterVersionUpdate,omitempty"`
}

type GetUploadsResponse struct {
	Uploads []FileInfo `json:"uploads"`
}

type UploadDeletionResponse struct {
	MasterVersionUpdate *MasterVersion `json:"masterVersionUpdate,omitempty"`
}

type UploadAppMetaDataResponse struct {
	MasterVersionUpdate *MasterVersion `json:"masterVersionUpdate,omitempty"`
}

type DownloadAppMetaDataResponse struct {
	AppMetaData         *string        `json:"appMetaData,omitempty"`
	MasterVersionUpdate *MasterVersion `json:"masterVersionUpdate,omitempty"`
}

type CreateSharingInvitationResponse struct {
	SharingInvitationUUID string `json:"sharingInvitationUUID"`
}

type RedeemSharingInvitationResponse struct {
	SharingGroupID *SharingGroupID `json:"sharingGroupId,omitempty"`
	AccessToken    string          `json:"accessToken,omitempty"`
}
